package condition

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ReadAnswers decodes a JSON or YAML object of answers keyed by AnswerKey.
func ReadAnswers(r io.Reader) (Answers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	answers := Answers{}
	if len(bytes.TrimSpace(data)) == 0 {
		return answers, nil
	}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	return answers, nil
}

// ParseAssignment parses "key=value". The value is read as a YAML scalar or
// flow sequence, so "3" is a number, "true" a bool and "[a, b]" a list.
func ParseAssignment(s string) (string, any, error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid answer %q (want key=value)", s)
	}

	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, fmt.Errorf("invalid answer value %q: %w", raw, err)
	}
	if value == nil {
		value = ""
	}
	return key, value, nil
}
