package survey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a survey document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported survey file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Load reads a survey document from path.
func Load(path string) (Survey, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Survey{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Survey{}, fmt.Errorf("opening survey: %w", err)
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return Survey{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path in the format implied by its extension.
func Save(path string, s Survey) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveAs(path, s, format)
}

// SaveAs writes s to path in the given format.
func SaveAs(path string, s Survey, format Format) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing survey: %w", err)
	}
	return nil
}

// Decode reads a survey document in the given format.
// YAML documents are normalized to JSON first so both formats share one decoder.
func Decode(r io.Reader, format Format) (Survey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Survey{}, fmt.Errorf("reading survey: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Survey{}, fmt.Errorf("survey document is empty")
	}

	switch format {
	case FormatJSON:
	case FormatYAML:
		data, err = yamlToJSON(data)
		if err != nil {
			return Survey{}, err
		}
	default:
		return Survey{}, fmt.Errorf("unknown format %q", format)
	}

	var s Survey
	if err := json.Unmarshal(data, &s); err != nil {
		return Survey{}, fmt.Errorf("decoding survey: %w", err)
	}
	return s, nil
}

// Encode writes s in the given format.
func Encode(w io.Writer, s Survey, format Format) error {
	return encode(w, s, format)
}

// EncodeItem writes a single item in the given format.
func EncodeItem(w io.Writer, it Item, format Format) error {
	return encode(w, it, format)
}

func encode(w io.Writer, v any, format Format) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding survey: %w", err)
	}

	switch format {
	case FormatJSON:
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		// JSON is valid YAML; decoding into a node keeps key order.
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("converting survey to yaml: %w", err)
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return fmt.Errorf("encoding survey: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("expected a YAML mapping at document root")
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting yaml: %w", err)
	}
	return out, nil
}

// blockStyle clears the flow and quoting styles a JSON source leaves on the node tree.
func blockStyle(node *yaml.Node) {
	switch node.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		node.Style = 0
	case yaml.ScalarNode:
		if node.Tag == "!!str" {
			node.Style = 0
		}
	}
	for _, child := range node.Content {
		blockStyle(child)
	}
}
