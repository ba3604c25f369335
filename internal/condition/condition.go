// Package condition compiles survey conditions into expr programs and evaluates
// them against a set of answers.
//
// A condition's rules are folded left to right: each rule after the first is
// joined to everything before it with its gate ("and" when empty).
package condition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/surveyspec/surveyspec/internal/survey"
)

// Answers maps answer keys (see AnswerKey) to answer values.
type Answers map[string]any

// ErrUnsupportedValue is returned when a rule value cannot be used with its operator.
var ErrUnsupportedValue = errors.New("unsupported rule value")

// AnswerKey returns the answer key for an item code and optional row and column codes.
func AnswerKey(code, rowCode, columnCode string) string {
	parts := []string{code}
	if rowCode != "" {
		parts = append(parts, rowCode)
	}
	if columnCode != "" {
		parts = append(parts, columnCode)
	}
	return strings.Join(parts, ".")
}

// Program is a compiled condition.
type Program struct {
	Action survey.Action
	Source string
	prog   *vm.Program
}

// Compile translates c into an expr program.
func Compile(c survey.Condition) (*Program, error) {
	src, err := Expression(c)
	if err != nil {
		return nil, err
	}

	prog, err := expr.Compile(src, options()...)
	if err != nil {
		return nil, fmt.Errorf("compiling condition %q: %w", src, err)
	}
	return &Program{Action: c.Action, Source: src, prog: prog}, nil
}

// Eval runs the program against answers.
func (p *Program) Eval(answers Answers) (bool, error) {
	if answers == nil {
		answers = Answers{}
	}
	out, err := expr.Run(p.prog, map[string]any{"answers": map[string]any(answers)})
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", p.Source, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("evaluating %q: expression did not return a boolean", p.Source)
	}
	return matched, nil
}

// Expression returns the expr source for c. A condition without rules is always true.
func Expression(c survey.Condition) (string, error) {
	if len(c.Rules) == 0 {
		return "true", nil
	}

	var sb strings.Builder
	for i, r := range c.Rules {
		term, err := ruleExpression(r)
		if err != nil {
			return "", fmt.Errorf("rule %d: %w", i, err)
		}
		if i == 0 {
			sb.WriteString(term)
			continue
		}

		gate := r.Gate
		if gate == "" {
			gate = survey.GateAnd
		}
		if !gate.Valid() {
			return "", fmt.Errorf("rule %d: unknown gate %q", i, r.Gate)
		}
		prev := sb.String()
		sb.Reset()
		fmt.Fprintf(&sb, "(%s) %s %s", prev, gate, term)
	}
	return sb.String(), nil
}

func ruleExpression(r survey.ConditionRule) (string, error) {
	if r.Code == "" {
		return "", fmt.Errorf("rule references no item code")
	}
	answer := fmt.Sprintf("answers[%s]", strconv.Quote(AnswerKey(r.Code, r.RowCode, r.ColumnCode)))

	var term string
	switch r.Operator {
	case survey.OpEqual, survey.OpNotEqual, survey.OpContains, survey.OpNotContains:
		lit, err := literal(r.Value)
		if err != nil {
			return "", err
		}
		switch r.Operator {
		case survey.OpEqual:
			term = fmt.Sprintf("eq(%s, %s)", answer, lit)
		case survey.OpNotEqual:
			term = fmt.Sprintf("not eq(%s, %s)", answer, lit)
		case survey.OpContains:
			term = fmt.Sprintf("has(%s, %s)", answer, lit)
		default:
			term = fmt.Sprintf("not has(%s, %s)", answer, lit)
		}
	case survey.OpGreater, survey.OpLess, survey.OpGreaterEq, survey.OpLessEq:
		n, ok := toNumber(r.Value)
		if !ok {
			return "", fmt.Errorf("operator %s needs a numeric value, got %v: %w", r.Operator, r.Value, ErrUnsupportedValue)
		}
		term = fmt.Sprintf("(num(%s) != nil and num(%s) %s %s)", answer, answer, r.Operator, formatNumber(n))
	default:
		return "", fmt.Errorf("unknown operator %q", r.Operator)
	}

	if r.Negate {
		term = fmt.Sprintf("not (%s)", term)
	}
	return term, nil
}

func literal(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "nil", nil
	case string:
		return strconv.Quote(val), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		if n, ok := toNumber(val); ok {
			return formatNumber(n), nil
		}
		return "", fmt.Errorf("value %v of type %T: %w", v, v, ErrUnsupportedValue)
	}
}

func formatNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		// keep the literal a float so comparisons never mix int and float
		s += ".0"
	}
	return s
}
