// Package validation checks survey documents against a set of rules and reports
// structured diagnostics.
//
// Expected problems with a document are never returned as Go errors: every rule
// reports them as Diagnostics with a field path and a severity. Only errors block
// saving a document; warnings and infos are advisory.
package validation

import (
	"fmt"
	"strings"
)

// Severity ranks the impact of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// AllSeverities lists every severity from most to least severe.
func AllSeverities() []Severity {
	return []Severity{SeverityError, SeverityWarning, SeverityInfo}
}

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityError, SeverityWarning, SeverityInfo:
		return sev, nil
	default:
		return "", fmt.Errorf("invalid severity %q (valid: error, warning, info)", s)
	}
}

// Diagnostic codes reported by the built-in rules.
const (
	CodeCodeRequired       = "CODE_REQUIRED"
	CodeTitleRequired      = "TITLE_REQUIRED"
	CodeTitleTooShort      = "TITLE_TOO_SHORT"
	CodeInvalidCodeFormat  = "INVALID_CODE_FORMAT"
	CodeCodeTooLong        = "CODE_TOO_LONG"
	CodeDuplicateCode      = "DUPLICATE_CODE"
	CodeItemCodeRequired   = "ITEM_CODE_REQUIRED"
	CodeItemLabelRequired  = "ITEM_LABEL_REQUIRED"
	CodeChoiceNoRows       = "CHOICE_NO_ROWS"
	CodeRowCodeRequired    = "ROW_CODE_REQUIRED"
	CodeRowLabelRequired   = "ROW_LABEL_REQUIRED"
	CodeMissingDescription = "MISSING_DESCRIPTION"
	CodeNoQuestions        = "NO_QUESTIONS"
	CodeSingleQuestion     = "SINGLE_QUESTION"
	CodeUnknownReference   = "UNKNOWN_REFERENCE"
	CodeInvalidCondition   = "INVALID_CONDITION"
	CodeRuleFailure        = "RULE_FAILURE"
)

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Field    string   `json:"field"`          // dot/bracket path, e.g. "children[0].rows[1].code"
	Message  string   `json:"message"`        // human-readable description
	Severity Severity `json:"severity"`       // error, warning or info
	Code     string   `json:"code,omitempty"` // machine-readable diagnostic code
	Rule     string   `json:"rule,omitempty"` // name of the rule that reported it
	Hint     string   `json:"hint,omitempty"` // suggestion for fixing it
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	var sb strings.Builder
	sb.WriteString(string(d.Severity))
	sb.WriteString(": ")
	if d.Field != "" {
		sb.WriteString(fmt.Sprintf("%s: ", d.Field))
	}
	sb.WriteString(d.Message)
	return sb.String()
}

// FormatFull returns a detailed multi-line rendering.
func (d Diagnostic) FormatFull() string {
	var sb strings.Builder

	if d.Field != "" {
		sb.WriteString(fmt.Sprintf("  Path: %s\n", d.Field))
	}
	sb.WriteString(fmt.Sprintf("  %s: %s\n", severityTitle(d.Severity), d.Message))
	if d.Code != "" {
		sb.WriteString(fmt.Sprintf("  Code: %s\n", d.Code))
	}
	if d.Rule != "" {
		sb.WriteString(fmt.Sprintf("  Rule: %s\n", d.Rule))
	}
	if d.Hint != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", d.Hint))
	}

	return sb.String()
}

func severityTitle(s Severity) string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return "Diagnostic"
	}
}
