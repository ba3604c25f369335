package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/surveyspec/surveyspec/internal/survey"
)

// Names of the built-in rules.
const (
	RuleBasicFields         = "basic-fields"
	RuleCodeFormat          = "code-format"
	RuleUniqueCodes         = "unique-codes"
	RuleItemStructure       = "item-structure"
	RuleSurveyCompleteness  = "survey-completeness"
	RuleConditionReferences = "condition-references"
	RuleConditionSyntax     = "condition-syntax"
)

const (
	minTitleLength = 3
	maxCodeLength  = 50
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// DefaultRules returns the built-in rules in registration order.
func DefaultRules() []Rule {
	return []Rule{
		BasicFieldsRule(),
		CodeFormatRule(),
		UniqueCodesRule(),
		ItemStructureRule(),
		SurveyCompletenessRule(),
	}
}

// BasicFieldsRule requires a survey code and a title of at least three characters.
func BasicFieldsRule() Rule {
	return NewRule(RuleBasicFields, func(ctx *Context) []Diagnostic {
		var diags []Diagnostic
		s := ctx.Survey

		if isBlank(s.Code) {
			diags = append(diags, Diagnostic{
				Field:    "code",
				Message:  "Survey code is required",
				Severity: SeverityError,
				Code:     CodeCodeRequired,
				Hint:     "Set a short identifier such as CSAT-2026",
			})
		}

		switch title := strings.TrimSpace(s.Title); {
		case title == "":
			diags = append(diags, Diagnostic{
				Field:    "title",
				Message:  "Survey title is required",
				Severity: SeverityError,
				Code:     CodeTitleRequired,
			})
		case utf8.RuneCountInString(title) < minTitleLength:
			diags = append(diags, Diagnostic{
				Field:    "title",
				Message:  fmt.Sprintf("Survey title must be at least %d characters", minTitleLength),
				Severity: SeverityError,
				Code:     CodeTitleTooShort,
			})
		}

		return diags
	})
}

// CodeFormatRule checks the survey code characters (error) and length (warning).
// An empty code is left to BasicFieldsRule.
func CodeFormatRule() Rule {
	return NewRule(RuleCodeFormat, func(ctx *Context) []Diagnostic {
		code := ctx.Survey.Code
		if code == "" {
			return nil
		}

		var diags []Diagnostic
		if !codePattern.MatchString(code) {
			diags = append(diags, Diagnostic{
				Field:    "code",
				Message:  fmt.Sprintf("Survey code %q must match %s", code, codePattern.String()),
				Severity: SeverityError,
				Code:     CodeInvalidCodeFormat,
				Hint:     "Use letters, digits, '_' and '-' only",
			})
		}
		if utf8.RuneCountInString(code) > maxCodeLength {
			diags = append(diags, Diagnostic{
				Field:    "code",
				Message:  fmt.Sprintf("Survey code is longer than %d characters", maxCodeLength),
				Severity: SeverityWarning,
				Code:     CodeCodeTooLong,
			})
		}
		return diags
	})
}

// UniqueCodesRule reports every occurrence of a code that is declared more than once
// anywhere in the document.
func UniqueCodesRule() Rule {
	return NewRule(RuleUniqueCodes, func(ctx *Context) []Diagnostic {
		occurrences := ctx.Occurrences()

		fields := make(map[string][]string, len(occurrences))
		var order []string
		for _, o := range occurrences {
			if _, seen := fields[o.Code]; !seen {
				order = append(order, o.Code)
			}
			fields[o.Code] = append(fields[o.Code], o.Field)
		}

		var diags []Diagnostic
		for _, code := range order {
			paths := fields[code]
			if len(paths) < 2 {
				continue
			}
			for _, field := range paths {
				diags = append(diags, Diagnostic{
					Field:    field,
					Message:  fmt.Sprintf("Code %q is used %d times", code, len(paths)),
					Severity: SeverityError,
					Code:     CodeDuplicateCode,
					Hint:     "Every survey, item, row and column code must be unique",
				})
			}
		}
		return diags
	})
}

// ItemStructureRule checks every item for a code, a label where its type has one,
// and rows on choice questions.
func ItemStructureRule() Rule {
	return NewRule(RuleItemStructure, func(ctx *Context) []Diagnostic {
		var diags []Diagnostic

		survey.Walk(ctx.Survey, func(it survey.Item, path string) bool {
			if isBlank(it.Code) {
				diags = append(diags, Diagnostic{
					Field:    survey.FieldPath(path, "code"),
					Message:  "Item code is required",
					Severity: SeverityError,
					Code:     CodeItemCodeRequired,
				})
			}

			if it.Type.Shape().Label && isBlank(it.LabelText()) {
				diags = append(diags, Diagnostic{
					Field:    survey.FieldPath(path, "label"),
					Message:  fmt.Sprintf("Label is required for %s items", it.Type),
					Severity: SeverityError,
					Code:     CodeItemLabelRequired,
				})
			}

			if it.Type == survey.TypeChoice {
				diags = append(diags, choiceRows(it, path)...)
			}
			return true
		})

		return diags
	})
}

func choiceRows(it survey.Item, path string) []Diagnostic {
	if len(it.Rows) == 0 {
		return []Diagnostic{{
			Field:    survey.FieldPath(path, "rows"),
			Message:  "Choice question must have at least one row",
			Severity: SeverityError,
			Code:     CodeChoiceNoRows,
			Hint:     "Add the answer options as rows",
		}}
	}

	var diags []Diagnostic
	for i, r := range it.Rows {
		rowPath := survey.RowPath(path, i)
		if isBlank(r.Code) {
			diags = append(diags, Diagnostic{
				Field:    survey.FieldPath(rowPath, "code"),
				Message:  "Row code is required",
				Severity: SeverityError,
				Code:     CodeRowCodeRequired,
			})
		}
		if isBlank(r.Label) {
			diags = append(diags, Diagnostic{
				Field:    survey.FieldPath(rowPath, "label"),
				Message:  "Row label is required",
				Severity: SeverityError,
				Code:     CodeRowLabelRequired,
			})
		}
	}
	return diags
}

// SurveyCompletenessRule nudges toward a described survey with several items.
func SurveyCompletenessRule() Rule {
	return NewRule(RuleSurveyCompleteness, func(ctx *Context) []Diagnostic {
		var diags []Diagnostic
		s := ctx.Survey

		if isBlank(s.Description) {
			diags = append(diags, Diagnostic{
				Field:    "description",
				Message:  "Survey has no description",
				Severity: SeverityInfo,
				Code:     CodeMissingDescription,
			})
		}

		switch len(s.Children) {
		case 0:
			diags = append(diags, Diagnostic{
				Field:    "children",
				Message:  "Survey has no questions",
				Severity: SeverityWarning,
				Code:     CodeNoQuestions,
			})
		case 1:
			diags = append(diags, Diagnostic{
				Field:    "children",
				Message:  "Survey has a single item",
				Severity: SeverityInfo,
				Code:     CodeSingleQuestion,
			})
		}
		return diags
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
