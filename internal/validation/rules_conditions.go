package validation

import (
	"fmt"

	"github.com/surveyspec/surveyspec/internal/condition"
	"github.com/surveyspec/surveyspec/internal/survey"
)

// ConditionRules returns the optional rules that check item conditions.
func ConditionRules() []Rule {
	return []Rule{ConditionSyntaxRule(), ConditionReferencesRule()}
}

// ConditionReferencesRule reports condition rules whose code, rowCode or columnCode
// does not resolve to an item, row or column of the document.
func ConditionReferencesRule() Rule {
	return NewRule(RuleConditionReferences, func(ctx *Context) []Diagnostic {
		var diags []Diagnostic

		survey.Walk(ctx.Survey, func(it survey.Item, path string) bool {
			for i, c := range it.Conditions {
				for j, r := range c.Rules {
					if r.Code == "" {
						continue
					}
					rulePath := fmt.Sprintf("%s.conditions[%d].rules[%d]", path, i, j)

					target, ok := ctx.Item(r.Code)
					if !ok {
						diags = append(diags, unknownReference(survey.FieldPath(rulePath, "code"), "item", r.Code))
						continue
					}
					if r.RowCode != "" && !hasElement(target.Rows, r.RowCode) {
						diags = append(diags, unknownReference(survey.FieldPath(rulePath, "rowCode"), "row of "+r.Code, r.RowCode))
					}
					if r.ColumnCode != "" && !hasElement(target.Columns, r.ColumnCode) {
						diags = append(diags, unknownReference(survey.FieldPath(rulePath, "columnCode"), "column of "+r.Code, r.ColumnCode))
					}
				}
			}
			return true
		})

		return diags
	})
}

// ConditionSyntaxRule reports conditions with an unknown action or rules that do
// not compile to an expression.
func ConditionSyntaxRule() Rule {
	return NewRule(RuleConditionSyntax, func(ctx *Context) []Diagnostic {
		var diags []Diagnostic

		survey.Walk(ctx.Survey, func(it survey.Item, path string) bool {
			for i, c := range it.Conditions {
				condPath := fmt.Sprintf("%s.conditions[%d]", path, i)
				if !c.Action.Valid() {
					diags = append(diags, Diagnostic{
						Field:    survey.FieldPath(condPath, "action"),
						Message:  fmt.Sprintf("Unknown condition action %q", c.Action),
						Severity: SeverityError,
						Code:     CodeInvalidCondition,
						Hint:     "Use one of: show, require, set, iterate",
					})
				}
				if _, err := condition.Compile(c); err != nil {
					diags = append(diags, Diagnostic{
						Field:    condPath,
						Message:  fmt.Sprintf("Condition is invalid: %v", err),
						Severity: SeverityError,
						Code:     CodeInvalidCondition,
					})
				}
			}
			return true
		})

		return diags
	})
}

func unknownReference(field, what, code string) Diagnostic {
	return Diagnostic{
		Field:    field,
		Message:  fmt.Sprintf("Condition references unknown %s %q", what, code),
		Severity: SeverityError,
		Code:     CodeUnknownReference,
	}
}

func hasElement(elems []survey.Element, code string) bool {
	for _, e := range elems {
		if e.Code == code {
			return true
		}
	}
	return false
}
