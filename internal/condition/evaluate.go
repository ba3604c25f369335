package condition

import (
	"fmt"

	"github.com/surveyspec/surveyspec/internal/survey"
)

// Outcome is the result of one condition of one item.
type Outcome struct {
	Code    string        `json:"code"`
	Path    string        `json:"path"`
	Action  survey.Action `json:"action"`
	Matched bool          `json:"matched"`
}

// State is the resolved state of an item for a given set of answers.
type State struct {
	Visible  bool `json:"visible"`
	Required bool `json:"required"`
}

// Evaluate runs every condition of every item of s against answers, in tree order.
func Evaluate(s survey.Survey, answers Answers) ([]Outcome, error) {
	var (
		out []Outcome
		err error
	)
	survey.Walk(s, func(it survey.Item, path string) bool {
		if err != nil {
			return false
		}
		for i, c := range it.Conditions {
			var prog *Program
			prog, err = Compile(c)
			if err != nil {
				err = fmt.Errorf("%s.conditions[%d]: %w", path, i, err)
				return false
			}
			var matched bool
			matched, err = prog.Eval(answers)
			if err != nil {
				err = fmt.Errorf("%s.conditions[%d]: %w", path, i, err)
				return false
			}
			out = append(out, Outcome{Code: it.Code, Path: path, Action: c.Action, Matched: matched})
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Resolve computes visibility and requirement of every item keyed by code.
// An item is visible when all of its show conditions match and its container is
// visible. It is required when its options say so or any require condition matches.
func Resolve(s survey.Survey, answers Answers) (map[string]State, error) {
	outcomes, err := Evaluate(s, answers)
	if err != nil {
		return nil, err
	}

	byPath := make(map[string][]Outcome, len(outcomes))
	for _, o := range outcomes {
		byPath[o.Path] = append(byPath[o.Path], o)
	}

	states := make(map[string]State)
	var resolve func(items []survey.Item, parent string, parentVisible bool)
	resolve = func(items []survey.Item, parent string, parentVisible bool) {
		for i, it := range items {
			path := survey.ItemPath(parent, i)
			st := State{Visible: parentVisible, Required: requiredByOptions(it.Options)}
			for _, o := range byPath[path] {
				switch o.Action {
				case survey.ActionShow:
					st.Visible = st.Visible && o.Matched
				case survey.ActionRequire:
					st.Required = st.Required || o.Matched
				}
			}
			states[it.Code] = st
			resolve(it.Children, path, st.Visible)
		}
	}
	resolve(s.Children, "", true)
	return states, nil
}

func requiredByOptions(o survey.Options) bool {
	switch opts := o.(type) {
	case survey.StringOptions:
		return opts.Required
	case survey.NumberOptions:
		return opts.Required
	case survey.ChoiceOptions:
		return opts.Required
	default:
		return false
	}
}
