package validation

import (
	"github.com/surveyspec/surveyspec/internal/survey"
)

func str(s string) *string { return &s }

func item(code string, t survey.ItemType) survey.Item {
	it := survey.Item{
		SortableItem: survey.SortableItem{ID: "id-" + code, Code: code},
		Type:         t,
		Options:      survey.DefaultOptions(t),
	}
	if t.Shape().Label {
		it.Label = str("Label " + code)
	}
	if t.Shape().Help {
		it.Help = str("")
	}
	if t.Shape().Children {
		it.Children = []survey.Item{}
	}
	return it
}

func choice(code string, rows ...string) survey.Item {
	it := item(code, survey.TypeChoice)
	it.Rows = []survey.Element{}
	for _, r := range rows {
		it.Rows = append(it.Rows, survey.Element{
			SortableItem: survey.SortableItem{ID: "id-" + r, Code: r},
			Label:        "Label " + r,
		})
	}
	return it
}

// validSurvey has no diagnostics of any severity.
func validSurvey() survey.Survey {
	block := item("B1", survey.TypeBlock)
	block.Children = []survey.Item{
		item("Q1", survey.TypeString),
		choice("Q2", "R1", "R2"),
	}
	return survey.Reindex(survey.Survey{
		Code:        "CSAT-2026",
		Title:       "Customer satisfaction",
		Description: "Quarterly survey",
		Children:    []survey.Item{block, item("Q3", survey.TypeNumber)},
	})
}

func codesOf(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Code)
	}
	return out
}

func fieldsOf(diags []Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Field)
	}
	return out
}

func withSurvey(fn func(*survey.Survey)) survey.Survey {
	s := validSurvey()
	fn(&s)
	return survey.Reindex(s)
}
