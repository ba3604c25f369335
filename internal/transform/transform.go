// Package transform reshapes questionnaire items when their declared type changes.
package transform

import (
	"fmt"

	"github.com/surveyspec/surveyspec/internal/survey"
)

// Transform returns a copy of it reshaped for type to.
//
// Identity and positional fields and conditions are kept. Options are replaced by
// the defaults of to. Label, help, children, rows and columns are kept, seeded or
// dropped according to to.Shape(). Children survive only container-to-container
// changes; leaving a container discards its subtree.
//
// Callers must not invoke Transform when to equals it.Type, since options would be
// reset, and must reject unknown types beforehand.
func Transform(it survey.Item, to survey.ItemType) survey.Item {
	from := it.Type.Shape()
	shape := to.Shape()

	out := survey.Item{
		SortableItem: it.SortableItem,
		Type:         to,
		Options:      survey.DefaultOptions(to),
		Conditions:   it.Conditions,
	}

	if shape.Label {
		label := shape.DefaultLabel
		if it.Label != nil {
			label = *it.Label
		}
		out.Label = &label
	}

	if shape.Help {
		help := ""
		if it.Help != nil {
			help = *it.Help
		}
		out.Help = &help
	}

	if shape.Children {
		out.Children = []survey.Item{}
		if from.Children && it.Children != nil {
			out.Children = it.Children
		}
	}

	if shape.Rows {
		out.Rows = it.Rows
		out.Columns = it.Columns
		if to == survey.TypeChoice && out.Rows == nil {
			out.Rows = []survey.Element{}
		}
	}

	return out
}

// ChangeType replaces the item with the given id by its transformation to type to
// and returns the new survey. Changing to the current type returns s unchanged.
// A choice question left without rows is seeded with default rows whose codes
// are unique in s.
func ChangeType(s survey.Survey, id string, to survey.ItemType) (survey.Survey, error) {
	if !to.Valid() {
		return s, fmt.Errorf("changing type of %s: unknown item type %q", id, to)
	}

	it, ok := survey.FindByID(s, id)
	if !ok {
		return s, fmt.Errorf("changing type of %s: %w", id, survey.ErrItemNotFound)
	}
	if it.Type == to {
		return s, nil
	}

	next := Transform(it, to)
	if to == survey.TypeChoice && len(next.Rows) == 0 {
		next.Rows = survey.NewChoiceRows(survey.Codes(s), 2)
	}

	return survey.ReplaceItem(s, next)
}
