package survey

import (
	"fmt"

	"github.com/surveyspec/surveyspec/internal/ident"
)

// Code prefixes used by the default constructors.
const (
	RowCodePrefix    = "R"
	ColumnCodePrefix = "C"
)

// defaultChoiceRows is the number of rows seeded into a new choice question.
const defaultChoiceRows = 2

// NewItem builds an item of type t with a fresh id, a code unique among existing
// and the defaults of its type. existing is not modified.
func NewItem(t ItemType, existing ident.CodeSet) Item {
	return NewItemWithPrefix(t, existing, ident.DefaultCodePrefix)
}

// NewItemWithPrefix is NewItem with a custom item code prefix.
func NewItemWithPrefix(t ItemType, existing ident.CodeSet, prefix string) Item {
	taken := ident.NewCodeSet()
	for c := range existing {
		taken.Add(c)
	}

	shape := t.Shape()
	it := Item{
		SortableItem: SortableItem{
			ID:   ident.GenerateID(),
			Code: ident.ReserveCode(taken, prefix),
		},
		Type:    t,
		Options: DefaultOptions(t),
	}
	if shape.Label {
		label := shape.DefaultLabel
		it.Label = &label
	}
	if shape.Help {
		help := ""
		it.Help = &help
	}
	if shape.Children {
		it.Children = []Item{}
	}
	if t == TypeChoice {
		it.Rows = NewChoiceRows(taken, defaultChoiceRows)
	}

	return Reindex(Survey{Children: []Item{it}}).Children[0]
}

// NewChoiceRows builds n rows labelled "Option 1".."Option n" with codes reserved
// in taken.
func NewChoiceRows(taken ident.CodeSet, n int) []Element {
	rows := make([]Element, n)
	for i := range rows {
		rows[i] = NewElement(taken, RowCodePrefix, fmt.Sprintf("Option %d", i+1))
		rows[i].Index = i
		rows[i].IsLast = i == n-1
	}
	return rows
}

// NewElement builds a row or column with a fresh id and a code reserved in taken.
func NewElement(taken ident.CodeSet, prefix, label string) Element {
	return Element{
		SortableItem: SortableItem{
			ID:   ident.GenerateID(),
			Code: ident.ReserveCode(taken, prefix),
		},
		Label: label,
	}
}
