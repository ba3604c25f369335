package survey

import (
	"encoding/json"
	"fmt"
)

// Survey is the root of a survey document.
type Survey struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Children    []Item `json:"children,omitempty"`
}

// SortableItem holds the identity and positional fields shared by items, rows and columns.
// Positional fields are derived from array position by Reindex.
type SortableItem struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Index         int    `json:"index"`
	Depth         int    `json:"depth"`
	IsLast        bool   `json:"isLast"`
	ParentIndex   *int   `json:"parentIndex,omitempty"`
	ParentIndexes []int  `json:"parentIndexes,omitempty"`
}

// Item is one node of the survey tree.
//
// Label and Help are nil when the key is absent. Children, Rows and Columns are
// nil when absent and non-nil (possibly empty) when present; which of them are
// present is dictated by Type.Shape().
type Item struct {
	SortableItem
	Type       ItemType
	Label      *string
	Help       *string
	Options    Options
	Children   []Item
	Rows       []Element
	Columns    []Element
	Conditions []Condition
}

// Element is a row or column of a question.
type Element struct {
	SortableItem
	Label   string         `json:"label"`
	Options ElementOptions `json:"options"`
}

// LabelText returns the label or "" when absent.
func (it Item) LabelText() string {
	if it.Label == nil {
		return ""
	}
	return *it.Label
}

// HelpText returns the help text or "" when absent.
func (it Item) HelpText() string {
	if it.Help == nil {
		return ""
	}
	return *it.Help
}

type itemJSON struct {
	SortableItem
	Type       ItemType        `json:"type"`
	Label      *string         `json:"label,omitempty"`
	Help       *string         `json:"help,omitempty"`
	Options    json.RawMessage `json:"options"`
	Children   *[]Item         `json:"children,omitempty"`
	Rows       *[]Element      `json:"rows,omitempty"`
	Columns    *[]Element      `json:"columns,omitempty"`
	Conditions []Condition     `json:"conditions,omitempty"`
}

// MarshalJSON emits children, rows and columns keys only when they are present.
func (it Item) MarshalJSON() ([]byte, error) {
	opts := it.Options
	if opts == nil {
		opts = EmptyOptions{}
	}
	rawOpts, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding options of %s: %w", it.Code, err)
	}

	out := itemJSON{
		SortableItem: it.SortableItem,
		Type:         it.Type,
		Label:        it.Label,
		Help:         it.Help,
		Options:      rawOpts,
		Conditions:   it.Conditions,
	}
	if it.Children != nil {
		out.Children = &it.Children
	}
	if it.Rows != nil {
		out.Rows = &it.Rows
	}
	if it.Columns != nil {
		out.Columns = &it.Columns
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes options into the struct matching the item type.
func (it *Item) UnmarshalJSON(data []byte) error {
	var in itemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if !in.Type.Valid() {
		return fmt.Errorf("item %q: unknown item type %q", in.Code, in.Type)
	}

	opts, err := decodeOptions(in.Type, in.Options)
	if err != nil {
		return fmt.Errorf("item %q: %w", in.Code, err)
	}

	*it = Item{
		SortableItem: in.SortableItem,
		Type:         in.Type,
		Label:        in.Label,
		Help:         in.Help,
		Options:      opts,
		Conditions:   in.Conditions,
	}
	if in.Children != nil {
		it.Children = *in.Children
	}
	if in.Rows != nil {
		it.Rows = *in.Rows
	}
	if in.Columns != nil {
		it.Columns = *in.Columns
	}
	return nil
}
