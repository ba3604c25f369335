// Package survey defines the survey document model: a tree of typed questionnaire
// items with rows, columns and conditions, plus traversal helpers and
// copy-on-write edits over that tree.
//
// Every edit returns a new Survey value. Subtrees that an edit does not touch are
// shared with the input, so values must be treated as immutable once built.
package survey

import (
	"fmt"
	"strings"
)

// ItemType discriminates the variants of a questionnaire item.
type ItemType string

const (
	TypeBlock       ItemType = "block"
	TypeLoop        ItemType = "loop"
	TypeBreakPage   ItemType = "breakPage"
	TypeText        ItemType = "text"
	TypeString      ItemType = "string"
	TypeNumber      ItemType = "number"
	TypeChoice      ItemType = "choice"
	TypeMarker      ItemType = "marker"
	TypeQuota       ItemType = "quota"
	TypeTermination ItemType = "termination"
)

var itemTypes = []ItemType{
	TypeBlock,
	TypeLoop,
	TypeBreakPage,
	TypeText,
	TypeString,
	TypeNumber,
	TypeChoice,
	TypeMarker,
	TypeQuota,
	TypeTermination,
}

// ItemTypes returns every known item type in declaration order.
func ItemTypes() []ItemType {
	out := make([]ItemType, len(itemTypes))
	copy(out, itemTypes)
	return out
}

// ParseItemType converts a string into a known ItemType.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(s)
	if !t.Valid() {
		names := make([]string, len(itemTypes))
		for i, it := range itemTypes {
			names[i] = string(it)
		}
		return "", fmt.Errorf("unknown item type %q (valid: %s)", s, strings.Join(names, ", "))
	}
	return t, nil
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	for _, it := range itemTypes {
		if it == t {
			return true
		}
	}
	return false
}

// Shape describes which optional fields an item of a given type carries.
type Shape struct {
	Label        bool   // label key present
	Help         bool   // help key present
	Children     bool   // owns child items
	Rows         bool   // rows and columns apply
	DefaultLabel string // label seeded for new items of this type
}

// Shape returns the shape contract for t. Unknown types get the zero Shape.
func (t ItemType) Shape() Shape {
	switch t {
	case TypeBlock:
		return Shape{Label: true, Children: true, DefaultLabel: "New block"}
	case TypeLoop:
		return Shape{Label: true, Children: true, DefaultLabel: "New loop"}
	case TypeBreakPage:
		return Shape{}
	case TypeText:
		return Shape{Label: true, DefaultLabel: "New text"}
	case TypeString:
		return Shape{Label: true, Help: true, Rows: true, DefaultLabel: "New text question"}
	case TypeNumber:
		return Shape{Label: true, Help: true, Rows: true, DefaultLabel: "New number question"}
	case TypeChoice:
		return Shape{Label: true, Help: true, Rows: true, DefaultLabel: "New choice question"}
	case TypeMarker:
		return Shape{Label: true, DefaultLabel: "New marker"}
	case TypeQuota:
		return Shape{Label: true, DefaultLabel: "New quota"}
	case TypeTermination:
		return Shape{Label: true, DefaultLabel: "New termination"}
	default:
		return Shape{}
	}
}

// IsContainer reports whether items of type t own child items.
func (t ItemType) IsContainer() bool {
	return t.Shape().Children
}

// IsQuestion reports whether t is a question type.
func (t ItemType) IsQuestion() bool {
	return t == TypeString || t == TypeNumber || t == TypeChoice
}
