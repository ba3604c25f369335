package survey

import (
	"encoding/json"
	"fmt"
)

// Options is the type-specific configuration of an item.
// The set of implementations is closed: StringOptions, NumberOptions,
// ChoiceOptions, BlockOptions and EmptyOptions.
type Options interface {
	options()
}

// StringOptions configures a text-entry question.
type StringOptions struct {
	Required    bool   `json:"required"`
	Multiline   bool   `json:"multiline"`
	Placeholder string `json:"placeholder,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
}

// NumberOptions configures a numeric question.
type NumberOptions struct {
	Required bool     `json:"required"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Decimals int      `json:"decimals"`
	Unit     string   `json:"unit,omitempty"`
}

// ChoiceOptions configures a choice question.
type ChoiceOptions struct {
	Required          bool `json:"required"`
	MultipleSelection bool `json:"multipleSelection"`
	Randomize         bool `json:"randomize"`
	MinSelections     *int `json:"minSelections,omitempty"`
	MaxSelections     *int `json:"maxSelections,omitempty"`
}

// BlockOptions configures a block container.
type BlockOptions struct {
	ShowLabel bool `json:"showLabel"`
	Randomize bool `json:"randomize,omitempty"`
}

// EmptyOptions is used by types without configuration.
type EmptyOptions struct{}

func (StringOptions) options() {}
func (NumberOptions) options() {}
func (ChoiceOptions) options() {}
func (BlockOptions) options()  {}
func (EmptyOptions) options()  {}

// DefaultOptions returns a fresh default options value for t.
func DefaultOptions(t ItemType) Options {
	switch t {
	case TypeString:
		return StringOptions{}
	case TypeNumber:
		return NumberOptions{}
	case TypeChoice:
		return ChoiceOptions{}
	case TypeBlock:
		return BlockOptions{ShowLabel: true}
	default:
		return EmptyOptions{}
	}
}

// decodeOptions decodes raw JSON into the options struct matching t.
// Missing or null options decode to the defaults for t.
func decodeOptions(t ItemType, raw json.RawMessage) (Options, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return DefaultOptions(t), nil
	}

	var (
		opts Options
		err  error
	)
	switch t {
	case TypeString:
		var o StringOptions
		err = json.Unmarshal(raw, &o)
		opts = o
	case TypeNumber:
		var o NumberOptions
		err = json.Unmarshal(raw, &o)
		opts = o
	case TypeChoice:
		var o ChoiceOptions
		err = json.Unmarshal(raw, &o)
		opts = o
	case TypeBlock:
		o := BlockOptions{ShowLabel: true}
		err = json.Unmarshal(raw, &o)
		opts = o
	default:
		opts = EmptyOptions{}
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s options: %w", t, err)
	}
	return opts, nil
}

// ElementOptions configures a row or column.
type ElementOptions struct {
	Exclusive   bool `json:"exclusive,omitempty"`
	NoRandomize bool `json:"noRandomize,omitempty"`
}
