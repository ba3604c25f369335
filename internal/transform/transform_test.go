package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/surveyspec/surveyspec/internal/survey"
)

func str(s string) *string { return &s }

func stringItem() survey.Item {
	return survey.Item{
		SortableItem: survey.SortableItem{ID: "id-1", Code: "Q1", Index: 2, Depth: 1, IsLast: true},
		Type:         survey.TypeString,
		Label:        str("X"),
		Help:         str("some help"),
		Options:      survey.StringOptions{Required: true, Multiline: true},
		Rows: []survey.Element{
			{SortableItem: survey.SortableItem{ID: "r", Code: "R1"}, Label: "Row"},
		},
		Conditions: []survey.Condition{{Action: survey.ActionShow}},
	}
}

func blockItem() survey.Item {
	return survey.Item{
		SortableItem: survey.SortableItem{ID: "b", Code: "B1"},
		Type:         survey.TypeBlock,
		Label:        str("Block"),
		Options:      survey.BlockOptions{ShowLabel: false},
		Children: []survey.Item{
			{SortableItem: survey.SortableItem{ID: "c1", Code: "C1"}, Type: survey.TypeText, Label: str("c1"), Options: survey.EmptyOptions{}},
			{SortableItem: survey.SortableItem{ID: "c2", Code: "C2"}, Type: survey.TypeText, Label: str("c2"), Options: survey.EmptyOptions{}},
		},
	}
}

func breakPageItem() survey.Item {
	return survey.Item{
		SortableItem: survey.SortableItem{ID: "p", Code: "P1"},
		Type:         survey.TypeBreakPage,
		Options:      survey.EmptyOptions{},
	}
}

func TestTransform_ShapeContract(t *testing.T) {
	t.Parallel()

	sources := map[string]survey.Item{
		"string":    stringItem(),
		"block":     blockItem(),
		"breakPage": breakPageItem(),
	}

	for srcName, src := range sources {
		for _, to := range survey.ItemTypes() {
			to := to
			if to == src.Type {
				continue
			}
			t.Run(srcName+"->"+string(to), func(t *testing.T) {
				t.Parallel()

				out := Transform(src, to)

				assert.Equal(t, to, out.Type)
				assert.Equal(t, to != survey.TypeBreakPage, out.Label != nil, "label presence")
				assert.Equal(t, to.IsQuestion(), out.Help != nil, "help presence")
				assert.Equal(t, to == survey.TypeBlock || to == survey.TypeLoop, out.Children != nil, "children presence")
				assert.Equal(t, survey.DefaultOptions(to), out.Options)
				assert.Equal(t, src.SortableItem, out.SortableItem)
				assert.Equal(t, src.Conditions, out.Conditions)
				if !to.Shape().Rows {
					assert.Nil(t, out.Rows)
					assert.Nil(t, out.Columns)
				}
			})
		}
	}
}

func TestTransform_StringToBreakPage(t *testing.T) {
	t.Parallel()

	out := Transform(stringItem(), survey.TypeBreakPage)

	assert.Nil(t, out.Label)
	assert.Nil(t, out.Help)
	assert.Equal(t, survey.EmptyOptions{}, out.Options)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"label"`)
	assert.NotContains(t, string(data), `"help"`)
	assert.Contains(t, string(data), `"options":{}`)
}

func TestTransform_BlockToStringDropsChildrenKey(t *testing.T) {
	t.Parallel()

	out := Transform(blockItem(), survey.TypeString)

	assert.Nil(t, out.Children)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"children"`)
	assert.Equal(t, "Block", *out.Label)
	assert.Equal(t, "", *out.Help)
}

func TestTransform_BlockToLoopKeepsChildren(t *testing.T) {
	t.Parallel()

	out := Transform(blockItem(), survey.TypeLoop)

	require.Len(t, out.Children, 2)
	assert.Equal(t, "C1", out.Children[0].Code)
	assert.Equal(t, survey.EmptyOptions{}, out.Options)
}

func TestTransform_IntoContainerStartsEmpty(t *testing.T) {
	t.Parallel()

	out := Transform(stringItem(), survey.TypeBlock)

	assert.NotNil(t, out.Children)
	assert.Empty(t, out.Children)
	assert.Equal(t, survey.BlockOptions{ShowLabel: true}, out.Options)
}

func TestTransform_SeedsLabelFromBreakPage(t *testing.T) {
	t.Parallel()

	out := Transform(breakPageItem(), survey.TypeNumber)

	require.NotNil(t, out.Label)
	assert.Equal(t, survey.TypeNumber.Shape().DefaultLabel, *out.Label)
	require.NotNil(t, out.Help)
	assert.Equal(t, "", *out.Help)
}

func TestTransform_QuestionKeepsHelpAndRows(t *testing.T) {
	t.Parallel()

	out := Transform(stringItem(), survey.TypeChoice)

	assert.Equal(t, "some help", *out.Help)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, survey.ChoiceOptions{}, out.Options)

	empty := Transform(breakPageItem(), survey.TypeChoice)
	assert.NotNil(t, empty.Rows)
	assert.Empty(t, empty.Rows)
}

func TestTransform_Pure(t *testing.T) {
	t.Parallel()

	src := stringItem()
	first := Transform(src, survey.TypeNumber)
	second := Transform(src, survey.TypeNumber)

	assert.Equal(t, first, second)
	assert.Equal(t, stringItem(), src, "input not modified")
}

func TestChangeType(t *testing.T) {
	t.Parallel()

	s := survey.Reindex(survey.Survey{
		Code:  "S",
		Title: "Survey",
		Children: []survey.Item{
			blockItem(),
			stringItem(),
		},
	})

	t.Run("same type is a no-op", func(t *testing.T) {
		t.Parallel()

		out, err := ChangeType(s, "id-1", survey.TypeString)
		require.NoError(t, err)
		assert.Equal(t, s, out)
		got, _ := survey.FindByID(out, "id-1")
		assert.Equal(t, survey.StringOptions{Required: true, Multiline: true}, got.Options)
	})

	t.Run("replaces node in tree", func(t *testing.T) {
		t.Parallel()

		out, err := ChangeType(s, "b", survey.TypeText)
		require.NoError(t, err)
		got, ok := survey.FindByID(out, "b")
		require.True(t, ok)
		assert.Equal(t, survey.TypeText, got.Type)
		assert.Nil(t, got.Children)
		_, ok = survey.FindByID(out, "c1")
		assert.False(t, ok, "old subtree discarded")
		assert.Equal(t, 0, got.Index)
	})

	t.Run("seeds unique rows for choice", func(t *testing.T) {
		t.Parallel()

		out, err := ChangeType(s, "c1", survey.TypeChoice)
		require.NoError(t, err)
		got, _ := survey.FindByID(out, "c1")
		require.Len(t, got.Rows, 2)
		// R1 is already used by id-1
		assert.Equal(t, "R2", got.Rows[0].Code)
		assert.Equal(t, "R3", got.Rows[1].Code)
		assert.Equal(t, 2, got.Rows[0].Depth)
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()

		_, err := ChangeType(s, "nope", survey.TypeText)
		require.ErrorIs(t, err, survey.ErrItemNotFound)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := ChangeType(s, "b", survey.ItemType("slider"))
		require.Error(t, err)
	})
}
