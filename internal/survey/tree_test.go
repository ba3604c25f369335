package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalk_Paths(t *testing.T) {
	t.Parallel()

	var paths []string
	Walk(sample(), func(it Item, path string) bool {
		paths = append(paths, it.Code+"@"+path)
		return true
	})

	assert.Equal(t, []string{
		"B1@children[0]",
		"Q1@children[0].children[0]",
		"Q2@children[0].children[1]",
		"Q3@children[1]",
	}, paths)
}

func TestWalk_SkipChildren(t *testing.T) {
	t.Parallel()

	var codes []string
	Walk(sample(), func(it Item, _ string) bool {
		codes = append(codes, it.Code)
		return it.Type != TypeBlock
	})

	assert.Equal(t, []string{"B1", "Q3"}, codes)
}

func TestFind(t *testing.T) {
	t.Parallel()

	s := sample()

	tests := map[string]struct {
		find     func() (Item, bool)
		wantCode string
		wantOK   bool
	}{
		"by id nested":   {find: func() (Item, bool) { return FindByID(s, "q2") }, wantCode: "Q2", wantOK: true},
		"by id root":     {find: func() (Item, bool) { return FindByID(s, "q3") }, wantCode: "Q3", wantOK: true},
		"by id missing":  {find: func() (Item, bool) { return FindByID(s, "nope") }, wantOK: false},
		"by code nested": {find: func() (Item, bool) { return FindByCode(s, "Q1") }, wantCode: "Q1", wantOK: true},
		"by code row":    {find: func() (Item, bool) { return FindByCode(s, "R1") }, wantOK: false},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			it, ok := tc.find()
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.wantCode, it.Code)
			}
		})
	}
}

func TestPathOf(t *testing.T) {
	t.Parallel()

	s := sample()

	path, ok := PathOf(s, "q2")
	require.True(t, ok)
	assert.Equal(t, "children[0].children[1]", path)

	_, ok = PathOf(s, "missing")
	assert.False(t, ok)
}

func TestFlattenCountDepth(t *testing.T) {
	t.Parallel()

	s := sample()

	var codes []string
	for _, it := range Flatten(s) {
		codes = append(codes, it.Code)
	}
	assert.Equal(t, []string{"B1", "Q1", "Q2", "Q3"}, codes)
	assert.Equal(t, 4, Count(s))
	assert.Equal(t, 1, MaxDepth(s))
	assert.Equal(t, -1, MaxDepth(Survey{}))
}

func TestAllCodes(t *testing.T) {
	t.Parallel()

	s := sample()
	s.Children[1].Columns = []Element{{SortableItem: SortableItem{ID: "c1", Code: "C1"}}}

	assert.Equal(t, []string{"S1", "B1", "Q1", "Q2", "R1", "R2", "Q3", "C1"}, AllCodes(s))
	assert.True(t, Codes(s).Has("R2"))
}

func TestReindex(t *testing.T) {
	t.Parallel()

	s := sample()

	b1 := s.Children[0]
	assert.Equal(t, 0, b1.Index)
	assert.Equal(t, 0, b1.Depth)
	assert.False(t, b1.IsLast)
	assert.Nil(t, b1.ParentIndex)

	q2 := b1.Children[1]
	assert.Equal(t, 1, q2.Index)
	assert.Equal(t, 1, q2.Depth)
	assert.True(t, q2.IsLast)
	require.NotNil(t, q2.ParentIndex)
	assert.Equal(t, 0, *q2.ParentIndex)
	assert.Equal(t, []int{0}, q2.ParentIndexes)

	r2 := q2.Rows[1]
	assert.Equal(t, 1, r2.Index)
	assert.Equal(t, 2, r2.Depth)
	assert.True(t, r2.IsLast)
	assert.Equal(t, []int{0, 1}, r2.ParentIndexes)

	assert.True(t, s.Children[1].IsLast)
}

func TestReindex_ReusesUnchangedSubtrees(t *testing.T) {
	t.Parallel()

	s := sample()
	again := Reindex(s)

	require.Len(t, again.Children, 2)
	assert.Same(t, &s.Children[0], &again.Children[0])
}
