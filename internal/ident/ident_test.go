package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUniqueCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existing CodeSet
		prefix   string
		want     string
	}{
		"empty set": {
			existing: NewCodeSet(),
			prefix:   "Q",
			want:     "Q1",
		},
		"nil set": {
			existing: nil,
			prefix:   "Q",
			want:     "Q1",
		},
		"fills first gap": {
			existing: NewCodeSet("Q1", "Q2", "Q4"),
			prefix:   "Q",
			want:     "Q3",
		},
		"ignores other prefixes": {
			existing: NewCodeSet("R1", "R2"),
			prefix:   "Q",
			want:     "Q1",
		},
		"default prefix": {
			existing: NewCodeSet("Q1"),
			prefix:   "",
			want:     "Q2",
		},
		"custom prefix": {
			existing: NewCodeSet("R1"),
			prefix:   "R",
			want:     "R2",
		},
		"dense range": {
			existing: NewCodeSet("Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10"),
			prefix:   "Q",
			want:     "Q11",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := UniqueCode(tc.existing, tc.prefix)
			assert.Equal(t, tc.want, got)
			assert.False(t, tc.existing.Has(got))
		})
	}
}

func TestReserveCode(t *testing.T) {
	t.Parallel()

	set := NewCodeSet("R1")
	first := ReserveCode(set, "R")
	second := ReserveCode(set, "R")

	assert.Equal(t, "R2", first)
	assert.Equal(t, "R3", second)
	assert.True(t, set.Has("R2"))
	assert.True(t, set.Has("R3"))
}
