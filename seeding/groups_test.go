package seeding

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name       string
		ordering   GroupOrdering
		input      []int
		groupCount int
		want       [][]int
	}{
		{
			name:       "effort balanced",
			ordering:   EffortBalanced,
			input:      seq(8),
			groupCount: 2,
			want:       [][]int{{1, 3, 5, 7}, {2, 4, 6, 8}},
		},
		{
			name:       "seed optimized snakes",
			ordering:   SeedOptimized,
			input:      seq(8),
			groupCount: 2,
			want:       [][]int{{1, 4, 5, 8}, {2, 3, 6, 7}},
		},
		{
			name:       "seed optimized uneven",
			ordering:   SeedOptimized,
			input:      seq(5),
			groupCount: 2,
			want:       [][]int{{1, 4, 5}, {2, 3}},
		},
		{
			name:       "bracket optimized keeps top seeds apart",
			ordering:   BracketOptimized,
			input:      seq(8),
			groupCount: 4,
			want:       [][]int{{1, 8}, {4, 5}, {2, 7}, {3, 6}},
		},
		{
			name:       "bracket optimized with three groups falls back to snake",
			ordering:   BracketOptimized,
			input:      seq(6),
			groupCount: 3,
			want:       [][]int{{1, 6}, {2, 5}, {3, 4}},
		},
		{
			name:       "single group",
			ordering:   EffortBalanced,
			input:      seq(3),
			groupCount: 1,
			want:       [][]int{{1, 2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distribute(tt.ordering, tt.input, tt.groupCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistributeCoversEverySeed(t *testing.T) {
	for _, o := range GroupOrderings() {
		for _, groupCount := range []int{1, 2, 3, 4, 8} {
			input := seq(16)
			groups, err := Distribute(o, input, groupCount)
			require.NoError(t, err)
			require.Len(t, groups, groupCount)

			var all []int
			minSize, maxSize := len(input), 0
			for _, g := range groups {
				all = append(all, g...)
				minSize = min(minSize, len(g))
				maxSize = max(maxSize, len(g))
			}
			slices.Sort(all)
			assert.Equal(t, input, all, "%s into %d", o, groupCount)
			assert.LessOrEqual(t, maxSize-minSize, 1)
		}
	}
}

func TestDistributeInvalidGroupCount(t *testing.T) {
	_, err := Distribute(EffortBalanced, seq(4), 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Distribute(SeedOptimized, seq(2), 3)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Distribute(EffortBalanced, seq(2), 1<<50)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Distribute(BracketOptimized, []int{}, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Distribute(GroupOrdering(9), seq(4), 2)
	assert.ErrorIs(t, err, ErrUnknownOrdering)
}

func TestParseGroupOrdering(t *testing.T) {
	for _, o := range GroupOrderings() {
		parsed, err := ParseGroupOrdering(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	_, err := ParseGroupOrdering("effort_balanced")
	assert.ErrorIs(t, err, ErrUnknownOrdering)
}
