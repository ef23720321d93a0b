package seeding

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		ordering Ordering
		input    []int
		want     []int
	}{
		{"natural", Natural, seq(4), []int{1, 2, 3, 4}},
		{"reverse", Reverse, seq(4), []int{4, 3, 2, 1}},
		{"half shift", HalfShift, seq(8), []int{5, 6, 7, 8, 1, 2, 3, 4}},
		{"reverse half shift", ReverseHalfShift, seq(8), []int{8, 7, 6, 5, 4, 3, 2, 1}},
		{"reverse half shift of 4", ReverseHalfShift, seq(4), []int{4, 3, 2, 1}},
		{"pair flip", PairFlip, seq(6), []int{2, 1, 4, 3, 6, 5}},
		{"inner outer", InnerOuter, seq(8), []int{1, 8, 2, 7, 3, 6, 4, 5}},
		{"inner outer of 2", InnerOuter, seq(2), []int{1, 2}},
		{"empty", HalfShift, []int{}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.ordering, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyIsPermutation(t *testing.T) {
	for _, o := range Orderings() {
		for _, n := range []int{0, 2, 4, 8, 16, 32} {
			input := seq(n)
			got, err := Apply(o, input)
			require.NoError(t, err, "%s of %d", o, n)
			require.Len(t, got, n)

			sorted := slices.Clone(got)
			slices.Sort(sorted)
			assert.Equal(t, seq(n), sorted, "%s of %d", o, n)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	for _, o := range Orderings() {
		input := seq(8)
		got, err := Apply(o, input)
		require.NoError(t, err)
		assert.Equal(t, seq(8), input, o.String())

		if len(got) > 0 {
			got[0] = 100
			assert.Equal(t, 1, input[0], "%s output aliases its input", o)
		}
	}
}

func TestApplyInvolutions(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e", "f"}

	for _, o := range []Ordering{Reverse, HalfShift, PairFlip} {
		once, err := Apply(o, input)
		require.NoError(t, err)
		twice, err := Apply(o, once)
		require.NoError(t, err)
		assert.Equal(t, input, twice, o.String())
	}

	natural, err := Apply(Natural, input)
	require.NoError(t, err)
	assert.Equal(t, input, natural)
}

func TestApplyOddLength(t *testing.T) {
	for _, o := range []Ordering{HalfShift, ReverseHalfShift, PairFlip, InnerOuter} {
		_, err := Apply(o, seq(3))
		assert.ErrorIs(t, err, ErrInvalidSize, o.String())
	}

	for _, o := range []Ordering{Natural, Reverse} {
		got, err := Apply(o, seq(3))
		require.NoError(t, err)
		assert.Len(t, got, 3)
	}
}

func TestApplyUnknownOrdering(t *testing.T) {
	_, err := Apply(Ordering(42), seq(2))
	assert.ErrorIs(t, err, ErrUnknownOrdering)
}

func TestApplyAll(t *testing.T) {
	got, err := ApplyAll(seq(4), Reverse, PairFlip)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 1, 2}, got)

	_, err = ApplyAll(seq(3), Reverse, PairFlip)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestParseOrdering(t *testing.T) {
	for _, o := range Orderings() {
		parsed, err := ParseOrdering(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}

	_, err := ParseOrdering("groups.effort_balanced")
	assert.ErrorIs(t, err, ErrUnknownOrdering)

	_, err = ParseOrderings([]string{"natural", "shuffle"})
	assert.ErrorIs(t, err, ErrUnknownOrdering)
}

func TestOrderingText(t *testing.T) {
	text, err := HalfShift.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "half_shift", string(text))

	var o Ordering
	require.NoError(t, o.UnmarshalText([]byte("pair_flip")))
	assert.Equal(t, PairFlip, o)
	assert.Error(t, o.UnmarshalText([]byte("nope")))

	_, err = Ordering(-1).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownOrdering)
}
