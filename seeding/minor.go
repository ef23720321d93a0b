package seeding

import "fmt"

// defaultMinorOrdering holds, per bracket size, the ordering of winners
// bracket losers fed into losers bracket round 1 followed by one entry per
// minor round. See "Superior double elimination losers bracket seeding"
// (tl.net, 2011).
var defaultMinorOrdering = map[int][]Ordering{
	8:   {Natural, Reverse, Natural},
	16:  {Natural, ReverseHalfShift, Reverse, Natural},
	32:  {Natural, Reverse, HalfShift, Natural, Natural},
	64:  {Natural, Reverse, HalfShift, Reverse, Natural, Natural},
	128: {Natural, Reverse, HalfShift, PairFlip, PairFlip, PairFlip, Natural},
}

// DefaultMinorOrdering returns a copy of the losers bracket ordering
// schedule for a double elimination bracket of the given size.
func DefaultMinorOrdering(size int) ([]Ordering, error) {
	if !IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: bracket size %d must be a power of two", ErrInvalidSize, size)
	}
	table, ok := defaultMinorOrdering[size]
	if !ok {
		return nil, fmt.Errorf("%w: no default minor ordering for %d", ErrUnsupportedSize, size)
	}
	out := make([]Ordering, len(table))
	copy(out, table)
	return out, nil
}

// SupportedMinorOrderingSizes lists the sizes with a default schedule, ascending.
func SupportedMinorOrderingSizes() []int {
	return []int{8, 16, 32, 64, 128}
}
