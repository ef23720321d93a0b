package seeding

import (
	"fmt"
	"slices"
)

// Ordering is a permutation applied to a flat seed list before pairing.
type Ordering int

const (
	Natural Ordering = iota
	Reverse
	HalfShift
	ReverseHalfShift
	PairFlip
	InnerOuter
)

var orderingNames = [...]string{
	Natural:          "natural",
	Reverse:          "reverse",
	HalfShift:        "half_shift",
	ReverseHalfShift: "reverse_half_shift",
	PairFlip:         "pair_flip",
	InnerOuter:       "inner_outer",
}

// Orderings lists every flat ordering in declaration order.
func Orderings() []Ordering {
	return []Ordering{Natural, Reverse, HalfShift, ReverseHalfShift, PairFlip, InnerOuter}
}

func (o Ordering) String() string {
	if o < 0 || int(o) >= len(orderingNames) {
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
	return orderingNames[o]
}

func (o Ordering) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(orderingNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrdering, int(o))
	}
	return []byte(orderingNames[o]), nil
}

func (o *Ordering) UnmarshalText(text []byte) error {
	parsed, err := ParseOrdering(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOrdering maps a wire name such as "half_shift" to its Ordering.
func ParseOrdering(name string) (Ordering, error) {
	for i, n := range orderingNames {
		if n == name {
			return Ordering(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
}

// ParseOrderings parses a list of names, stopping at the first unknown one.
func ParseOrderings(names []string) ([]Ordering, error) {
	out := make([]Ordering, 0, len(names))
	for _, name := range names {
		o, err := ParseOrdering(name)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// Apply returns a reordered copy of s. The input is never modified.
func Apply[T any](o Ordering, s []T) ([]T, error) {
	switch o {
	case Natural:
		return slices.Clone(s), nil
	case Reverse:
		out := slices.Clone(s)
		slices.Reverse(out)
		return out, nil
	case HalfShift:
		if err := EnsureEvenSized(s); err != nil {
			return nil, fmt.Errorf("half_shift: %w", err)
		}
		half := len(s) / 2
		return concat(s[half:], s[:half]), nil
	case ReverseHalfShift:
		if err := EnsureEvenSized(s); err != nil {
			return nil, fmt.Errorf("reverse_half_shift: %w", err)
		}
		half := len(s) / 2
		first, second := slices.Clone(s[:half]), slices.Clone(s[half:])
		slices.Reverse(first)
		slices.Reverse(second)
		return concat(second, first), nil
	case PairFlip:
		if err := EnsureEvenSized(s); err != nil {
			return nil, fmt.Errorf("pair_flip: %w", err)
		}
		out := make([]T, 0, len(s))
		for i := 0; i < len(s); i += 2 {
			out = append(out, s[i+1], s[i])
		}
		return out, nil
	case InnerOuter:
		if err := EnsureEvenSized(s); err != nil {
			return nil, fmt.Errorf("inner_outer: %w", err)
		}
		n := len(s)
		out := make([]T, 0, n)
		for i := 0; i < n/2; i++ {
			out = append(out, s[i], s[n-1-i])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrdering, int(o))
	}
}

// ApplyAll applies orderings left to right.
func ApplyAll[T any](s []T, orderings ...Ordering) ([]T, error) {
	out := slices.Clone(s)
	for _, o := range orderings {
		next, err := Apply(o, out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
