package seeding

import "fmt"

// GroupOrdering distributes a seed list across groups instead of
// permuting it for pairing.
type GroupOrdering int

const (
	EffortBalanced GroupOrdering = iota
	SeedOptimized
	BracketOptimized
)

var groupOrderingNames = [...]string{
	EffortBalanced:   "groups.effort_balanced",
	SeedOptimized:    "groups.seed_optimized",
	BracketOptimized: "groups.bracket_optimized",
}

func GroupOrderings() []GroupOrdering {
	return []GroupOrdering{EffortBalanced, SeedOptimized, BracketOptimized}
}

func (o GroupOrdering) String() string {
	if o < 0 || int(o) >= len(groupOrderingNames) {
		return fmt.Sprintf("GroupOrdering(%d)", int(o))
	}
	return groupOrderingNames[o]
}

func (o GroupOrdering) MarshalText() ([]byte, error) {
	if o < 0 || int(o) >= len(groupOrderingNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrdering, int(o))
	}
	return []byte(groupOrderingNames[o]), nil
}

func (o *GroupOrdering) UnmarshalText(text []byte) error {
	parsed, err := ParseGroupOrdering(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseGroupOrdering expects the "groups." prefix, e.g. "groups.seed_optimized".
func ParseGroupOrdering(name string) (GroupOrdering, error) {
	for i, n := range groupOrderingNames {
		if n == name {
			return GroupOrdering(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
}

// Distribute splits s into groupCount groups. Every seed lands in exactly
// one group and group sizes differ by at most one. The group count must lie
// between 1 and len(s) so that no group is empty.
func Distribute[T any](o GroupOrdering, s []T, groupCount int) ([][]T, error) {
	if groupCount < 1 {
		return nil, fmt.Errorf("%w: group count %d must be positive", ErrInvalidSize, groupCount)
	}
	if groupCount > len(s) {
		return nil, fmt.Errorf("%w: %d groups for %d seeds", ErrInvalidSize, groupCount, len(s))
	}

	switch o {
	case EffortBalanced:
		groups := makeGroups[T](groupCount, len(s))
		for i, seed := range s {
			groups[i%groupCount] = append(groups[i%groupCount], seed)
		}
		return groups, nil
	case SeedOptimized:
		return snake(s, groupCount), nil
	case BracketOptimized:
		groups := snake(s, groupCount)
		if groupCount < 2 || !IsPowerOfTwo(groupCount) {
			return groups, nil
		}
		return Apply(InnerOuter, groups)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrdering, int(o))
	}
}

// snake deals tiers of groupCount seeds, reversing direction every tier.
func snake[T any](s []T, groupCount int) [][]T {
	groups := makeGroups[T](groupCount, len(s))
	for i, seed := range s {
		tier, pos := i/groupCount, i%groupCount
		if tier%2 == 1 {
			pos = groupCount - 1 - pos
		}
		groups[pos] = append(groups[pos], seed)
	}
	return groups
}

func makeGroups[T any](groupCount, total int) [][]T {
	groups := make([][]T, groupCount)
	for i := range groups {
		groups[i] = make([]T, 0, (total+groupCount-1)/groupCount)
	}
	return groups
}
