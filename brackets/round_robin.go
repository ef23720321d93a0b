package brackets

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/Dosada05/bracket-seeding/seeding"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() BracketGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// Generate distributes the seeds into groups. A manual ordering (1-based
// seed positions per group) takes precedence over the seed ordering.
// Matches inside a group are left to the round-robin scheduler.
func (g *RoundRobinGenerator) Generate(ctx context.Context, params GenerateParams) (*Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seeds := params.Seeds
	if len(seeds) < 2 {
		return nil, fmt.Errorf("%w: round robin needs at least 2 seeds, got %d", ErrNotEnoughSeeds, len(seeds))
	}

	var groups [][]seeding.Seed
	var err error
	orderings := []string{}
	if len(params.Settings.ManualOrdering) > 0 {
		groups, err = manualGroups(seeds, params.Settings.ManualOrdering, params.Settings.GroupCount)
		if err != nil {
			return nil, err
		}
	} else {
		groupCount := params.Settings.GroupCount
		if groupCount == 0 {
			groupCount = 1
		}
		if groupCount < 1 || groupCount > len(seeds) {
			return nil, fmt.Errorf("%w: %d groups for %d seeds", ErrInvalidGroupCount, groupCount, len(seeds))
		}

		ordering := seeding.EffortBalanced
		if len(params.Settings.SeedOrdering) > 1 {
			return nil, fmt.Errorf("%w: round robin takes 1 ordering, got %d", ErrOrderingCount, len(params.Settings.SeedOrdering))
		}
		if len(params.Settings.SeedOrdering) == 1 {
			ordering, err = seeding.ParseGroupOrdering(params.Settings.SeedOrdering[0])
			if err != nil {
				return nil, err
			}
		}
		groups, err = seeding.Distribute(ordering, seeds, groupCount)
		if err != nil {
			return nil, err
		}
		orderings = []string{ordering.String()}
	}

	stage := &Stage{
		Name:      params.Name,
		Type:      StageRoundRobin,
		Size:      len(seeds),
		Orderings: orderings,
		Groups:    make([]Group, len(groups)),
	}
	for i, members := range groups {
		stage.Groups[i] = Group{
			Number: i + 1,
			Name:   fmt.Sprintf("Group %d", i+1),
			Seeds:  members,
		}
	}
	return stage, nil
}

// manualGroups checks that every seed position is used exactly once.
func manualGroups(seeds []seeding.Seed, manual [][]int, groupCount int) ([][]seeding.Seed, error) {
	if groupCount != 0 && groupCount != len(manual) {
		return nil, fmt.Errorf("%w: %d groups requested, manual ordering has %d", ErrInvalidManualOrdering, groupCount, len(manual))
	}

	positions := lo.Flatten(manual)
	if len(positions) != len(seeds) {
		return nil, fmt.Errorf("%w: %d positions for %d seeds", ErrInvalidManualOrdering, len(positions), len(seeds))
	}
	if dup := lo.FindDuplicates(positions); len(dup) > 0 {
		return nil, fmt.Errorf("%w: positions %v used more than once", ErrInvalidManualOrdering, dup)
	}

	groups := make([][]seeding.Seed, len(manual))
	for i, group := range manual {
		if len(group) == 0 {
			return nil, fmt.Errorf("%w: group %d is empty", ErrInvalidManualOrdering, i+1)
		}
		groups[i] = make([]seeding.Seed, 0, len(group))
		for _, pos := range group {
			if pos < 1 || pos > len(seeds) {
				return nil, fmt.Errorf("%w: position %d out of range 1..%d", ErrInvalidManualOrdering, pos, len(seeds))
			}
			groups[i] = append(groups[i], seeds[pos-1])
		}
	}
	return groups, nil
}
