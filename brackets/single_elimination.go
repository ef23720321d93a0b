package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/bracket-seeding/seeding"
)

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() BracketGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// Generate lays out every round of a single elimination bracket. Seeds are
// ordered with the first seed ordering (inner_outer by default) and the
// optional consolation final opposes the two semi-final losers.
func (g *SingleEliminationGenerator) Generate(ctx context.Context, params GenerateParams) (*Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(params.Settings.SeedOrdering) > 1 {
		return nil, fmt.Errorf("%w: single elimination takes 1 ordering, got %d", ErrOrderingCount, len(params.Settings.SeedOrdering))
	}

	seeds, size, err := prepareSeeds(params.Seeds, params.Settings, 2)
	if err != nil {
		return nil, err
	}
	ordering, err := firstOrdering(params.Settings.SeedOrdering, seeding.InnerOuter)
	if err != nil {
		return nil, err
	}

	childCount := params.Settings.MatchesChildCount
	rounds, err := buildWinnerBracket(seeds, ordering, childCount)
	if err != nil {
		return nil, err
	}

	stage := &Stage{
		Name:      params.Name,
		Type:      StageSingleElimination,
		Size:      size,
		Orderings: orderingNames([]seeding.Ordering{ordering}),
		Groups:    []Group{{Number: WinnerBracket, Name: "Bracket", Rounds: rounds}},
	}

	if params.Settings.ConsolationFinal && len(rounds) >= 2 {
		semiFinal := rounds[len(rounds)-2]
		duels, err := seeding.MakePairs(losers(WinnerBracket, semiFinal))
		if err != nil {
			return nil, fmt.Errorf("consolation final: %w", err)
		}
		stage.Groups = append(stage.Groups, Group{
			Number: LoserBracket,
			Name:   "Consolation Final",
			Rounds: []Round{makeRound(1, duels, childCount)},
		})
	}

	return stage, nil
}
