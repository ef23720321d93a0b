package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/bracket-seeding/seeding"
)

type DoubleEliminationGenerator struct{}

func NewDoubleEliminationGenerator() BracketGenerator {
	return &DoubleEliminationGenerator{}
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}

// Generate lays out the winner bracket, the loser bracket and the grand
// final. Winner bracket losers enter the loser bracket through the
// orderings that follow the first one; with a single ordering the default
// minor ordering for the bracket size is used.
func (g *DoubleEliminationGenerator) Generate(ctx context.Context, params GenerateParams) (*Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grandFinal := params.Settings.GrandFinal
	if grandFinal == "" {
		grandFinal = GrandFinalNone
	}
	if grandFinal != GrandFinalNone && grandFinal != GrandFinalSimple && grandFinal != GrandFinalDouble {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGrandFinal, grandFinal)
	}

	seeds, size, err := prepareSeeds(params.Seeds, params.Settings, 4)
	if err != nil {
		return nil, err
	}
	orderings, err := doubleEliminationOrderings(params.Settings.SeedOrdering, size)
	if err != nil {
		return nil, err
	}

	childCount := params.Settings.MatchesChildCount
	wb, err := buildWinnerBracket(seeds, orderings[0], childCount)
	if err != nil {
		return nil, err
	}
	lb, err := buildLoserBracket(wb, orderings[1:], childCount)
	if err != nil {
		return nil, err
	}

	stage := &Stage{
		Name:      params.Name,
		Type:      StageDoubleElimination,
		Size:      size,
		Orderings: orderingNames(orderings),
		Groups: []Group{
			{Number: WinnerBracket, Name: "Winner Bracket", Rounds: wb},
			{Number: LoserBracket, Name: "Loser Bracket", Rounds: lb},
		},
	}

	if grandFinal != GrandFinalNone {
		wbWinner := advancers(WinnerBracket, wb[len(wb)-1])[0]
		lbWinner := advancers(LoserBracket, lb[len(lb)-1])[0]
		final := Group{
			Number: FinalGroup,
			Name:   "Grand Final",
			Rounds: []Round{makeRound(1, []seeding.Duel[Slot]{{wbWinner, lbWinner}}, childCount)},
		}
		if grandFinal == GrandFinalDouble {
			reset := seeding.Duel[Slot]{
				{From: &Source{Group: FinalGroup, Round: 1, Match: 1, Outcome: OutcomeWinner}},
				{From: &Source{Group: FinalGroup, Round: 1, Match: 1, Outcome: OutcomeLoser}},
			}
			final.Rounds = append(final.Rounds, makeRound(2, []seeding.Duel[Slot]{reset}, childCount))
		}
		stage.Groups = append(stage.Groups, final)
	}

	return stage, nil
}

// doubleEliminationOrderings returns the winner bracket ordering followed
// by the loser bracket round 1 ordering and one ordering per minor round.
func doubleEliminationOrderings(names []string, size int) ([]seeding.Ordering, error) {
	minorRounds := 0
	for n := size; n > 2; n /= 2 {
		minorRounds++
	}
	want := 2 + minorRounds

	if len(names) > 1 {
		if len(names) != want {
			return nil, fmt.Errorf("%w: bracket of %d needs 1 or %d orderings, got %d", ErrOrderingCount, size, want, len(names))
		}
		return seeding.ParseOrderings(names)
	}

	first, err := firstOrdering(names, seeding.InnerOuter)
	if err != nil {
		return nil, err
	}
	minor, err := seeding.DefaultMinorOrdering(size)
	if err != nil {
		return nil, err
	}
	return append([]seeding.Ordering{first}, minor...), nil
}

// buildLoserBracket feeds winner bracket round 1 losers into LB round 1,
// then alternates minor rounds (LB survivors against the losers of the
// next WB round) and major rounds (LB survivors against each other).
func buildLoserBracket(wb []Round, orderings []seeding.Ordering, childCount int) ([]Round, error) {
	entrants, err := seeding.Apply(orderings[0], losers(WinnerBracket, wb[0]))
	if err != nil {
		return nil, fmt.Errorf("loser bracket round 1: %w", err)
	}
	duels, err := seeding.MakePairs(entrants)
	if err != nil {
		return nil, fmt.Errorf("loser bracket round 1: %w", err)
	}
	rounds := []Round{makeRound(1, duels, childCount)}

	minor := orderings[1:]
	for k, ordering := range minor {
		prev := rounds[len(rounds)-1]
		dropped, err := seeding.Apply(ordering, losers(WinnerBracket, wb[k+1]))
		if err != nil {
			return nil, fmt.Errorf("loser bracket minor round %d: %w", k+1, err)
		}
		duels, err := seeding.MakeCrossPairs(dropped, advancers(LoserBracket, prev))
		if err != nil {
			return nil, fmt.Errorf("loser bracket minor round %d: %w", k+1, err)
		}
		rounds = append(rounds, makeRound(prev.Number+1, duels, childCount))

		if k == len(minor)-1 {
			break
		}
		prev = rounds[len(rounds)-1]
		duels, err = seeding.MakePairs(advancers(LoserBracket, prev))
		if err != nil {
			return nil, fmt.Errorf("loser bracket round %d: %w", prev.Number+1, err)
		}
		rounds = append(rounds, makeRound(prev.Number+1, duels, childCount))
	}
	return rounds, nil
}
