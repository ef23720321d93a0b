package brackets

import (
	"fmt"

	"github.com/Dosada05/bracket-seeding/seeding"
)

// prepareSeeds fills the bracket up to its size with byes, spreading them
// when balanceByes is set.
func prepareSeeds(seeds []seeding.Seed, settings Settings, minSize int) ([]seeding.Seed, int, error) {
	if settings.MatchesChildCount < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidChildCount, settings.MatchesChildCount)
	}
	size := settings.Size
	if size == 0 {
		size = seeding.NearestPowerOfTwo(len(seeds))
	}
	if size < minSize {
		return nil, 0, fmt.Errorf("%w: bracket size %d, minimum is %d", ErrNotEnoughSeeds, size, minSize)
	}

	var padded []seeding.Seed
	var err error
	if settings.BalanceByes {
		padded, err = seeding.BalanceByes(seeds, size)
	} else {
		padded, err = seeding.PadWithByes(seeds, size)
	}
	if err != nil {
		return nil, 0, err
	}
	return padded, size, nil
}

func seedSlots(seeds []seeding.Seed) []Slot {
	slots := make([]Slot, len(seeds))
	for i, s := range seeds {
		slots[i] = Slot{Seed: s}
	}
	return slots
}

func makeRound(number int, duels []seeding.Duel[Slot], childCount int) Round {
	round := Round{Number: number, Matches: make([]Match, len(duels))}
	for i, d := range duels {
		round.Matches[i] = Match{
			Number:     i + 1,
			Opponent1:  d[0],
			Opponent2:  d[1],
			ChildCount: childCount,
		}
	}
	return round
}

// advancers returns the slot that moves on from every match of a round. A
// bye hands the match to its opponent, which keeps its own origin.
func advancers(group int, round Round) []Slot {
	out := make([]Slot, len(round.Matches))
	for i, m := range round.Matches {
		switch {
		case m.Opponent2.Seed.IsBye():
			out[i] = m.Opponent1
		case m.Opponent1.Seed.IsBye():
			out[i] = m.Opponent2
		default:
			out[i] = Slot{From: &Source{Group: group, Round: round.Number, Match: m.Number, Outcome: OutcomeWinner}}
		}
	}
	return out
}

// losers returns the slot dropped by every match of a round. A match
// decided by a bye drops a bye.
func losers(group int, round Round) []Slot {
	out := make([]Slot, len(round.Matches))
	for i, m := range round.Matches {
		if m.IsBye() {
			out[i] = Slot{Seed: seeding.Bye()}
			continue
		}
		out[i] = Slot{From: &Source{Group: group, Round: round.Number, Match: m.Number, Outcome: OutcomeLoser}}
	}
	return out
}

// buildWinnerBracket orders the seeds for round 1 and chains every later
// round from the winners of the previous one.
func buildWinnerBracket(seeds []seeding.Seed, ordering seeding.Ordering, childCount int) ([]Round, error) {
	ordered, err := seeding.Apply(ordering, seedSlots(seeds))
	if err != nil {
		return nil, fmt.Errorf("winner bracket round 1: %w", err)
	}
	duels, err := seeding.MakePairs(ordered)
	if err != nil {
		return nil, fmt.Errorf("winner bracket round 1: %w", err)
	}

	rounds := []Round{makeRound(1, duels, childCount)}
	for len(rounds[len(rounds)-1].Matches) > 1 {
		prev := rounds[len(rounds)-1]
		duels, err := seeding.MakePairs(advancers(WinnerBracket, prev))
		if err != nil {
			return nil, fmt.Errorf("winner bracket round %d: %w", prev.Number+1, err)
		}
		rounds = append(rounds, makeRound(prev.Number+1, duels, childCount))
	}
	return rounds, nil
}

func firstOrdering(names []string, fallback seeding.Ordering) (seeding.Ordering, error) {
	if len(names) == 0 {
		return fallback, nil
	}
	return seeding.ParseOrdering(names[0])
}

func orderingNames(orderings []seeding.Ordering) []string {
	names := make([]string, len(orderings))
	for i, o := range orderings {
		names[i] = o.String()
	}
	return names
}
