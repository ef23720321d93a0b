package seeding

import "fmt"

// MaxBracketSize bounds the number of slots of a generated bracket.
const MaxBracketSize = 1024

func ensureBracketSize(size int) error {
	if !IsPowerOfTwo(size) {
		return fmt.Errorf("%w: bracket size %d must be a power of two", ErrInvalidSize, size)
	}
	if size > MaxBracketSize {
		return fmt.Errorf("%w: bracket size %d exceeds %d", ErrInvalidSize, size, MaxBracketSize)
	}
	return nil
}

// PadWithByes returns a copy of seeds extended with byes up to size.
func PadWithByes(seeds []Seed, size int) ([]Seed, error) {
	if err := ensureBracketSize(size); err != nil {
		return nil, err
	}
	if len(seeds) > size {
		return nil, fmt.Errorf("%w: %d seeds do not fit a bracket of %d", ErrInvalidSize, len(seeds), size)
	}
	out := make([]Seed, size)
	copy(out, seeds)
	for i := len(seeds); i < size; i++ {
		out[i] = Bye()
	}
	return out, nil
}

// BalanceByes drops the byes of seeds and spreads new ones over the first
// round. When at least half of the slots hold participants, no duel opposes
// two byes. Otherwise every participant is paired with a bye and the
// remaining slots are filled with byes, which yields bye-vs-bye duels once
// size exceeds twice the participant count. A size of 0 selects the nearest
// power of two.
func BalanceByes(seeds []Seed, size int) ([]Seed, error) {
	participants := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		if !s.IsBye() {
			participants = append(participants, s)
		}
	}
	n := len(participants)

	if size == 0 {
		if n == 0 {
			return []Seed{}, nil
		}
		size = NearestPowerOfTwo(n)
	}
	if err := ensureBracketSize(size); err != nil {
		return nil, err
	}
	if n > size {
		return nil, fmt.Errorf("%w: %d participants do not fit a bracket of %d", ErrInvalidSize, n, size)
	}

	out := make([]Seed, 0, size)
	if 2*n < size {
		for _, p := range participants {
			out = append(out, p, Bye())
		}
		return PadWithByes(out, size)
	}

	byes := size - n
	paired := n - byes
	out = append(out, participants[:paired]...)
	for _, p := range participants[paired:] {
		out = append(out, p, Bye())
	}
	return out, nil
}
