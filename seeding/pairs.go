package seeding

// Duel is one meeting between two slots, opponent 1 first.
type Duel[T any] [2]T

// Side identifies an opponent within a duel.
type Side int

const (
	Opponent1 Side = iota
	Opponent2
)

func (s Side) String() string {
	if s == Opponent2 {
		return "opponent2"
	}
	return "opponent1"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Scores holds the scores of opponent 1 and opponent 2.
type Scores [2]float64

// MakePairs pairs each element with its next one: [1 2 3 4] -> [[1 2] [3 4]].
func MakePairs[T any](s []T) ([]Duel[T], error) {
	if err := EnsureEvenSized(s); err != nil {
		return nil, err
	}
	duels := make([]Duel[T], 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		duels = append(duels, Duel[T]{s[i], s[i+1]})
	}
	return duels, nil
}

// MakeCrossPairs pairs left[i] with right[i]: [1 2] + [3 4] -> [[1 3] [2 4]].
func MakeCrossPairs[T any](left, right []T) ([]Duel[T], error) {
	if err := EnsureEquallySized(left, right); err != nil {
		return nil, err
	}
	duels := make([]Duel[T], 0, len(left))
	for i := range left {
		duels = append(duels, Duel[T]{left[i], right[i]})
	}
	return duels, nil
}

// Winner returns the side with the higher score.
func Winner(scores Scores) (Side, error) {
	if err := EnsureNotTied(scores); err != nil {
		return 0, err
	}
	if scores[0] > scores[1] {
		return Opponent1, nil
	}
	return Opponent2, nil
}

// Loser returns the side with the lower score.
func Loser(scores Scores) (Side, error) {
	w, err := Winner(scores)
	if err != nil {
		return 0, err
	}
	return 1 - w, nil
}
