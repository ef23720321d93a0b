package brackets

import "github.com/Dosada05/bracket-seeding/seeding"

type StageType string

const (
	StageSingleElimination StageType = "single_elimination"
	StageDoubleElimination StageType = "double_elimination"
	StageRoundRobin        StageType = "round_robin"
)

type GrandFinalType string

const (
	GrandFinalNone   GrandFinalType = "none"
	GrandFinalSimple GrandFinalType = "simple"
	GrandFinalDouble GrandFinalType = "double"
)

// Group numbers used by elimination stages.
const (
	WinnerBracket = 1
	LoserBracket  = 2
	FinalGroup    = 3
)

// Settings tune how a stage is laid out. SeedOrdering semantics depend on
// the stage type:
//   - single elimination: 1 item, applied to round 1.
//   - double elimination: 1 item for WB round 1, optionally followed by one
//     item for LB round 1 and one per LB minor round.
//   - round robin: 1 item with the "groups." prefix.
type Settings struct {
	SeedOrdering      []string       `json:"seed_ordering,omitempty"`
	BalanceByes       bool           `json:"balance_byes,omitempty"`
	Size              int            `json:"size,omitempty" validate:"min=0,max=1024"`
	GroupCount        int            `json:"group_count,omitempty" validate:"min=0,max=1024"`
	ManualOrdering    [][]int        `json:"manual_ordering,omitempty"`
	ConsolationFinal  bool           `json:"consolation_final,omitempty"`
	GrandFinal        GrandFinalType `json:"grand_final,omitempty"`
	MatchesChildCount int            `json:"matches_child_count,omitempty" validate:"min=0"`
}

type Outcome string

const (
	OutcomeWinner Outcome = "winner"
	OutcomeLoser  Outcome = "loser"
)

// Source points at the match whose winner or loser fills a slot.
type Source struct {
	Group   int     `json:"group"`
	Round   int     `json:"round"`
	Match   int     `json:"match"`
	Outcome Outcome `json:"outcome"`
}

type Slot struct {
	Seed seeding.Seed `json:"seed"`
	From *Source      `json:"from,omitempty"`
}

type Match struct {
	Number     int  `json:"number"`
	Opponent1  Slot `json:"opponent1"`
	Opponent2  Slot `json:"opponent2"`
	ChildCount int  `json:"child_count,omitempty"`
}

// IsBye reports whether one side of the match is a bye.
func (m Match) IsBye() bool {
	return m.Opponent1.Seed.IsBye() || m.Opponent2.Seed.IsBye()
}

type Round struct {
	Number  int     `json:"number"`
	Matches []Match `json:"matches"`
}

type Group struct {
	Number int            `json:"number"`
	Name   string         `json:"name"`
	Seeds  []seeding.Seed `json:"seeds,omitempty"`
	Rounds []Round        `json:"rounds,omitempty"`
}

// Stage is the layout produced by a generator. Orderings holds the
// effective ordering names, defaults included.
type Stage struct {
	Name      string    `json:"name"`
	Type      StageType `json:"type"`
	Size      int       `json:"size"`
	Orderings []string  `json:"orderings"`
	Groups    []Group   `json:"groups"`
}

// Group returns the group with the given number, or nil.
func (s *Stage) Group(number int) *Group {
	for i := range s.Groups {
		if s.Groups[i].Number == number {
			return &s.Groups[i]
		}
	}
	return nil
}

// FirstRound returns the matches of the first round of the first group.
func (s *Stage) FirstRound() []Match {
	if len(s.Groups) == 0 || len(s.Groups[0].Rounds) == 0 {
		return nil
	}
	return s.Groups[0].Rounds[0].Matches
}
