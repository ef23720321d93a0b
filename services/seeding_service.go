package services

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/Dosada05/bracket-seeding/seeding"
)

// OperationRecorder receives one observation per seeding operation.
type OperationRecorder interface {
	ObserveOperation(operation string, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, error) {}

type SeedingService interface {
	Orderings() OrderingsInfo
	DefaultMinorOrdering(size int) ([]string, error)
	Order(input OrderInput) ([]seeding.Seed, error)
	Pairs(input PairsInput) ([]seeding.Duel[seeding.Seed], error)
	Groups(input GroupsInput) ([][]seeding.Seed, error)
	BalanceByes(input BalanceByesInput) ([]seeding.Seed, error)
	Winner(input WinnerInput) (*WinnerResult, error)
}

// OrderingsInfo lists the ordering vocabulary the engine understands.
type OrderingsInfo struct {
	Orderings          []string `json:"orderings"`
	GroupOrderings     []string `json:"group_orderings"`
	MinorOrderingSizes []int    `json:"minor_ordering_sizes"`
}

type OrderInput struct {
	Seeds     []seeding.Seed `json:"seeds" validate:"required"`
	Orderings []string       `json:"orderings" validate:"required,min=1,dive,required"`
}

// PairsInput pairs Seeds among themselves, or against Against when it is set.
// Ordering, when set, is applied to Seeds first.
type PairsInput struct {
	Seeds    []seeding.Seed `json:"seeds" validate:"required"`
	Ordering string         `json:"ordering,omitempty"`
	Against  []seeding.Seed `json:"against,omitempty"`
}

type GroupsInput struct {
	Seeds      []seeding.Seed `json:"seeds" validate:"required"`
	Ordering   string         `json:"ordering" validate:"required"`
	GroupCount int            `json:"group_count" validate:"required,min=1,max=1024"`
}

// BalanceByesInput with a zero Size targets the nearest power of two.
type BalanceByesInput struct {
	Seeds []seeding.Seed `json:"seeds" validate:"required"`
	Size  int            `json:"size" validate:"min=0,max=1024"`
}

type WinnerInput struct {
	Scores seeding.Scores `json:"scores"`
}

type WinnerResult struct {
	Winner seeding.Side `json:"winner"`
	Loser  seeding.Side `json:"loser"`
}

type seedingService struct {
	recorder OperationRecorder
}

func NewSeedingService(recorder OperationRecorder) SeedingService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &seedingService{recorder: recorder}
}

func (s *seedingService) observe(operation string, err error) {
	s.recorder.ObserveOperation(operation, err)
}

func (s *seedingService) Orderings() OrderingsInfo {
	return OrderingsInfo{
		Orderings:          lo.Map(seeding.Orderings(), func(o seeding.Ordering, _ int) string { return o.String() }),
		GroupOrderings:     lo.Map(seeding.GroupOrderings(), func(o seeding.GroupOrdering, _ int) string { return o.String() }),
		MinorOrderingSizes: seeding.SupportedMinorOrderingSizes(),
	}
}

func (s *seedingService) DefaultMinorOrdering(size int) (names []string, err error) {
	defer func() { s.observe("default_minor_ordering", err) }()

	orderings, err := seeding.DefaultMinorOrdering(size)
	if err != nil {
		return nil, err
	}
	return lo.Map(orderings, func(o seeding.Ordering, _ int) string { return o.String() }), nil
}

func (s *seedingService) Order(input OrderInput) (out []seeding.Seed, err error) {
	defer func() { s.observe("order", err) }()

	orderings, err := seeding.ParseOrderings(input.Orderings)
	if err != nil {
		return nil, err
	}
	out, err = seeding.ApplyAll(input.Seeds, orderings...)
	if err != nil {
		return nil, fmt.Errorf("order %d seeds: %w", len(input.Seeds), err)
	}
	return out, nil
}

func (s *seedingService) Pairs(input PairsInput) (duels []seeding.Duel[seeding.Seed], err error) {
	defer func() { s.observe("pairs", err) }()

	seeds := input.Seeds
	if input.Ordering != "" {
		ordering, err := seeding.ParseOrdering(input.Ordering)
		if err != nil {
			return nil, err
		}
		if seeds, err = seeding.Apply(ordering, seeds); err != nil {
			return nil, fmt.Errorf("order %d seeds: %w", len(input.Seeds), err)
		}
	}

	if input.Against != nil {
		return seeding.MakeCrossPairs(seeds, input.Against)
	}
	return seeding.MakePairs(seeds)
}

func (s *seedingService) Groups(input GroupsInput) (groups [][]seeding.Seed, err error) {
	defer func() { s.observe("groups", err) }()

	ordering, err := seeding.ParseGroupOrdering(input.Ordering)
	if err != nil {
		return nil, err
	}
	return seeding.Distribute(ordering, input.Seeds, input.GroupCount)
}

func (s *seedingService) BalanceByes(input BalanceByesInput) (out []seeding.Seed, err error) {
	defer func() { s.observe("balance_byes", err) }()

	return seeding.BalanceByes(input.Seeds, input.Size)
}

func (s *seedingService) Winner(input WinnerInput) (result *WinnerResult, err error) {
	defer func() { s.observe("winner", err) }()

	winner, err := seeding.Winner(input.Scores)
	if err != nil {
		return nil, err
	}
	loser, err := seeding.Loser(input.Scores)
	if err != nil {
		return nil, err
	}
	return &WinnerResult{Winner: winner, Loser: loser}, nil
}
