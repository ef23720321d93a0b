package brackets

import (
	"context"
	"fmt"

	"github.com/Dosada05/bracket-seeding/seeding"
)

type GenerateParams struct {
	Name     string
	Seeds    []seeding.Seed
	Settings Settings
}

type BracketGenerator interface {
	Generate(ctx context.Context, params GenerateParams) (*Stage, error)

	GetName() string
}

func NewGenerator(stageType StageType) (BracketGenerator, error) {
	switch stageType {
	case StageSingleElimination:
		return NewSingleEliminationGenerator(), nil
	case StageDoubleElimination:
		return NewDoubleEliminationGenerator(), nil
	case StageRoundRobin:
		return NewRoundRobinGenerator(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStageType, stageType)
	}
}
