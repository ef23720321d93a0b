package brackets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/bracket-seeding/seeding"
)

func TestRoundRobinDistribution(t *testing.T) {
	stage, err := NewRoundRobinGenerator().Generate(context.Background(), GenerateParams{
		Name:     "Pools",
		Seeds:    seeds(8),
		Settings: Settings{GroupCount: 2, SeedOrdering: []string{"groups.seed_optimized"}},
	})
	require.NoError(t, err)

	assert.Equal(t, StageRoundRobin, stage.Type)
	assert.Equal(t, []string{"groups.seed_optimized"}, stage.Orderings)
	require.Len(t, stage.Groups, 2)
	assert.Equal(t, knownSeeds("A", "D", "E", "H"), stage.Groups[0].Seeds)
	assert.Equal(t, knownSeeds("B", "C", "F", "G"), stage.Groups[1].Seeds)
	assert.Equal(t, "Group 2", stage.Groups[1].Name)
	assert.Empty(t, stage.Groups[0].Rounds)
}

func TestRoundRobinDefaults(t *testing.T) {
	stage, err := NewRoundRobinGenerator().Generate(context.Background(), GenerateParams{Seeds: seeds(4)})
	require.NoError(t, err)

	assert.Equal(t, []string{"groups.effort_balanced"}, stage.Orderings)
	require.Len(t, stage.Groups, 1)
	assert.Equal(t, seeds(4), stage.Groups[0].Seeds)
}

func TestRoundRobinManualOrdering(t *testing.T) {
	stage, err := NewRoundRobinGenerator().Generate(context.Background(), GenerateParams{
		Seeds:    seeds(4),
		Settings: Settings{ManualOrdering: [][]int{{1, 4}, {3, 2}}},
	})
	require.NoError(t, err)

	require.Len(t, stage.Groups, 2)
	assert.Equal(t, knownSeeds("A", "D"), stage.Groups[0].Seeds)
	assert.Equal(t, knownSeeds("C", "B"), stage.Groups[1].Seeds)
	assert.Empty(t, stage.Orderings)
}

func TestRoundRobinErrors(t *testing.T) {
	gen := NewRoundRobinGenerator()
	ctx := context.Background()

	tests := []struct {
		name     string
		seeds    []seeding.Seed
		settings Settings
		want     error
	}{
		{"one seed", seeds(1), Settings{}, ErrNotEnoughSeeds},
		{"too many groups", seeds(4), Settings{GroupCount: 5}, ErrInvalidGroupCount},
		{"negative groups", seeds(4), Settings{GroupCount: -1}, ErrInvalidGroupCount},
		{"flat ordering", seeds(4), Settings{SeedOrdering: []string{"natural"}}, seeding.ErrUnknownOrdering},
		{"two orderings", seeds(4), Settings{SeedOrdering: []string{"groups.seed_optimized", "groups.seed_optimized"}}, ErrOrderingCount},
		{"duplicate position", seeds(4), Settings{ManualOrdering: [][]int{{1, 1}, {2, 3}}}, ErrInvalidManualOrdering},
		{"missing position", seeds(4), Settings{ManualOrdering: [][]int{{1, 2}, {3}}}, ErrInvalidManualOrdering},
		{"out of range", seeds(4), Settings{ManualOrdering: [][]int{{1, 2}, {3, 5}}}, ErrInvalidManualOrdering},
		{"group count mismatch", seeds(4), Settings{GroupCount: 3, ManualOrdering: [][]int{{1, 2}, {3, 4}}}, ErrInvalidManualOrdering},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(ctx, GenerateParams{Seeds: tt.seeds, Settings: tt.settings})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	for stageType, name := range map[StageType]string{
		StageSingleElimination: "SingleElimination",
		StageDoubleElimination: "DoubleElimination",
		StageRoundRobin:        "RoundRobin",
	} {
		gen, err := NewGenerator(stageType)
		require.NoError(t, err)
		assert.Equal(t, name, gen.GetName())
	}

	_, err := NewGenerator("swiss")
	assert.ErrorIs(t, err, ErrUnsupportedStageType)
}
