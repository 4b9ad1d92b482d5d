package nutrition

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crag/internal/models"
)

func baseProfile(goal models.Goal) *models.Profile {
	return &models.Profile{
		WeightLb:      150,
		HeightIn:      68,
		Age:           30,
		Sex:           models.SexMale,
		ActivityLevel: models.ActivityModerate,
		Goal:          goal,
	}
}

func TestCalculateTargets(t *testing.T) {
	tests := []struct {
		goal models.Goal
		want Targets
	}{
		{models.GoalMaintain, Targets{Calories: 2503, ProteinG: 150, CarbsG: 289, FatG: 83, HydrationMl: 5000}},
		{models.GoalCut, Targets{Calories: 2002, ProteinG: 216, CarbsG: 159, FatG: 56, HydrationMl: 5000}},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			got, err := CalculateTargets(baseProfile(tt.goal))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CalculateTargets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateTargetsCarbsSaturateAtZero(t *testing.T) {
	p := &models.Profile{
		WeightLb:      400,
		HeightIn:      20,
		Age:           90,
		Sex:           models.SexFemale,
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalCut,
	}

	got, err := CalculateTargets(p)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CarbsG)
	assert.Greater(t, got.ProteinG*4, got.Calories)
}

func TestCalculateTargetsMonotonicInActivity(t *testing.T) {
	for _, goal := range models.AllGoals {
		prev := 0
		for _, level := range models.AllActivityLevels {
			p := baseProfile(goal)
			p.ActivityLevel = level
			got, err := CalculateTargets(p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Calories, prev, "%s/%s", goal, level)
			prev = got.Calories
		}
	}
}

func TestCalculateTargetsValidatesProfile(t *testing.T) {
	p := baseProfile(models.GoalBulk)
	p.WeightLb = -10
	p.Goal = "shred"

	_, err := CalculateTargets(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.True(t, errors.Is(err, models.ErrInvalid))
}

func TestMacroDistribution(t *testing.T) {
	d := MacroDistribution(Targets{Calories: 2503, ProteinG: 150, CarbsG: 289, FatG: 83})
	assert.Equal(t, Distribution{Protein: 24, Carbs: 46, Fat: 30}, d)

	assert.Equal(t, Distribution{}, MacroDistribution(Targets{}))
}
