// ABOUTME: Daily calorie, macro, and hydration targets from a profile.
// ABOUTME: Goal adjustments shape calories and protein; carbs fill the rest.
package nutrition

import (
	"fmt"
	"math"

	"github.com/harperreed/crag/internal/models"
)

// GoalAdjustment scales calories and protein for a goal.
type GoalAdjustment struct {
	CalorieMultiplier float64
	ProteinMultiplier float64
	ProteinPerLb      float64
	FatShare          float64
}

// GoalAdjustments holds the per-goal constants.
var GoalAdjustments = map[models.Goal]GoalAdjustment{
	models.GoalMaintain: {CalorieMultiplier: 1.0, ProteinMultiplier: 1.0, ProteinPerLb: 1.0, FatShare: 0.30},
	models.GoalCut:      {CalorieMultiplier: 0.8, ProteinMultiplier: 1.2, ProteinPerLb: 1.2, FatShare: 0.25},
	models.GoalBulk:     {CalorieMultiplier: 1.1, ProteinMultiplier: 1.0, ProteinPerLb: 0.8, FatShare: 0.30},
	models.GoalRecomp:   {CalorieMultiplier: 0.95, ProteinMultiplier: 1.1, ProteinPerLb: 1.1, FatShare: 0.30},
}

// Targets are the daily nutrition targets derived from a profile.
type Targets struct {
	Calories    int `json:"calories"`
	ProteinG    int `json:"protein_g"`
	CarbsG      int `json:"carbs_g"`
	FatG        int `json:"fat_g"`
	HydrationMl int `json:"hydration_ml"`
}

// CalculateTargets derives daily targets. Carbs saturate at zero when protein
// and fat already exceed the calorie budget.
func CalculateTargets(p *models.Profile) (Targets, error) {
	if err := p.Validate(); err != nil {
		return Targets{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	bmr, err := BMR(p.WeightLb, p.HeightIn, p.Age, p.Sex)
	if err != nil {
		return Targets{}, err
	}
	tdee, err := TDEE(bmr, p.ActivityLevel)
	if err != nil {
		return Targets{}, err
	}

	adj := GoalAdjustments[p.Goal]
	calories := int(math.Round(float64(tdee) * adj.CalorieMultiplier))
	protein := int(math.Round(p.WeightLb * adj.ProteinPerLb * adj.ProteinMultiplier))
	fat := int(math.Round(float64(calories) * adj.FatShare / 9))

	remaining := calories - protein*4 - fat*9
	carbs := 0
	if remaining > 0 {
		carbs = int(math.Round(float64(remaining) / 4))
	}

	return Targets{
		Calories:    calories,
		ProteinG:    protein,
		CarbsG:      carbs,
		FatG:        fat,
		HydrationMl: int(math.Round(p.WeightLb*30 + 500)),
	}, nil
}

// Distribution is the share of calories from each macro, in percent.
type Distribution struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// MacroDistribution converts gram targets into calorie percentages.
func MacroDistribution(t Targets) Distribution {
	if t.Calories <= 0 {
		return Distribution{}
	}
	total := float64(t.Calories)
	return Distribution{
		Protein: int(math.Round(float64(t.ProteinG*4) / total * 100)),
		Carbs:   int(math.Round(float64(t.CarbsG*4) / total * 100)),
		Fat:     int(math.Round(float64(t.FatG*9) / total * 100)),
	}
}
