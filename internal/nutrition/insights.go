// ABOUTME: Intake analysis against targets: insights, protein efficiency, supplements.
// ABOUTME: Threshold rules produce deterministic messages for a given input.
package nutrition

import (
	"fmt"
	"math"
	"sort"

	"github.com/harperreed/crag/internal/models"
)

const vegetarian = "vegetarian"

// Intake is what was actually eaten over a day.
type Intake struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// Efficiency is kcal per gram of protein. Infinite is set when there is no
// protein to divide by.
type Efficiency struct {
	Value    float64 `json:"value"`
	Infinite bool    `json:"infinite"`
}

// ProteinEfficiency returns calories per gram of protein.
func ProteinEfficiency(proteinG, kcal float64) Efficiency {
	if proteinG <= 0 {
		return Efficiency{Infinite: true}
	}
	return Efficiency{Value: math.Round(kcal/proteinG*10) / 10}
}

// EfficiencyTier is a qualitative rating of protein efficiency.
type EfficiencyTier struct {
	Tier  string `json:"tier"`
	Label string `json:"label"`
}

// Tier rates a food by protein density. Lower kcal per gram is better.
func (e Efficiency) Tier() EfficiencyTier {
	switch {
	case e.Infinite:
		return EfficiencyTier{"avoid", "Avoid When Cutting"}
	case e.Value < 5:
		return EfficiencyTier{"excellent", "Excellent"}
	case e.Value < 6:
		return EfficiencyTier{"very-good", "Very Good"}
	case e.Value < 8:
		return EfficiencyTier{"good", "Good"}
	case e.Value < 10:
		return EfficiencyTier{"moderate", "Moderate"}
	}
	return EfficiencyTier{"avoid", "Avoid When Cutting"}
}

// Insights compares intake with targets and returns advice.
func Insights(current Intake, targets Targets, p *models.Profile) []string {
	var insights []string

	proteinRatio, hasProtein := ratio(current.ProteinG, targets.ProteinG)
	calorieRatio, hasCalories := ratio(current.Calories, targets.Calories)

	if hasProtein {
		if proteinRatio < 0.8 {
			deficit := int(math.Round(float64(targets.ProteinG) - current.ProteinG))
			insights = append(insights, fmt.Sprintf("Protein deficit: Currently %.0fg vs %dg target (-%dg)",
				current.ProteinG, targets.ProteinG, deficit))
		} else if proteinRatio > 1.3 {
			insights = append(insights, fmt.Sprintf("High protein intake detected. Consider if %.0fg is necessary.", current.ProteinG))
		}
	}

	if hasCalories {
		if calorieRatio < 0.7 {
			insights = append(insights, fmt.Sprintf("Calorie intake appears low for your activity level (%.0f vs %d target)",
				current.Calories, targets.Calories))
		} else if calorieRatio > 1.2 && p.Goal == models.GoalCut {
			insights = append(insights, fmt.Sprintf("Calorie intake high for weight loss goal (%.0f vs %d target)",
				current.Calories, targets.Calories))
		}
	}

	if p.HasRestriction(vegetarian) {
		if hasProtein && proteinRatio < 0.9 {
			insights = append(insights, "Focus on combining incomplete proteins (rice + beans, hummus + pita) for complete amino acid profiles")
		}
		insights = append(insights, "Monitor B12 and iron levels - consider fortified foods or supplements")
	}

	if p.Goal == models.GoalCut && hasProtein && hasCalories && proteinRatio > 1.0 && calorieRatio < 0.9 {
		insights = append(insights, "Good protein prioritization for muscle preservation during weight loss")
	}

	if p.Goal == models.GoalBulk && hasCalories && calorieRatio < 1.05 {
		insights = append(insights, "Consider increasing calorie intake for effective muscle gain")
	}

	return insights
}

func ratio(current float64, target int) (float64, bool) {
	if target <= 0 {
		return 0, false
	}
	return current / float64(target), true
}

// Priority ranks a supplement recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Supplement is one recommended supplement.
type Supplement struct {
	Name     string   `json:"supplement"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// SupplementPriorities suggests supplements, highest priority first. Within a
// tier the rule order is kept.
func SupplementPriorities(p *models.Profile, intake Intake, targets Targets) []Supplement {
	var out []Supplement

	if r, ok := ratio(intake.ProteinG, targets.ProteinG); ok && r < 0.8 {
		out = append(out, Supplement{
			Name:     "Protein Powder",
			Priority: PriorityHigh,
			Reason:   fmt.Sprintf("Only getting %d%% of protein target", int(math.Round(r*100))),
		})
	}

	if p.HasRestriction(vegetarian) {
		out = append(out,
			Supplement{"B-Complex (with B12)", PriorityHigh, "Essential for vegetarians due to B12 deficiency risk"},
			Supplement{"Iron (with Vitamin C)", PriorityMedium, "Plant-based iron is less bioavailable"},
		)
	}

	if p.Goal == models.GoalCut {
		out = append(out, Supplement{"Vitamin D3", PriorityHigh, "Important for maintaining metabolism during calorie restriction"})
	}

	if p.ActivityLevel == models.ActivityVeryActive {
		out = append(out,
			Supplement{"Creatine", PriorityHigh, "Significant strength and power benefits for high-volume training"},
			Supplement{"Magnesium", PriorityMedium, "Important for muscle function and recovery with high training load"},
		)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.rank() > out[j].Priority.rank()
	})
	return out
}
