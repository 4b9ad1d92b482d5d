// ABOUTME: Weekly intake averages and climbing-day meal timing.
package nutrition

import (
	"math"
	"time"

	"github.com/harperreed/crag/internal/models"
)

// Averages is mean daily intake over a set of logs.
type Averages struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	Days     int `json:"days"`
}

// WeeklyAverages sums the logs per local calendar day and averages those
// daily totals over the number of distinct days logged.
func WeeklyAverages(logs []*models.MealLog) Averages {
	if len(logs) == 0 {
		return Averages{}
	}

	var cal, protein, carbs, fat float64
	days := make(map[string]struct{})
	for _, l := range logs {
		cal += l.Calories
		protein += l.ProteinG
		carbs += l.CarbsG
		fat += l.FatG
		days[l.Date.Local().Format(time.DateOnly)] = struct{}{}
	}

	n := float64(len(days))
	return Averages{
		Calories: int(math.Round(cal / n)),
		ProteinG: int(math.Round(protein / n)),
		CarbsG:   int(math.Round(carbs / n)),
		FatG:     int(math.Round(fat / n)),
		Days:     len(days),
	}
}

// AsIntake converts averages into an Intake for insight checks.
func (a Averages) AsIntake() Intake {
	return Intake{
		Calories: float64(a.Calories),
		ProteinG: float64(a.ProteinG),
		CarbsG:   float64(a.CarbsG),
		FatG:     float64(a.FatG),
	}
}

// Meal timing offsets around a climbing session.
const (
	PreWorkoutLead  = 150 * time.Minute
	PostWorkoutLag  = 45 * time.Minute
	mealTimeDisplay = "03:04 PM"
)

// MealWindow is a suggested meal time and what it should focus on.
type MealWindow struct {
	Time  time.Time `json:"time"`
	Focus []string  `json:"focus"`
}

// Display formats the window time on a 12-hour clock.
func (w MealWindow) Display() string {
	return w.Time.Format(mealTimeDisplay)
}

// Timing is the meal plan around one session.
type Timing struct {
	PreWorkout      MealWindow `json:"pre_workout"`
	PostWorkout     MealWindow `json:"post_workout"`
	Recommendations []string   `json:"recommendations"`
}

// MealTiming plans pre- and post-session meals for a session starting at workout.
func MealTiming(workout time.Time) Timing {
	return Timing{
		PreWorkout: MealWindow{
			Time:  workout.Add(-PreWorkoutLead),
			Focus: []string{"Complex carbohydrates", "Moderate protein", "Low fat", "Easy to digest"},
		},
		PostWorkout: MealWindow{
			Time:  workout.Add(PostWorkoutLag),
			Focus: []string{"Fast protein (20-25g)", "Simple carbohydrates", "Rehydration"},
		},
		Recommendations: []string{
			"Avoid high fat/fiber foods 2 hours before climbing",
			"Hydrate well throughout the day, not just during exercise",
			"Post-workout nutrition window is most important within 60 minutes",
		},
	}
}
