// ABOUTME: Rule-based training advice from style gaps and training load.
// ABOUTME: Output is deterministic for identical inputs.
package progress

import (
	"fmt"
	"sort"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/training"
)

// Thresholds for recommendations.
const (
	StyleGapThreshold = 1.5
	LowLoad           = 30
	HighLoad          = 80
	IntensityGap      = 2
	AdvancedGrade     = 7
)

// Recommendations produces advice toward the target grade.
func Recommendations(target string, styles StyleAnalysis, load training.Load) []string {
	var recs []string
	level, ok := grade.VScaleLevel(target)

	var climbed []models.Style
	for _, style := range models.AllStyles {
		if styles[style].Count > 0 {
			climbed = append(climbed, style)
		}
	}
	sort.SliceStable(climbed, func(i, j int) bool {
		return styles[climbed[i]].AverageGrade < styles[climbed[j]].AverageGrade
	})

	if len(climbed) > 0 {
		weakest, strongest := climbed[0], climbed[len(climbed)-1]
		gap := styles[strongest].AverageGrade - styles[weakest].AverageGrade
		if gap > StyleGapThreshold {
			recs = append(recs, fmt.Sprintf("Focus on %s climbing - it's %.1f grades behind your %s", weakest, gap, strongest))
		}
	}

	switch {
	case load.Load < LowLoad:
		recs = append(recs, "Consider increasing training frequency or session length")
	case load.Load > HighLoad:
		recs = append(recs, "High training load detected - ensure adequate recovery")
	}

	if ok && load.Intensity < float64(level-IntensityGap) {
		recs = append(recs, "Gradually increase the difficulty of problems you attempt")
	}

	if ok && level >= AdvancedGrade {
		recs = append(recs,
			"Focus on power development - campus board and limit bouldering",
			fmt.Sprintf("Core tension work is crucial for V%d+ overhangs", AdvancedGrade),
			"Practice reading complex sequences before attempting",
		)
	}

	return recs
}
