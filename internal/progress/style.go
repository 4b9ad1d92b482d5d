// ABOUTME: Per-style performance breakdown of benchmark sends.
// ABOUTME: Reports average grade, count, and best grade for each wall angle.
package progress

import (
	"math"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
)

// NoGrade is reported as the best grade of a style without sends.
const NoGrade = "N/A"

// StyleStats summarizes sends of one style.
type StyleStats struct {
	AverageGrade float64 `json:"average_grade"`
	Count        int     `json:"count"`
	BestGrade    string  `json:"best_grade"`
}

// StyleAnalysis maps every style to its stats.
type StyleAnalysis map[models.Style]StyleStats

// AnalyzeStyles groups sends by style. All four styles are always present.
func AnalyzeStyles(sends []*models.Send) StyleAnalysis {
	analysis := make(StyleAnalysis, len(models.AllStyles))
	for _, style := range models.AllStyles {
		var sum, count int
		var best grade.Grade
		for _, s := range sends {
			if s.Style != style {
				continue
			}
			g := grade.Parse(s.Grade)
			sum += g.Value
			if count == 0 || grade.Compare(g, best) < 0 {
				best = g
			}
			count++
		}

		if count == 0 {
			analysis[style] = StyleStats{BestGrade: NoGrade}
			continue
		}
		analysis[style] = StyleStats{
			AverageGrade: math.Round(float64(sum)/float64(count)*10) / 10,
			Count:        count,
			BestGrade:    best.Display,
		}
	}
	return analysis
}
