// ABOUTME: Markdown rendering of a coaching report.
package coach

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/crag/internal/models"
)

// Markdown renders the report as a Markdown document.
func (r *Report) Markdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Climbing Report - %s\n\n", r.GeneratedAt.Format("2006-01-02")))

	current := r.CurrentGrade
	if current == "" {
		current = "none logged"
	}
	sb.WriteString(fmt.Sprintf("- Current grade: %s\n", current))
	if r.TargetGrade != "" {
		sb.WriteString(fmt.Sprintf("- Target grade: %s\n", r.TargetGrade))
	}
	sb.WriteString(fmt.Sprintf("- Sends logged: %d\n", r.SendCount))
	sb.WriteString(fmt.Sprintf("- Sessions logged: %d\n\n", r.SessionCount))

	if r.Progress != nil {
		sb.WriteString("## Progress\n\n")
		sb.WriteString(fmt.Sprintf("- Progress: %.1f%% (level %d of %d)\n",
			r.Progress.ProgressPercentage, r.Progress.CurrentLevel, r.Progress.TargetLevel))
		sb.WriteString(fmt.Sprintf("- Weekly rate: %.2f grades/week\n", r.Progress.WeeklyProgressRate))
		sb.WriteString(fmt.Sprintf("- Estimated days to target: %d\n\n", r.Progress.EstimatedDaysToTarget))
	}

	sb.WriteString(fmt.Sprintf("## Training Load (last %d weeks)\n\n", r.LoadWeeks))
	sb.WriteString(fmt.Sprintf("- Load score: %d/100\n", r.Load.Load))
	sb.WriteString(fmt.Sprintf("- Volume: %d min/week\n", r.Load.Volume))
	sb.WriteString(fmt.Sprintf("- Intensity: %.1f\n", r.Load.Intensity))
	sb.WriteString(fmt.Sprintf("- Density: %.1f sessions/week\n", r.Load.Density))
	sb.WriteString(fmt.Sprintf("- Success rate: %d%%\n\n", r.SuccessRate))

	sb.WriteString("## Styles\n\n")
	sb.WriteString("| Style | Sends | Average | Best |\n")
	sb.WriteString("|-------|-------|---------|------|\n")
	for _, style := range models.AllStyles {
		s := r.Styles[style]
		sb.WriteString(fmt.Sprintf("| %s | %d | %.1f | %s |\n", style, s.Count, s.AverageGrade, s.BestGrade))
	}
	sb.WriteString("\n")

	if len(r.Recommendations) > 0 {
		sb.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			sb.WriteString("- " + rec + "\n")
		}
		sb.WriteString("\n")
	}

	if n := r.Nutrition; n != nil {
		sb.WriteString("## Nutrition\n\n")
		sb.WriteString(fmt.Sprintf("- Calories: %d kcal\n", n.Targets.Calories))
		sb.WriteString(fmt.Sprintf("- Protein: %dg (%d%%)\n", n.Targets.ProteinG, n.Distribution.Protein))
		sb.WriteString(fmt.Sprintf("- Carbs: %dg (%d%%)\n", n.Targets.CarbsG, n.Distribution.Carbs))
		sb.WriteString(fmt.Sprintf("- Fat: %dg (%d%%)\n", n.Targets.FatG, n.Distribution.Fat))
		sb.WriteString(fmt.Sprintf("- Hydration: %d ml\n", n.Targets.HydrationMl))
		if n.Averages.Days > 0 {
			sb.WriteString(fmt.Sprintf("- Logged average (%d days): %d kcal, %dg protein\n",
				n.Averages.Days, n.Averages.Calories, n.Averages.ProteinG))
		}
		for _, insight := range n.Insights {
			sb.WriteString("- " + insight + "\n")
		}
		if len(n.Supplements) > 0 {
			sb.WriteString("\n### Supplements\n\n")
			for _, s := range n.Supplements {
				sb.WriteString(fmt.Sprintf("- **%s** (%s): %s\n", s.Name, s.Priority, s.Reason))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\n_Generated %s_\n", r.GeneratedAt.Format(time.RFC3339)))
	return sb.String()
}
