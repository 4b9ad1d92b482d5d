// ABOUTME: CLI commands for grade progress and training load.
// ABOUTME: Loads the log once and hands snapshots to the calculators.
package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/harperreed/crag/internal/coach"
	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/progress"
	"github.com/harperreed/crag/internal/training"
	"github.com/spf13/cobra"
)

var (
	progressCurrent string
	loadWeeks       int
	loadDays        int
)

var progressCmd = &cobra.Command{
	Use:   "progress [target]",
	Short: "Measure progress toward a target grade",
	Long: `Measure progress toward a target grade.

The current grade defaults to your hardest logged send; the target defaults
to target_grade from the config. The weekly rate is taken from your 10 most
recent sends.

Examples:
  crag progress V7
  crag progress 5.12a --current 5.11b`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := cfg.TargetGrade
		if len(args) == 1 {
			target = args[0]
		}
		if target == "" {
			return errors.New("no target grade: pass one or set target_grade in the config")
		}

		r, err := coach.Build(repo, coach.Options{
			CurrentGrade: progressCurrent,
			TargetGrade:  target,
			LoadWeeks:    cfg.GetLoadWeeks(),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		current := r.CurrentGrade
		if current == "" {
			current = "none logged"
		}
		m := r.Progress
		fmt.Fprintf(out, "%s → %s\n", bold.Sprint(current), bold.Sprint(r.TargetGrade))
		fmt.Fprintf(out, "  Progress     %.1f%%\n", m.ProgressPercentage)
		fmt.Fprintf(out, "  Weekly rate  %.2f grades/week\n", m.WeeklyProgressRate)
		if m.EstimatedDaysToTarget == progress.NoTrendDays {
			fmt.Fprintf(out, "  Estimate     %s\n", faint.Sprint("no upward trend yet"))
		} else {
			fmt.Fprintf(out, "  Estimate     %d days\n", m.EstimatedDaysToTarget)
		}
		fmt.Fprintln(out)

		printStyles(out, r.Styles)

		if len(r.Recommendations) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, bold.Sprint("Recommendations"))
			for _, rec := range r.Recommendations {
				fmt.Fprintf(out, "  • %s\n", rec)
			}
		}
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Show recent training load",
	Long: `Show training load over the last few weeks.

  Volume      minutes climbed per week
  Intensity   mean grade value attempted
  Density     sessions per week
  Load        0-100 score combining the three

Rest sessions are excluded. The success rate covers the last --days days.

Examples:
  crag load
  crag load --weeks 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		weeks := loadWeeks
		if !cmd.Flags().Changed("weeks") {
			weeks = cfg.GetLoadWeeks()
		}

		sessions, err := repo.ListSessions(nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		now := time.Now()
		load, err := training.CalculateLoad(sessions, weeks, now)
		if err != nil {
			return err
		}
		rate, err := training.SuccessRate(sessions, loadDays, now)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", bold.Sprintf("Load %d/100", load.Load), faint.Sprintf("(last %d weeks)", weeks))
		fmt.Fprintf(out, "  Volume     %d min/week\n", load.Volume)
		fmt.Fprintf(out, "  Intensity  %.1f\n", load.Intensity)
		fmt.Fprintf(out, "  Density    %.1f sessions/week\n", load.Density)
		fmt.Fprintf(out, "  Success    %d%% %s\n", rate, faint.Sprintf("(last %d days)", loadDays))
		return nil
	},
}

func printStyles(out io.Writer, styles progress.StyleAnalysis) {
	fmt.Fprintln(out, bold.Sprint("Styles"))
	for _, style := range models.AllStyles {
		s := styles[style]
		fmt.Fprintf(out, "  %s %2d sends  avg %4.1f  best %s\n",
			padRight(string(style), 9), s.Count, s.AverageGrade, s.BestGrade)
	}
}

func init() {
	progressCmd.Flags().StringVar(&progressCurrent, "current", "", "current grade (default: hardest logged send)")

	loadCmd.Flags().IntVarP(&loadWeeks, "weeks", "w", training.DefaultWeeks, "window in weeks")
	loadCmd.Flags().IntVar(&loadDays, "days", training.DefaultSuccessDays, "success rate window in days")

	rootCmd.AddCommand(progressCmd, loadCmd)
}
