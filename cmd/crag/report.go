// ABOUTME: CLI command for the full coaching report.
// ABOUTME: Prints Markdown by default or JSON with --json.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/crag/internal/coach"
	"github.com/spf13/cobra"
)

var (
	reportTarget  string
	reportCurrent string
	reportJSON    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full coaching report",
	Long: `Run every calculator over your log: progress toward the target grade,
style breakdown, training load, success rate, recommendations, and (with a
saved profile) nutrition targets, insights, and supplements.

Examples:
  crag report
  crag report --target V8
  crag report --json > report.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := reportTarget
		if target == "" {
			target = cfg.TargetGrade
		}

		r, err := coach.Build(repo, coach.Options{
			CurrentGrade: reportCurrent,
			TargetGrade:  target,
			LoadWeeks:    cfg.GetLoadWeeks(),
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if reportJSON {
			data, err := json.MarshalIndent(r, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprint(out, r.Markdown())
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportTarget, "target", "t", "", "target grade (default: target_grade from config)")
	reportCmd.Flags().StringVar(&reportCurrent, "current", "", "current grade (default: hardest logged send)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output JSON instead of Markdown")

	rootCmd.AddCommand(reportCmd)
}
