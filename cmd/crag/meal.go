// ABOUTME: CLI commands for logging daily intake.
// ABOUTME: Meal logs feed weekly averages for nutrition insights and reports.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/harperreed/crag/internal/models"
	"github.com/spf13/cobra"
)

var (
	mealDate      string
	mealNotes     string
	mealListDays  int
	mealListLimit int
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Log daily intake",
}

var mealAddCmd = &cobra.Command{
	Use:   "add <calories> <protein> <carbs> <fat>",
	Short: "Log calories and macros in grams",
	Long: `Log calories and macros (grams) for a day or a meal.

Examples:
  crag meal add 2200 140 250 70
  crag meal add 650 45 60 20 --notes "post-session burrito"
  crag meal add 2000 120 230 65 --date 2025-01-15`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		var values [4]float64
		names := [4]string{"calories", "protein", "carbs", "fat"}
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return fmt.Errorf("invalid %s: %s", names[i], a)
			}
			values[i] = v
		}

		m := models.NewMealLog(values[0], values[1], values[2], values[3])
		if mealDate != "" {
			t, err := parseTime(mealDate)
			if err != nil {
				return err
			}
			m.WithDate(t)
		}
		if mealNotes != "" {
			m.WithNotes(mealNotes)
		}

		if err := m.Validate(); err != nil {
			return err
		}
		if err := repo.CreateMealLog(m); err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		success.Fprintf(cmd.OutOrStdout(), "✓ Logged %.0f kcal (%.0fp/%.0fc/%.0ff) ", m.Calories, m.ProteinG, m.CarbsG, m.FatG)
		faint.Fprintf(cmd.OutOrStdout(), "(%s)\n", shortID(m.ID))
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List logged meals",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var since *time.Time
		if mealListDays > 0 {
			t := time.Now().AddDate(0, 0, -mealListDays)
			since = &t
		}

		logs, err := repo.ListMealLogs(since, mealListLimit)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(logs) == 0 {
			fmt.Fprintln(out, "No meals logged.")
			return nil
		}

		for _, m := range logs {
			fmt.Fprintf(out, "%s  %s  %5.0f kcal  %3.0fp %3.0fc %3.0ff",
				faint.Sprint(shortID(m.ID)), when(m.Date), m.Calories, m.ProteinG, m.CarbsG, m.FatG)
			if m.Notes != nil {
				fmt.Fprintf(out, "  %s", truncate(*m.Notes, 40))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a meal log by ID prefix",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := repo.DeleteMealLog(args[0]); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}
		success.Fprintf(cmd.OutOrStdout(), "✓ Deleted meal %s\n", args[0])
		return nil
	},
}

func init() {
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "date (YYYY-MM-DD or YYYY-MM-DD HH:MM)")
	mealAddCmd.Flags().StringVar(&mealNotes, "notes", "", "notes")

	mealListCmd.Flags().IntVar(&mealListDays, "days", 7, "only meals from the last N days (0 for all)")
	mealListCmd.Flags().IntVarP(&mealListLimit, "limit", "n", 20, "max meals to show")

	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
