// ABOUTME: CLI commands for nutrition targets, insights, supplements, and meal timing.
// ABOUTME: Targets come from the saved profile; intake defaults to the last 7 days of meal logs.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/nutrition"
	"github.com/spf13/cobra"
)

var (
	intakeCalories float64
	intakeProtein  float64
	intakeCarbs    float64
	intakeFat      float64
)

var nutritionCmd = &cobra.Command{
	Use:     "nutrition",
	Aliases: []string{"n"},
	Short:   "Nutrition targets and analysis",
}

var nutritionTargetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show daily calorie, macro, and hydration targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}
		bmr, err := nutrition.BMR(p.WeightLb, p.HeightIn, p.Age, p.Sex)
		if err != nil {
			return err
		}
		tdee, err := nutrition.TDEE(bmr, p.ActivityLevel)
		if err != nil {
			return err
		}
		t, err := nutrition.CalculateTargets(p)
		if err != nil {
			return err
		}
		d := nutrition.MacroDistribution(t)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", bold.Sprint("Daily targets"), faint.Sprintf("(goal: %s)", p.Goal))
		fmt.Fprintf(out, "  BMR        %d kcal\n", bmr)
		fmt.Fprintf(out, "  TDEE       %d kcal\n", tdee)
		fmt.Fprintf(out, "  Calories   %d kcal\n", t.Calories)
		fmt.Fprintf(out, "  Protein    %dg %s\n", t.ProteinG, faint.Sprintf("(%d%%)", d.Protein))
		fmt.Fprintf(out, "  Carbs      %dg %s\n", t.CarbsG, faint.Sprintf("(%d%%)", d.Carbs))
		fmt.Fprintf(out, "  Fat        %dg %s\n", t.FatG, faint.Sprintf("(%d%%)", d.Fat))
		fmt.Fprintf(out, "  Water      %d ml\n", t.HydrationMl)
		return nil
	},
}

var nutritionInsightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Compare intake against your targets",
	Long: `Compare intake against your targets.

Intake defaults to the daily average of meals logged in the last 7 days.
Pass --calories, --protein, --carbs, and --fat to analyze a specific day.

Examples:
  crag nutrition insights
  crag nutrition insights --calories 1800 --protein 90 --carbs 200 --fat 60`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, t, err := profileTargets()
		if err != nil {
			return err
		}
		intake, err := resolveIntake(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		eff := nutrition.ProteinEfficiency(intake.ProteinG, intake.Calories)
		tier := eff.Tier()
		fmt.Fprintf(out, "Intake     %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			intake.Calories, intake.ProteinG, intake.CarbsG, intake.FatG)
		fmt.Fprintf(out, "Targets    %d kcal, %dg protein, %dg carbs, %dg fat\n",
			t.Calories, t.ProteinG, t.CarbsG, t.FatG)
		if eff.Infinite {
			fmt.Fprintf(out, "Protein    %s\n", faint.Sprint("no protein logged"))
		} else {
			fmt.Fprintf(out, "Protein    %.1f kcal/g %s\n", eff.Value, faint.Sprintf("(%s)", tier.Label))
		}

		insights := nutrition.Insights(intake, t, p)
		fmt.Fprintln(out)
		if len(insights) == 0 {
			success.Fprintln(out, "✓ On track, nothing to flag")
			return nil
		}
		for _, s := range insights {
			fmt.Fprintf(out, "  • %s\n", s)
		}
		return nil
	},
}

var nutritionSupplementsCmd = &cobra.Command{
	Use:   "supplements",
	Short: "Suggest supplements for your profile and intake",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, t, err := profileTargets()
		if err != nil {
			return err
		}
		intake, err := resolveIntake(cmd)
		if errors.Is(err, errNoIntake) {
			intake = nutrition.Intake{
				Calories: float64(t.Calories),
				ProteinG: float64(t.ProteinG),
				CarbsG:   float64(t.CarbsG),
				FatG:     float64(t.FatG),
			}
		} else if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		supplements := nutrition.SupplementPriorities(p, intake, t)
		if len(supplements) == 0 {
			fmt.Fprintln(out, "No supplements suggested.")
			return nil
		}
		for _, s := range supplements {
			label := s.Name
			if s.Priority == nutrition.PriorityHigh {
				label = warn.Sprint(s.Name)
			}
			fmt.Fprintf(out, "  %s %s\n    %s\n", label, faint.Sprintf("[%s]", s.Priority), s.Reason)
		}
		return nil
	},
}

var nutritionTimingCmd = &cobra.Command{
	Use:   "timing <HH:MM>",
	Short: "Plan meals around a climbing session",
	Long: `Plan meals around a climbing session starting at the given time.

Example:
  crag nutrition timing 18:00`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{noStorage: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		clock, err := time.Parse("15:04", args[0])
		if err != nil {
			return fmt.Errorf("invalid time %q (use HH:MM)", args[0])
		}
		now := time.Now()
		workout := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
		plan := nutrition.MealTiming(workout)

		out := cmd.OutOrStdout()
		printWindow(cmd, "Pre-climb", plan.PreWorkout)
		printWindow(cmd, "Post-climb", plan.PostWorkout)
		for _, r := range plan.Recommendations {
			fmt.Fprintf(out, "  • %s\n", r)
		}
		return nil
	},
}

func printWindow(cmd *cobra.Command, label string, w nutrition.MealWindow) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", bold.Sprint(label), w.Display())
	for _, f := range w.Focus {
		fmt.Fprintf(out, "    %s\n", faint.Sprint(f))
	}
}

var errNoIntake = errors.New("no intake: pass --calories/--protein/--carbs/--fat or log meals with 'crag meal add'")

func profileTargets() (*models.Profile, nutrition.Targets, error) {
	p, err := repo.GetProfile()
	if err != nil {
		return nil, nutrition.Targets{}, err
	}
	t, err := nutrition.CalculateTargets(p)
	if err != nil {
		return nil, nutrition.Targets{}, err
	}
	return p, t, nil
}

// resolveIntake prefers explicit flags and falls back to the 7-day meal average.
func resolveIntake(cmd *cobra.Command) (nutrition.Intake, error) {
	flags := cmd.Flags()
	if flags.Changed("calories") || flags.Changed("protein") || flags.Changed("carbs") || flags.Changed("fat") {
		return nutrition.Intake{
			Calories: intakeCalories,
			ProteinG: intakeProtein,
			CarbsG:   intakeCarbs,
			FatG:     intakeFat,
		}, nil
	}

	since := time.Now().AddDate(0, 0, -7)
	logs, err := repo.ListMealLogs(&since, 0)
	if err != nil {
		return nutrition.Intake{}, fmt.Errorf("failed to list meals: %w", err)
	}
	avg := nutrition.WeeklyAverages(logs)
	if avg.Days == 0 {
		return nutrition.Intake{}, errNoIntake
	}
	logger.Debug("using logged intake", "days", avg.Days)
	return avg.AsIntake(), nil
}

func addIntakeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&intakeCalories, "calories", 0, "calories eaten")
	f.Float64Var(&intakeProtein, "protein", 0, "protein in grams")
	f.Float64Var(&intakeCarbs, "carbs", 0, "carbohydrates in grams")
	f.Float64Var(&intakeFat, "fat", 0, "fat in grams")
}

func init() {
	addIntakeFlags(nutritionInsightsCmd)
	addIntakeFlags(nutritionSupplementsCmd)

	nutritionCmd.AddCommand(nutritionTargetsCmd, nutritionInsightsCmd, nutritionSupplementsCmd, nutritionTimingCmd)
	rootCmd.AddCommand(nutritionCmd)
}
