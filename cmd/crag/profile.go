// ABOUTME: CLI commands for the nutrition profile.
// ABOUTME: profile set merges flags into the saved profile; profile show prints it.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/storage"
	"github.com/spf13/cobra"
)

var (
	profileWeight       float64
	profileTargetWeight float64
	profileHeight       float64
	profileAge          int
	profileSex          string
	profileActivity     string
	profileGoal         string
	profileRestrictions []string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your nutrition profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	Long: `Create or update your nutrition profile.

Only the flags you pass are changed; everything else keeps its saved value.
A new profile needs --weight, --height, and --age.

Activity levels: sedentary, light, moderate, active, very-active
Goals: maintain, cut, bulk, recomp

Examples:
  crag profile set --weight 150 --height 70 --age 30
  crag profile set --goal cut --activity active
  crag profile set --restriction vegetarian`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if errors.Is(err, storage.ErrNoProfile) {
			p = &models.Profile{
				Sex:           models.SexMale,
				ActivityLevel: models.ActivityModerate,
				Goal:          models.GoalMaintain,
			}
		} else if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		flags := cmd.Flags()
		if flags.Changed("weight") {
			p.WeightLb = profileWeight
		}
		if flags.Changed("target-weight") {
			p.TargetWeightLb = profileTargetWeight
		}
		if flags.Changed("height") {
			p.HeightIn = profileHeight
		}
		if flags.Changed("age") {
			p.Age = profileAge
		}
		if flags.Changed("sex") {
			if p.Sex, err = models.ParseSex(profileSex); err != nil {
				return err
			}
		}
		if flags.Changed("activity") {
			if p.ActivityLevel, err = models.ParseActivityLevel(profileActivity); err != nil {
				return err
			}
		}
		if flags.Changed("goal") {
			if p.Goal, err = models.ParseGoal(profileGoal); err != nil {
				return err
			}
		}
		if flags.Changed("restriction") {
			p.DietaryRestrictions = nil
			for _, r := range profileRestrictions {
				if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
					p.DietaryRestrictions = append(p.DietaryRestrictions, r)
				}
			}
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		success.Fprintln(cmd.OutOrStdout(), "✓ Profile saved")
		printProfile(cmd, p)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.GetProfile()
		if err != nil {
			return err
		}
		printProfile(cmd, p)
		return nil
	},
}

func printProfile(cmd *cobra.Command, p *models.Profile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Weight     %.1f lb\n", p.WeightLb)
	if p.TargetWeightLb > 0 {
		fmt.Fprintf(out, "  Target     %.1f lb\n", p.TargetWeightLb)
	}
	fmt.Fprintf(out, "  Height     %.1f in\n", p.HeightIn)
	fmt.Fprintf(out, "  Age        %d\n", p.Age)
	fmt.Fprintf(out, "  Sex        %s\n", p.Sex)
	fmt.Fprintf(out, "  Activity   %s\n", p.ActivityLevel)
	fmt.Fprintf(out, "  Goal       %s\n", p.Goal)
	if len(p.DietaryRestrictions) > 0 {
		fmt.Fprintf(out, "  Diet       %s\n", strings.Join(p.DietaryRestrictions, ", "))
	}
}

func init() {
	f := profileSetCmd.Flags()
	f.Float64Var(&profileWeight, "weight", 0, "body weight in lb")
	f.Float64Var(&profileTargetWeight, "target-weight", 0, "target body weight in lb")
	f.Float64Var(&profileHeight, "height", 0, "height in inches")
	f.IntVar(&profileAge, "age", 0, "age in years")
	f.StringVar(&profileSex, "sex", "", "male or female")
	f.StringVar(&profileActivity, "activity", "", "activity level")
	f.StringVar(&profileGoal, "goal", "", "maintain, cut, bulk, or recomp")
	f.StringSliceVar(&profileRestrictions, "restriction", nil, "dietary restrictions (comma-separated, empty to clear)")

	profileCmd.AddCommand(profileSetCmd, profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
