// ABOUTME: CLI commands for parsing, converting, and comparing climbing grades.
// ABOUTME: Pure calculations; these commands never open the database.
package main

import (
	"fmt"

	"github.com/harperreed/crag/internal/grade"
	"github.com/spf13/cobra"
)

var (
	gradeTo     string
	gradeSystem string
)

var gradeCmd = &cobra.Command{
	Use:     "grade",
	Aliases: []string{"g"},
	Short:   "Parse, convert, and compare grades",
	Long: `Work with bouldering (V-scale) and route (YDS) grades.

V-scale grades look like V0..V17. YDS grades look like 5.9 or 5.11c.
Input is case-insensitive.

COMMANDS:

  parse     Show the numeric value and conversions of a grade
  convert   Convert a grade to another system
  options   List the selectable grades of a system
  compare   Rank two grades by difficulty`,
	Annotations: map[string]string{noStorage: "true"},
}

var gradeParseCmd = &cobra.Command{
	Use:   "parse <grade>",
	Short: "Parse a grade",
	Long: `Parse a grade and show its numeric value and V-scale, YDS, and French equivalents.

Examples:
  crag grade parse V5
  crag grade parse 5.11c`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		g, err := grade.ParseStrict(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s  %s %d\n", bold.Sprint(g.Display), faint.Sprint(g.System), g.Value)

		c := grade.Conversions(args[0])
		if c.VScale != nil {
			fmt.Fprintf(out, "  V-scale  V%d\n", *c.VScale)
		}
		if c.YDS != nil {
			fmt.Fprintf(out, "  YDS      %s\n", *c.YDS)
		}
		if c.French != nil {
			fmt.Fprintf(out, "  French   %s\n", *c.French)
		}
		return nil
	},
}

var gradeConvertCmd = &cobra.Command{
	Use:   "convert <grade>",
	Short: "Convert a grade to another system",
	Long: `Convert between V-scale and YDS using the standard equivalence table.

Examples:
  crag grade convert V5 --to yds
  crag grade convert 5.12a --to v-scale`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := grade.ParseSystem(gradeTo)
		if err != nil {
			return err
		}

		result, ok := grade.Convert(args[0], target)
		if !ok {
			return fmt.Errorf("no %s equivalent for %s", target, args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var gradeOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List grades of a system",
	RunE: func(cmd *cobra.Command, args []string) error {
		system := cfg.GetDefaultSystem()
		if gradeSystem != "" {
			var err error
			if system, err = grade.ParseSystem(gradeSystem); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for _, o := range grade.Options(system) {
			fmt.Fprintln(out, o.Label)
		}
		return nil
	},
}

var gradeCompareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Rank two grades by difficulty",
	Long: `Compare two grades. Mixed V-scale/YDS comparisons use an approximate offset.

Examples:
  crag grade compare V4 V6
  crag grade compare V5 5.11a`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := grade.ParseStrict(args[0])
		if err != nil {
			return err
		}
		b, err := grade.ParseStrict(args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch d := grade.Compare(a, b); {
		case d < 0:
			fmt.Fprintf(out, "%s is harder than %s\n", a.Display, b.Display)
		case d > 0:
			fmt.Fprintf(out, "%s is harder than %s\n", b.Display, a.Display)
		default:
			fmt.Fprintf(out, "%s and %s are the same difficulty\n", a.Display, b.Display)
		}
		return nil
	},
}

func init() {
	gradeConvertCmd.Flags().StringVar(&gradeTo, "to", "yds", "target system (v-scale or yds)")
	gradeOptionsCmd.Flags().StringVarP(&gradeSystem, "system", "s", "", "grading system (default from config)")

	gradeCmd.AddCommand(gradeParseCmd, gradeConvertCmd, gradeOptionsCmd, gradeCompareCmd)
	rootCmd.AddCommand(gradeCmd)
}
