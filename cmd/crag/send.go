// ABOUTME: CLI commands for logging benchmark sends.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
	"github.com/spf13/cobra"
)

var (
	sendStyle        string
	sendSignificance string
	sendDate         string
	sendNotes        string
	sendListStyle    string
	sendListLimit    int
)

var sendCmd = &cobra.Command{
	Use:     "send",
	Aliases: []string{"s"},
	Short:   "Log benchmark sends",
	Long: `Track benchmark sends: problems or routes you completed that mark progress.

Each send has a grade, a wall style (slab, vertical, overhang, roof), and a
significance (milestone, breakthrough, consistency, project).

COMMANDS:

  add      Record a send
  list     List recent sends
  delete   Delete a send by ID prefix`,
}

var sendAddCmd = &cobra.Command{
	Use:   "add <grade>",
	Short: "Record a send",
	Long: `Record a benchmark send.

Examples:
  crag send add V5 --style overhang
  crag send add 5.11c --style vertical --significance milestone
  crag send add V6 --style roof --date 2025-01-31 --notes "the crimpy one"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grade.ParseStrict(args[0])
		if err != nil {
			return err
		}
		style, err := models.ParseStyle(sendStyle)
		if err != nil {
			return err
		}

		s := models.NewSend(g.Display, style)
		if sendSignificance != "" {
			sig, err := models.ParseSignificance(sendSignificance)
			if err != nil {
				return err
			}
			s.WithSignificance(sig)
		}
		if sendDate != "" {
			t, err := parseTime(sendDate)
			if err != nil {
				return err
			}
			s.WithDate(t)
		}
		if sendNotes != "" {
			s.WithNotes(sendNotes)
		}

		if err := repo.CreateSend(s); err != nil {
			return fmt.Errorf("failed to create send: %w", err)
		}
		logger.Debug("send created", "id", s.ID)

		out := cmd.OutOrStdout()
		success.Fprintf(out, "✓ Logged %s %s send\n", s.Grade, s.Style)
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint(shortID(s.ID)), s.Significance)
		return nil
	},
}

var sendListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sends",
	Long: `List recent sends, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE (AGO)  GRADE  STYLE  SIGNIFICANCE  (NOTES)

Examples:
  crag send list
  crag send list --style slab -n 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var style *models.Style
		if sendListStyle != "" {
			st, err := models.ParseStyle(sendListStyle)
			if err != nil {
				return err
			}
			style = &st
		}

		sends, err := repo.ListSends(style, sendListLimit)
		if err != nil {
			return fmt.Errorf("failed to list sends: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sends) == 0 {
			fmt.Fprintln(out, "No sends found.")
			return nil
		}

		for _, s := range sends {
			notes := ""
			if s.Notes != nil && *s.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
			}
			fmt.Fprintf(out, "%s %s %s %s %s%s\n",
				faint.Sprint(shortID(s.ID)),
				when(s.Date),
				padRight(s.Grade, 6),
				padRight(string(s.Style), 9),
				s.Significance,
				notes)
		}
		return nil
	},
}

var sendDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a send",
	Long: `Delete a send by its ID or ID prefix.

The ID prefix is shown in the first column of 'crag send list'.
If the prefix matches multiple sends, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSend(args[0])
		if err != nil {
			return err
		}
		if err := repo.DeleteSend(s.ID.String()); err != nil {
			return err
		}

		warn.Fprintf(cmd.OutOrStdout(), "✗ Deleted %s %s send %s\n", s.Grade, s.Style, shortID(s.ID))
		return nil
	},
}

func init() {
	sendAddCmd.Flags().StringVar(&sendStyle, "style", "", "wall style: slab, vertical, overhang, roof (required)")
	sendAddCmd.Flags().StringVar(&sendSignificance, "significance", "", "milestone, breakthrough, consistency, project")
	sendAddCmd.Flags().StringVar(&sendDate, "date", "", "send date (YYYY-MM-DD)")
	sendAddCmd.Flags().StringVar(&sendNotes, "notes", "", "notes for the send")
	_ = sendAddCmd.MarkFlagRequired("style")

	sendListCmd.Flags().StringVarP(&sendListStyle, "style", "s", "", "filter by wall style")
	sendListCmd.Flags().IntVarP(&sendListLimit, "limit", "n", 20, "max number of results")

	sendCmd.AddCommand(sendAddCmd, sendListCmd, sendDeleteCmd)
	rootCmd.AddCommand(sendCmd)
}
