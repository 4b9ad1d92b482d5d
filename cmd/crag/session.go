// ABOUTME: CLI commands for the session journal.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
	"github.com/spf13/cobra"
)

var (
	sessionDuration  int
	sessionAttempted []string
	sessionCompleted []string
	sessionDate      string
	sessionNotes     string
	sessionListType  string
	sessionListLimit int
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"j", "journal"},
	Short:   "Journal climbing sessions",
	Long: `Journal climbing sessions with the grades you tried and sent.

Session types are gym, outdoor, training, and rest. Rest days count toward
nothing in the training load but keep the journal honest.

COMMANDS:

  add      Record a session
  list     List recent sessions
  delete   Delete a session by ID prefix`,
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Record a session",
	Long: `Record a session. Grade lists are comma separated, one entry per attempt or send.

Examples:
  crag session add gym --duration 90 --attempted V4,V5,V5 --completed V4,V5
  crag session add outdoor --duration 240 --date 2025-01-31 --notes "Bishop"
  crag session add rest`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := models.ParseSessionType(args[0])
		if err != nil {
			return err
		}

		attempted, err := grade.Normalize(sessionAttempted)
		if err != nil {
			return err
		}
		completed, err := grade.Normalize(sessionCompleted)
		if err != nil {
			return err
		}

		s := models.NewSession(st, sessionDuration).
			WithAttempted(attempted...).
			WithCompleted(completed...)
		if sessionDate != "" {
			t, err := parseTime(sessionDate)
			if err != nil {
				return err
			}
			s.WithDate(t)
		}
		if sessionNotes != "" {
			s.WithNotes(sessionNotes)
		}
		if err := s.Validate(); err != nil {
			return err
		}

		if err := repo.CreateSession(s); err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		logger.Debug("session created", "id", s.ID)

		out := cmd.OutOrStdout()
		success.Fprintf(out, "✓ Logged %d min %s session\n", s.DurationMinutes, s.SessionType)
		fmt.Fprintf(out, "  %s %d/%d completed\n", faint.Sprint(shortID(s.ID)), len(completed), len(attempted))
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var st *models.SessionType
		if sessionListType != "" {
			t, err := models.ParseSessionType(sessionListType)
			if err != nil {
				return err
			}
			st = &t
		}

		sessions, err := repo.ListSessions(st, sessionListLimit)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "No sessions found.")
			return nil
		}

		for _, s := range sessions {
			notes := ""
			if s.Notes != nil && *s.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*s.Notes, 30))
			}
			fmt.Fprintf(out, "%s %s %s %s %d/%d sent%s\n",
				faint.Sprint(shortID(s.ID)),
				when(s.Date),
				padRight(string(s.SessionType), 8),
				padRight(fmt.Sprintf("%d min", s.DurationMinutes), 8),
				len(s.GradesCompleted), len(s.GradesAttempted),
				notes)
		}
		return nil
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := repo.GetSession(args[0])
		if err != nil {
			return err
		}
		if err := repo.DeleteSession(s.ID.String()); err != nil {
			return err
		}

		warn.Fprintf(cmd.OutOrStdout(), "✗ Deleted %s session %s\n", s.SessionType, shortID(s.ID))
		return nil
	},
}

func init() {
	sessionAddCmd.Flags().IntVarP(&sessionDuration, "duration", "d", 0, "duration in minutes")
	sessionAddCmd.Flags().StringSliceVar(&sessionAttempted, "attempted", nil, "grades attempted (comma separated)")
	sessionAddCmd.Flags().StringSliceVar(&sessionCompleted, "completed", nil, "grades completed (comma separated)")
	sessionAddCmd.Flags().StringVar(&sessionDate, "date", "", "session date (YYYY-MM-DD)")
	sessionAddCmd.Flags().StringVar(&sessionNotes, "notes", "", "journal notes")

	sessionListCmd.Flags().StringVarP(&sessionListType, "type", "t", "", "filter by session type")
	sessionListCmd.Flags().IntVarP(&sessionListLimit, "limit", "n", 20, "max number of results")

	sessionCmd.AddCommand(sessionAddCmd, sessionListCmd, sessionDeleteCmd)
	rootCmd.AddCommand(sessionCmd)
}
