// ABOUTME: Shared CLI helpers for time parsing and column formatting.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	faint   = color.New(color.Faint)
	success = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	bold    = color.New(color.Bold)
)

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format %q (use YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// when renders a date with its distance from now, e.g. "2025-01-31 (3 days ago)".
func when(t time.Time) string {
	return fmt.Sprintf("%s %s", t.Format("2006-01-02"), faint.Sprintf("(%s)", humanize.Time(t)))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func shortID(id fmt.Stringer) string {
	return id.String()[:8]
}
