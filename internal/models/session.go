// ABOUTME: Session model for training sessions and journal entries.
// ABOUTME: Sessions carry attempted and completed grades for load and success rate.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/crag/internal/grade"
)

// SessionType categorizes a training day.
type SessionType string

const (
	SessionGym      SessionType = "gym"
	SessionOutdoor  SessionType = "outdoor"
	SessionTraining SessionType = "training"
	SessionRest     SessionType = "rest"
)

// AllSessionTypes returns all valid session types.
var AllSessionTypes = []SessionType{SessionGym, SessionOutdoor, SessionTraining, SessionRest}

// ParseSessionType validates a session type string.
func ParseSessionType(s string) (SessionType, error) {
	for _, st := range AllSessionTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown session type %q (use gym, outdoor, training, rest)", ErrInvalid, s)
}

// Session represents one training session or journal entry.
type Session struct {
	ID              uuid.UUID
	Date            time.Time
	DurationMinutes int
	SessionType     SessionType
	GradesAttempted []string
	GradesCompleted []string
	Notes           *string
	CreatedAt       time.Time
}

// NewSession creates a new Session dated now.
func NewSession(sessionType SessionType, durationMinutes int) *Session {
	now := time.Now()
	return &Session{
		ID:              uuid.New(),
		Date:            now,
		DurationMinutes: durationMinutes,
		SessionType:     sessionType,
		CreatedAt:       now,
	}
}

// WithDate sets the session date.
func (s *Session) WithDate(t time.Time) *Session {
	s.Date = t
	return s
}

// WithAttempted sets the grades attempted during the session.
func (s *Session) WithAttempted(grades ...string) *Session {
	s.GradesAttempted = grades
	return s
}

// WithCompleted sets the grades completed during the session.
func (s *Session) WithCompleted(grades ...string) *Session {
	s.GradesCompleted = grades
	return s
}

// WithNotes sets notes on the session.
func (s *Session) WithNotes(notes string) *Session {
	s.Notes = &notes
	return s
}

// Validate checks the session for values the calculators cannot use.
func (s *Session) Validate() error {
	if s.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalid)
	}
	if _, err := ParseSessionType(string(s.SessionType)); err != nil {
		return err
	}
	for _, g := range append(append([]string{}, s.GradesAttempted...), s.GradesCompleted...) {
		if _, err := grade.ParseStrict(g); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}
