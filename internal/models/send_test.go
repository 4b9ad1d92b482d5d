// ABOUTME: Tests for Send and Session models.
// ABOUTME: Validates constructors, builders, and enum parsing.
package models

import (
	"errors"
	"testing"
	"time"
)

func TestNewSend(t *testing.T) {
	s := NewSend("V5", StyleOverhang)

	if s.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if s.Grade != "V5" {
		t.Errorf("Grade = %s, want V5", s.Grade)
	}
	if s.Style != StyleOverhang {
		t.Errorf("Style = %s, want overhang", s.Style)
	}
	if s.Significance != SignificanceConsistency {
		t.Errorf("Significance = %s, want consistency", s.Significance)
	}
	if s.Date.IsZero() {
		t.Error("expected Date to be set")
	}
}

func TestSendBuilders(t *testing.T) {
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	s := NewSend("5.11a", StyleVertical).
		WithDate(day).
		WithSignificance(SignificanceBreakthrough).
		WithNotes("first of the grade")

	if !s.Date.Equal(day) {
		t.Errorf("Date = %v, want %v", s.Date, day)
	}
	if s.Significance != SignificanceBreakthrough {
		t.Errorf("Significance = %s, want breakthrough", s.Significance)
	}
	if s.Notes == nil || *s.Notes != "first of the grade" {
		t.Error("expected Notes to be set")
	}
}

func TestParseStyle(t *testing.T) {
	for _, st := range AllStyles {
		got, err := ParseStyle(string(st))
		if err != nil || got != st {
			t.Errorf("ParseStyle(%q) = %q, %v", st, got, err)
		}
	}
	if _, err := ParseStyle("crimpy"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseStyle(crimpy) error = %v, want ErrInvalid", err)
	}
}

func TestParseSignificance(t *testing.T) {
	if _, err := ParseSignificance("project"); err != nil {
		t.Errorf("ParseSignificance(project) unexpected error: %v", err)
	}
	if _, err := ParseSignificance("huge"); err == nil {
		t.Error("expected error for unknown significance")
	}
}

func TestNewSession(t *testing.T) {
	s := NewSession(SessionGym, 90).
		WithAttempted("V4", "V5", "V6").
		WithCompleted("V4", "V5")

	if s.DurationMinutes != 90 {
		t.Errorf("DurationMinutes = %d, want 90", s.DurationMinutes)
	}
	if len(s.GradesAttempted) != 3 {
		t.Errorf("len(GradesAttempted) = %d, want 3", len(s.GradesAttempted))
	}
	if len(s.GradesCompleted) != 2 {
		t.Errorf("len(GradesCompleted) = %d, want 2", len(s.GradesCompleted))
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestSessionValidate(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		wantErr bool
	}{
		{"valid rest day", NewSession(SessionRest, 0), false},
		{"negative duration", NewSession(SessionGym, -5), true},
		{"unknown type", NewSession(SessionType("yoga"), 30), true},
		{"graded session", NewSession(SessionGym, 60).WithAttempted("V4", "5.11c").WithCompleted("V4"), false},
		{"unrecognized attempted grade", NewSession(SessionGym, 60).WithAttempted("V4", "hard"), true},
		{"unrecognized completed grade", NewSession(SessionGym, 60).WithCompleted("banana"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.session.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSendValidate(t *testing.T) {
	tests := []struct {
		name    string
		send    *Send
		wantErr bool
	}{
		{"valid V-scale", NewSend("V5", StyleOverhang), false},
		{"valid YDS", NewSend("5.11c", StyleVertical).WithSignificance(SignificanceMilestone), false},
		{"unrecognized grade", NewSend("banana", StyleSlab), true},
		{"unknown style", NewSend("V5", Style("crimpy")), true},
		{"unknown significance", NewSend("V5", StyleRoof).WithSignificance(Significance("epic")), true},
		{"empty significance", &Send{Grade: "V5", Style: StyleRoof}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.send.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestMealLogValidate(t *testing.T) {
	if err := NewMealLog(2200, 150, 250, 70).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	if err := NewMealLog(-1, 0, 0, 0).Validate(); err == nil {
		t.Error("expected error for negative calories")
	}
}
