// ABOUTME: Send model for benchmark climbs and graded achievements.
// ABOUTME: Defines climbing Style and Significance enums with validation.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/crag/internal/grade"
)

// Style is the wall angle a send was climbed on.
type Style string

const (
	StyleSlab     Style = "slab"
	StyleVertical Style = "vertical"
	StyleOverhang Style = "overhang"
	StyleRoof     Style = "roof"
)

// AllStyles lists styles in the order reports present them.
var AllStyles = []Style{StyleSlab, StyleVertical, StyleOverhang, StyleRoof}

// ParseStyle validates a style string.
func ParseStyle(s string) (Style, error) {
	for _, st := range AllStyles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown style %q (use slab, vertical, overhang, roof)", ErrInvalid, s)
}

// Significance describes why a send matters to the climber.
type Significance string

const (
	SignificanceMilestone    Significance = "milestone"
	SignificanceBreakthrough Significance = "breakthrough"
	SignificanceConsistency  Significance = "consistency"
	SignificanceProject      Significance = "project"
)

// AllSignificances returns all valid significance tiers.
var AllSignificances = []Significance{
	SignificanceMilestone, SignificanceBreakthrough,
	SignificanceConsistency, SignificanceProject,
}

// ParseSignificance validates a significance string.
func ParseSignificance(s string) (Significance, error) {
	for _, sg := range AllSignificances {
		if string(sg) == s {
			return sg, nil
		}
	}
	return "", fmt.Errorf("%w: unknown significance %q", ErrInvalid, s)
}

// Send represents a dated climbing achievement.
type Send struct {
	ID           uuid.UUID
	Grade        string
	Date         time.Time
	Style        Style
	Significance Significance
	Notes        *string
	CreatedAt    time.Time
}

// NewSend creates a new Send dated now with a generated UUID.
func NewSend(grade string, style Style) *Send {
	now := time.Now()
	return &Send{
		ID:           uuid.New(),
		Grade:        grade,
		Date:         now,
		Style:        style,
		Significance: SignificanceConsistency,
		CreatedAt:    now,
	}
}

// WithDate sets the day the send happened.
func (s *Send) WithDate(t time.Time) *Send {
	s.Date = t
	return s
}

// WithSignificance sets the significance tier.
func (s *Send) WithSignificance(sg Significance) *Send {
	s.Significance = sg
	return s
}

// WithNotes sets notes on the send.
func (s *Send) WithNotes(notes string) *Send {
	s.Notes = &notes
	return s
}

// Validate rejects unknown grades, styles, and significance tiers.
func (s *Send) Validate() error {
	if _, err := grade.ParseStrict(s.Grade); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := ParseStyle(string(s.Style)); err != nil {
		return err
	}
	if _, err := ParseSignificance(string(s.Significance)); err != nil {
		return err
	}
	return nil
}
