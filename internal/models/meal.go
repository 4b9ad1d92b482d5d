// ABOUTME: MealLog model for daily nutrition intake.
// ABOUTME: Logs feed weekly averages and nutrition insights.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MealLog is one day's (or one meal's) recorded intake.
type MealLog struct {
	ID        uuid.UUID
	Date      time.Time
	Calories  float64
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	Notes     *string
	CreatedAt time.Time
}

// NewMealLog creates a new MealLog dated now.
func NewMealLog(calories, protein, carbs, fat float64) *MealLog {
	now := time.Now()
	return &MealLog{
		ID:        uuid.New(),
		Date:      now,
		Calories:  calories,
		ProteinG:  protein,
		CarbsG:    carbs,
		FatG:      fat,
		CreatedAt: now,
	}
}

// WithDate sets the log date.
func (m *MealLog) WithDate(t time.Time) *MealLog {
	m.Date = t
	return m
}

// WithNotes sets notes on the log.
func (m *MealLog) WithNotes(notes string) *MealLog {
	m.Notes = &notes
	return m
}

// Validate rejects negative intake values.
func (m *MealLog) Validate() error {
	if m.Calories < 0 || m.ProteinG < 0 || m.CarbsG < 0 || m.FatG < 0 {
		return fmt.Errorf("%w: intake values must not be negative", ErrInvalid)
	}
	return nil
}
