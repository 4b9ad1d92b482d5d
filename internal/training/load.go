// ABOUTME: Training load aggregation over a trailing window of sessions.
// ABOUTME: Combines volume, intensity, and density into a 0-100 load score.
package training

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
)

// ErrInvalidPeriod is returned when a trailing window is not positive.
var ErrInvalidPeriod = errors.New("period must be positive")

// DefaultWeeks is the trailing window used when the caller has no preference.
const DefaultWeeks = 4

// Caps used to normalize each component to [0, 1].
const (
	VolumeCapMinutes  = 300.0 // minutes per week
	IntensityCapGrade = 10.0  // V10
	DensityCapPerWeek = 5.0   // sessions per week
)

// Load summarizes recent training.
type Load struct {
	Volume    int     `json:"volume"`    // minutes per week
	Intensity float64 `json:"intensity"` // mean attempted grade value
	Density   float64 `json:"density"`   // sessions per week
	Load      int     `json:"load"`      // combined 0-100 score
}

// CalculateLoad aggregates non-rest sessions dated within weeks*7 days of asOf.
func CalculateLoad(sessions []*models.Session, weeks int, asOf time.Time) (Load, error) {
	if weeks <= 0 {
		return Load{}, fmt.Errorf("calculate load: %w (got %d weeks)", ErrInvalidPeriod, weeks)
	}

	cutoff := asOf.AddDate(0, 0, -weeks*7)
	var totalMinutes, count, gradeSum, gradeCount int
	for _, s := range sessions {
		if s.SessionType == models.SessionRest || s.Date.Before(cutoff) {
			continue
		}
		count++
		totalMinutes += s.DurationMinutes
		for _, g := range s.GradesAttempted {
			gradeSum += grade.Parse(g).Value
			gradeCount++
		}
	}

	if count == 0 {
		return Load{}, nil
	}

	w := float64(weeks)
	volume := float64(totalMinutes) / w
	intensity := 0.0
	if gradeCount > 0 {
		intensity = float64(gradeSum) / float64(gradeCount)
	}
	density := float64(count) / w

	combined := (clamp01(volume/VolumeCapMinutes) +
		clamp01(intensity/IntensityCapGrade) +
		clamp01(density/DensityCapPerWeek)) / 3 * 100

	return Load{
		Volume:    int(math.Round(volume)),
		Intensity: round1(intensity),
		Density:   round1(density),
		Load:      int(math.Round(combined)),
	}, nil
}

// CalculateLoadNow is CalculateLoad anchored at the current time.
func CalculateLoadNow(sessions []*models.Session, weeks int) (Load, error) {
	return CalculateLoad(sessions, weeks, time.Now())
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
