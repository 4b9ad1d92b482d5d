// ABOUTME: Success rate of attempted versus completed grades.
// ABOUTME: Counts journal entries within a trailing day window.
package training

import (
	"fmt"
	"math"
	"time"

	"github.com/harperreed/crag/internal/models"
)

// DefaultSuccessDays is the trailing window for success rate.
const DefaultSuccessDays = 30

// SuccessRate returns completed/attempted as a rounded percentage over
// sessions dated within days of asOf. Nothing attempted yields 0.
func SuccessRate(sessions []*models.Session, days int, asOf time.Time) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("success rate: %w (got %d days)", ErrInvalidPeriod, days)
	}

	cutoff := asOf.AddDate(0, 0, -days)
	var attempted, completed int
	for _, s := range sessions {
		if s.Date.Before(cutoff) {
			continue
		}
		attempted += len(s.GradesAttempted)
		completed += len(s.GradesCompleted)
	}

	if attempted == 0 {
		return 0, nil
	}
	return int(math.Round(float64(completed) / float64(attempted) * 100)), nil
}
