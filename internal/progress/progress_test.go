package progress

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/harperreed/crag/internal/models"
)

var day0 = time.Date(2025, 1, 6, 18, 0, 0, 0, time.UTC)

func send(g string, style models.Style, daysAfter int) *models.Send {
	return models.NewSend(g, style).WithDate(day0.AddDate(0, 0, daysAfter))
}

func TestWeeklyRateTwoSends(t *testing.T) {
	history := []*models.Send{
		send("V3", models.StyleVertical, 0),
		send("V5", models.StyleVertical, 14),
	}
	assert.Equal(t, 1.0, WeeklyRate(history))
}

func TestWeeklyRateNeedsTwoSends(t *testing.T) {
	assert.Equal(t, 0.0, WeeklyRate(nil))
	assert.Equal(t, 0.0, WeeklyRate([]*models.Send{send("V5", models.StyleRoof, 0)}))
	assert.Equal(t, 0.0, WeeklyRate([]*models.Send{
		send("V2", models.StyleRoof, 3),
		send("V5", models.StyleRoof, 3),
	}))
}

func TestWeeklyRateUsesTenMostRecent(t *testing.T) {
	var history []*models.Send
	// An old V0 that falls outside the window.
	history = append(history, send("V0", models.StyleSlab, -100))
	for i := 0; i < 10; i++ {
		history = append(history, send("V4", models.StyleSlab, i*7))
	}
	history[len(history)-1].Grade = "V7"

	// Oldest in window is V4 at day 0, newest V7 at day 63.
	assert.InDelta(t, 3.0/9.0, WeeklyRate(history), 1e-9)
}

func TestWeeklyRateDoesNotReorderInput(t *testing.T) {
	history := []*models.Send{
		send("V3", models.StyleVertical, 0),
		send("V5", models.StyleVertical, 14),
	}
	WeeklyRate(history)
	assert.Equal(t, "V3", history[0].Grade)
}

func TestCalculate(t *testing.T) {
	history := []*models.Send{
		send("V3", models.StyleVertical, 0),
		send("V5", models.StyleVertical, 14),
	}

	want := Metrics{
		CurrentLevel:          5,
		TargetLevel:           7,
		ProgressPercentage:    71.4,
		EstimatedDaysToTarget: 14,
		WeeklyProgressRate:    1,
	}
	if diff := cmp.Diff(want, Calculate("V5", "V7", history)); diff != "" {
		t.Errorf("Calculate mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateNoTrend(t *testing.T) {
	m := Calculate("V4", "V8", nil)
	assert.Equal(t, 50.0, m.ProgressPercentage)
	assert.Equal(t, NoTrendDays, m.EstimatedDaysToTarget)
	assert.Equal(t, 0.0, m.WeeklyProgressRate)
}

func TestCalculateTargetReached(t *testing.T) {
	history := []*models.Send{
		send("V3", models.StyleVertical, 0),
		send("V5", models.StyleVertical, 14),
	}
	m := Calculate("V8", "V6", history)
	assert.Equal(t, 100.0, m.ProgressPercentage)
	assert.Equal(t, 0, m.EstimatedDaysToTarget)
}

func TestCalculateZeroTarget(t *testing.T) {
	m := Calculate("V0", "V0", nil)
	assert.Equal(t, 100.0, m.ProgressPercentage)

	m = Calculate("V3", "not a grade", nil)
	assert.Equal(t, 100.0, m.ProgressPercentage)
}

func TestCalculateMixedSystems(t *testing.T) {
	m := Calculate("5.11b", "V8", nil)
	assert.Equal(t, 5, m.CurrentLevel)
	assert.Equal(t, 8, m.TargetLevel)

	// 5.9 has no V-scale mapping and counts as 0.
	m = Calculate("5.9", "V4", nil)
	assert.Equal(t, 0, m.CurrentLevel)
	assert.Equal(t, 0.0, m.ProgressPercentage)
}

func TestAnalyzeStyles(t *testing.T) {
	sends := []*models.Send{
		send("V6", models.StyleOverhang, 0),
		send("V7", models.StyleOverhang, 1),
		send("V5", models.StyleOverhang, 2),
		send("V3", models.StyleSlab, 3),
		send("V4", models.StyleSlab, 4),
	}

	got := AnalyzeStyles(sends)
	want := StyleAnalysis{
		models.StyleSlab:     {AverageGrade: 3.5, Count: 2, BestGrade: "V4"},
		models.StyleVertical: {AverageGrade: 0, Count: 0, BestGrade: NoGrade},
		models.StyleOverhang: {AverageGrade: 6, Count: 3, BestGrade: "V7"},
		models.StyleRoof:     {AverageGrade: 0, Count: 0, BestGrade: NoGrade},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AnalyzeStyles mismatch (-want +got):\n%s", diff)
	}
}
