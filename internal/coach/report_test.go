package coach

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/nutrition"
	"github.com/harperreed/crag/internal/storage"
)

var asOf = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

// memSource is an in-memory Source.
type memSource struct {
	sends    []*models.Send
	sessions []*models.Session
	meals    []*models.MealLog
	profile  *models.Profile
	err      error
}

func (m *memSource) ListSends(*models.Style, int) ([]*models.Send, error) {
	return m.sends, m.err
}

func (m *memSource) ListSessions(*models.SessionType, int) ([]*models.Session, error) {
	return m.sessions, nil
}

func (m *memSource) ListMealLogs(since *time.Time, _ int) ([]*models.MealLog, error) {
	var out []*models.MealLog
	for _, l := range m.meals {
		if since == nil || !l.Date.Before(*since) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memSource) GetProfile() (*models.Profile, error) {
	if m.profile == nil {
		return nil, storage.ErrNoProfile
	}
	return m.profile, nil
}

func scenario() *memSource {
	src := &memSource{
		sends: []*models.Send{
			models.NewSend("V5", models.StyleOverhang).WithDate(asOf),
			models.NewSend("V3", models.StyleSlab).WithDate(asOf.AddDate(0, 0, -14)),
		},
	}
	for i := 0; i < 16; i++ {
		s := models.NewSession(models.SessionGym, 30).
			WithDate(asOf.AddDate(0, 0, -i)).
			WithAttempted("V5")
		if i%2 == 0 {
			s.WithCompleted("V5")
		}
		src.sessions = append(src.sessions, s)
	}
	return src
}

func TestBuild(t *testing.T) {
	r, err := Build(scenario(), Options{TargetGrade: "V7", AsOf: asOf})
	require.NoError(t, err)

	assert.Equal(t, "V5", r.CurrentGrade)
	assert.Equal(t, 2, r.SendCount)
	assert.Equal(t, 16, r.SessionCount)
	assert.Equal(t, 4, r.LoadWeeks)
	assert.Equal(t, 57, r.Load.Load)
	assert.Equal(t, 50, r.SuccessRate)

	require.NotNil(t, r.Progress)
	assert.Equal(t, 71.4, r.Progress.ProgressPercentage)
	assert.Equal(t, 1.0, r.Progress.WeeklyProgressRate)
	assert.Equal(t, 14, r.Progress.EstimatedDaysToTarget)

	assert.Equal(t, 1, r.Styles[models.StyleSlab].Count)
	assert.Equal(t, "N/A", r.Styles[models.StyleRoof].BestGrade)

	require.Len(t, r.Recommendations, 4)
	assert.Equal(t, "Focus on slab climbing - it's 2.0 grades behind your overhang", r.Recommendations[0])

	assert.Nil(t, r.Nutrition)
}

func TestBuildWithoutTarget(t *testing.T) {
	r, err := Build(scenario(), Options{AsOf: asOf})
	require.NoError(t, err)

	assert.Nil(t, r.Progress)
	assert.Empty(t, r.Recommendations)
}

func TestBuildExplicitCurrentGrade(t *testing.T) {
	r, err := Build(scenario(), Options{CurrentGrade: "V6", TargetGrade: "V7", AsOf: asOf})
	require.NoError(t, err)

	assert.Equal(t, "V6", r.CurrentGrade)
	assert.Equal(t, 85.7, r.Progress.ProgressPercentage)
}

func TestBuildRejectsUnrecognizedGrades(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"word target", Options{TargetGrade: "seven"}},
		{"french target", Options{TargetGrade: "6b+"}},
		{"unknown current", Options{CurrentGrade: "banana", TargetGrade: "V7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.AsOf = asOf
			r, err := Build(scenario(), tt.opts)
			assert.ErrorIs(t, err, grade.ErrUnrecognizedGrade)
			assert.Nil(t, r)
		})
	}
}

func TestBuildEmptyLog(t *testing.T) {
	r, err := Build(&memSource{}, Options{TargetGrade: "V4", AsOf: asOf})
	require.NoError(t, err)

	assert.Equal(t, "", r.CurrentGrade)
	assert.Equal(t, 0, r.Load.Load)
	assert.Equal(t, 0, r.SuccessRate)
	assert.Equal(t, 365, r.Progress.EstimatedDaysToTarget)
}

func TestBuildPropagatesErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Build(&memSource{err: boom}, Options{AsOf: asOf})
	assert.ErrorIs(t, err, boom)
}

func TestBuildNutritionWithoutLogs(t *testing.T) {
	src := scenario()
	src.profile = &models.Profile{
		WeightLb: 150, HeightIn: 68, Age: 30,
		Sex: models.SexMale, ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain,
	}

	r, err := Build(src, Options{AsOf: asOf})
	require.NoError(t, err)
	require.NotNil(t, r.Nutrition)

	assert.Equal(t, 2503, r.Nutrition.Targets.Calories)
	assert.Equal(t, nutrition.Distribution{Protein: 24, Carbs: 46, Fat: 30}, r.Nutrition.Distribution)
	assert.Equal(t, 0, r.Nutrition.Averages.Days)
	assert.Empty(t, r.Nutrition.Insights)
	assert.Empty(t, r.Nutrition.Supplements)
}

func TestBuildNutritionWithLogs(t *testing.T) {
	src := scenario()
	src.profile = &models.Profile{
		WeightLb: 150, HeightIn: 68, Age: 30,
		Sex: models.SexMale, ActivityLevel: models.ActivityModerate, Goal: models.GoalMaintain,
	}
	src.meals = []*models.MealLog{
		models.NewMealLog(2400, 100, 300, 80).WithDate(asOf.AddDate(0, 0, -1)),
		models.NewMealLog(2600, 100, 320, 85).WithDate(asOf.AddDate(0, 0, -2)),
		models.NewMealLog(1000, 20, 100, 30).WithDate(asOf.AddDate(0, 0, -30)),
	}

	r, err := Build(src, Options{AsOf: asOf})
	require.NoError(t, err)
	require.NotNil(t, r.Nutrition)

	assert.Equal(t, 2, r.Nutrition.Averages.Days)
	assert.Equal(t, 2500, r.Nutrition.Averages.Calories)
	require.NotEmpty(t, r.Nutrition.Insights)
	assert.Contains(t, r.Nutrition.Insights[0], "Protein deficit")
	require.Len(t, r.Nutrition.Supplements, 1)
	assert.Equal(t, "Protein Powder", r.Nutrition.Supplements[0].Name)
}

func TestHardestSend(t *testing.T) {
	sends := []*models.Send{
		models.NewSend("V2", models.StyleSlab),
		models.NewSend("project thing", models.StyleRoof),
		models.NewSend("V6", models.StyleOverhang),
		models.NewSend("V4", models.StyleVertical),
	}
	assert.Equal(t, "V6", HardestSend(sends))
	assert.Equal(t, "", HardestSend(nil))
}

func TestMarkdown(t *testing.T) {
	src := scenario()
	src.profile = &models.Profile{
		WeightLb: 150, HeightIn: 68, Age: 30,
		Sex: models.SexMale, ActivityLevel: models.ActivityVeryActive, Goal: models.GoalCut,
	}

	r, err := Build(src, Options{TargetGrade: "V7", AsOf: asOf})
	require.NoError(t, err)

	md := r.Markdown()
	for _, want := range []string{
		"# Climbing Report - 2025-06-30",
		"- Current grade: V5",
		"## Progress",
		"- Load score: 57/100",
		"| overhang | 1 | 5.0 | V5 |",
		"## Recommendations",
		"## Nutrition",
		"**Creatine** (high)",
	} {
		assert.True(t, strings.Contains(md, want), "markdown missing %q", want)
	}
}
