// ABOUTME: Coaching report that runs every calculator over a snapshot of the log.
// ABOUTME: Storage is read once; the calculators themselves stay pure.
package coach

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
	"github.com/harperreed/crag/internal/nutrition"
	"github.com/harperreed/crag/internal/progress"
	"github.com/harperreed/crag/internal/storage"
	"github.com/harperreed/crag/internal/training"
)

// Source is the read side of the climbing log a report needs.
type Source interface {
	ListSends(style *models.Style, limit int) ([]*models.Send, error)
	ListSessions(sessionType *models.SessionType, limit int) ([]*models.Session, error)
	ListMealLogs(since *time.Time, limit int) ([]*models.MealLog, error)
	GetProfile() (*models.Profile, error)
}

// Options tunes a report. Zero values fall back to defaults.
type Options struct {
	CurrentGrade string // defaults to the hardest logged send
	TargetGrade  string
	LoadWeeks    int
	SuccessDays  int
	AsOf         time.Time
}

// NutritionReport is the nutrition half of a report, present only with a saved profile.
type NutritionReport struct {
	Profile      *models.Profile        `json:"profile"`
	Targets      nutrition.Targets      `json:"targets"`
	Distribution nutrition.Distribution `json:"distribution"`
	Averages     nutrition.Averages     `json:"weekly_averages"`
	Insights     []string               `json:"insights,omitempty"`
	Supplements  []nutrition.Supplement `json:"supplements,omitempty"`
}

// Report is a full coaching snapshot.
type Report struct {
	GeneratedAt     time.Time              `json:"generated_at"`
	CurrentGrade    string                 `json:"current_grade"`
	TargetGrade     string                 `json:"target_grade,omitempty"`
	SendCount       int                    `json:"send_count"`
	SessionCount    int                    `json:"session_count"`
	Progress        *progress.Metrics      `json:"progress,omitempty"`
	Styles          progress.StyleAnalysis `json:"styles"`
	Load            training.Load          `json:"training_load"`
	LoadWeeks       int                    `json:"load_weeks"`
	SuccessRate     int                    `json:"success_rate"`
	Recommendations []string               `json:"recommendations,omitempty"`
	Nutrition       *NutritionReport       `json:"nutrition,omitempty"`
}

// Build loads sends, sessions, meal logs, and the profile from src and runs
// the calculators against them.
func Build(src Source, opts Options) (*Report, error) {
	if opts.CurrentGrade != "" {
		if _, err := grade.ParseStrict(opts.CurrentGrade); err != nil {
			return nil, fmt.Errorf("current grade: %w", err)
		}
	}
	if opts.TargetGrade != "" {
		if _, err := grade.ParseStrict(opts.TargetGrade); err != nil {
			return nil, fmt.Errorf("target grade: %w", err)
		}
	}
	if opts.AsOf.IsZero() {
		opts.AsOf = time.Now()
	}
	if opts.LoadWeeks <= 0 {
		opts.LoadWeeks = training.DefaultWeeks
	}
	if opts.SuccessDays <= 0 {
		opts.SuccessDays = training.DefaultSuccessDays
	}

	sends, err := src.ListSends(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("load sends: %w", err)
	}
	sessions, err := src.ListSessions(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	r := &Report{
		GeneratedAt:  opts.AsOf,
		CurrentGrade: opts.CurrentGrade,
		TargetGrade:  opts.TargetGrade,
		SendCount:    len(sends),
		SessionCount: len(sessions),
		Styles:       progress.AnalyzeStyles(sends),
		LoadWeeks:    opts.LoadWeeks,
	}
	if r.CurrentGrade == "" {
		r.CurrentGrade = HardestSend(sends)
	}

	if r.Load, err = training.CalculateLoad(sessions, opts.LoadWeeks, opts.AsOf); err != nil {
		return nil, err
	}
	if r.SuccessRate, err = training.SuccessRate(sessions, opts.SuccessDays, opts.AsOf); err != nil {
		return nil, err
	}

	if r.TargetGrade != "" {
		m := progress.Calculate(r.CurrentGrade, r.TargetGrade, sends)
		r.Progress = &m
		r.Recommendations = progress.Recommendations(r.TargetGrade, r.Styles, r.Load)
	}

	if r.Nutrition, err = buildNutrition(src, opts.AsOf); err != nil {
		return nil, err
	}
	return r, nil
}

func buildNutrition(src Source, asOf time.Time) (*NutritionReport, error) {
	profile, err := src.GetProfile()
	if errors.Is(err, storage.ErrNoProfile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	targets, err := nutrition.CalculateTargets(profile)
	if err != nil {
		return nil, err
	}

	since := asOf.AddDate(0, 0, -7)
	logs, err := src.ListMealLogs(&since, 0)
	if err != nil {
		return nil, fmt.Errorf("load meal logs: %w", err)
	}

	n := &NutritionReport{
		Profile:      profile,
		Targets:      targets,
		Distribution: nutrition.MacroDistribution(targets),
		Averages:     nutrition.WeeklyAverages(logs),
	}

	// Without logged meals there is no intake to compare; supplements are
	// judged as if targets were met.
	intake := n.Averages.AsIntake()
	if n.Averages.Days > 0 {
		n.Insights = nutrition.Insights(intake, targets, profile)
	} else {
		intake = nutrition.Intake{
			Calories: float64(targets.Calories),
			ProteinG: float64(targets.ProteinG),
			CarbsG:   float64(targets.CarbsG),
			FatG:     float64(targets.FatG),
		}
	}
	n.Supplements = nutrition.SupplementPriorities(profile, intake, targets)
	return n, nil
}

// HardestSend returns the display form of the most difficult recognized
// grade among sends, or "" when there are none.
func HardestSend(sends []*models.Send) string {
	var best grade.Grade
	found := false
	for _, s := range sends {
		g := grade.Parse(s.Grade)
		if !g.Parsed {
			continue
		}
		if !found || grade.Compare(g, best) < 0 {
			best = g
			found = true
		}
	}
	if !found {
		return ""
	}
	return best.Display
}
