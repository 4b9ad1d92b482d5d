// ABOUTME: Progress toward a target grade from a history of dated sends.
// ABOUTME: Estimates weekly improvement rate and days remaining to the goal.
package progress

import (
	"math"
	"sort"

	"github.com/harperreed/crag/internal/grade"
	"github.com/harperreed/crag/internal/models"
)

const (
	// RecentSendWindow is how many of the newest sends feed the rate estimate.
	RecentSendWindow = 10
	// NoTrendDays is reported when there is no positive progress trend.
	NoTrendDays = 365
)

// Metrics describes where a climber stands relative to a target grade.
type Metrics struct {
	CurrentLevel          int     `json:"current_level"`
	TargetLevel           int     `json:"target_level"`
	ProgressPercentage    float64 `json:"progress_percentage"`
	EstimatedDaysToTarget int     `json:"estimated_days_to_target"`
	WeeklyProgressRate    float64 `json:"weekly_progress_rate"`
}

// Calculate compares current and target grades and derives a weekly rate
// from the most recent sends in history.
func Calculate(current, target string, history []*models.Send) Metrics {
	currentLevel, targetLevel := levels(current, target)

	pct := 100.0
	if targetLevel > 0 && targetLevel > currentLevel {
		pct = math.Min(float64(currentLevel)/float64(targetLevel)*100, 100)
	}

	rate := WeeklyRate(history)

	days := NoTrendDays
	if rate > 0 {
		days = int(math.Round(float64(targetLevel-currentLevel) / rate * 7))
	}
	if days < 0 {
		days = 0
	}

	return Metrics{
		CurrentLevel:          currentLevel,
		TargetLevel:           targetLevel,
		ProgressPercentage:    math.Round(pct*10) / 10,
		EstimatedDaysToTarget: days,
		WeeklyProgressRate:    math.Round(rate*100) / 100,
	}
}

// levels puts both grades on one numeric scale. Mixed systems are compared
// in V-scale; a YDS grade outside the conversion table counts as 0.
func levels(current, target string) (int, int) {
	c, t := grade.Parse(current), grade.Parse(target)
	if c.System == t.System {
		return c.Value, t.Value
	}
	return vScaleOrZero(current), vScaleOrZero(target)
}

func vScaleOrZero(s string) int {
	v, ok := grade.VScaleLevel(s)
	if !ok {
		return 0
	}
	return v
}

// WeeklyRate returns grade levels gained per week between the oldest and
// newest of the last RecentSendWindow sends. Fewer than two sends, or sends
// all on the same instant, yield 0.
func WeeklyRate(history []*models.Send) float64 {
	if len(history) < 2 {
		return 0
	}

	recent := make([]*models.Send, len(history))
	copy(recent, history)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > RecentSendWindow {
		recent = recent[:RecentSendWindow]
	}

	newest, oldest := recent[0], recent[len(recent)-1]
	weeks := newest.Date.Sub(oldest.Date).Hours() / 24 / 7
	if weeks <= 0 {
		return 0
	}
	diff := grade.Parse(newest.Grade).Value - grade.Parse(oldest.Grade).Value
	return float64(diff) / weeks
}
