// ABOUTME: Export and import functionality for the climbing log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/crag/internal/models"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ExportVersion is the format version written by GetAllData.
const ExportVersion = "1.0"

// ExportData represents the full export format for the climbing log.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	Profile    *models.Profile   `json:"profile,omitempty" yaml:"profile,omitempty"`
	Sends      []*models.Send    `json:"sends" yaml:"sends"`
	Sessions   []*models.Session `json:"sessions" yaml:"sessions"`
	MealLogs   []*models.MealLog `json:"meal_logs" yaml:"meal_logs"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	sends, err := d.ListSends(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list sends: %w", err)
	}

	sessions, err := d.ListSessions(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	meals, err := d.ListMealLogs(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}

	profile, err := d.GetProfile()
	if err != nil && !errors.Is(err, ErrNoProfile) {
		return nil, err
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "crag",
		Profile:    profile,
		Sends:      sends,
		Sessions:   sessions,
		MealLogs:   meals,
	}, nil
}

// ImportData imports data from an export file. Every record is attempted;
// failures are combined into the returned error.
func (d *DB) ImportData(data *ExportData) error {
	var errs error

	if data.Profile != nil {
		errs = multierr.Append(errs, d.SaveProfile(data.Profile))
	}
	for _, s := range data.Sends {
		if err := d.CreateSend(s); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("import send %s: %w", s.ID, err))
		}
	}
	for _, s := range data.Sessions {
		if err := d.CreateSession(s); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("import session %s: %w", s.ID, err))
		}
	}
	for _, m := range data.MealLogs {
		if err := d.CreateMealLog(m); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("import meal log %s: %w", m.ID, err))
		}
	}

	return errs
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML with short IDs and sends grouped by style.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string                `yaml:"version"`
		ExportedAt string                `yaml:"exported_at"`
		Tool       string                `yaml:"tool"`
		Profile    *models.Profile       `yaml:"profile,omitempty"`
		Sends      map[string][]yamlSend `yaml:"sends"`
		Sessions   []yamlSession         `yaml:"sessions"`
		MealLogs   []yamlMeal            `yaml:"meal_logs"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Profile:    data.Profile,
		Sends:      make(map[string][]yamlSend),
		Sessions:   make([]yamlSession, 0, len(data.Sessions)),
		MealLogs:   make([]yamlMeal, 0, len(data.MealLogs)),
	}

	for _, s := range data.Sends {
		ys := yamlSend{
			ID:           s.ID.String()[:8],
			Grade:        s.Grade,
			Date:         s.Date.Format(time.RFC3339),
			Significance: string(s.Significance),
		}
		if s.Notes != nil {
			ys.Notes = *s.Notes
		}
		style := string(s.Style)
		yamlData.Sends[style] = append(yamlData.Sends[style], ys)
	}

	for _, s := range data.Sessions {
		ys := yamlSession{
			ID:              s.ID.String()[:8],
			Type:            string(s.SessionType),
			Date:            s.Date.Format(time.RFC3339),
			DurationMinutes: s.DurationMinutes,
			Attempted:       s.GradesAttempted,
			Completed:       s.GradesCompleted,
		}
		if s.Notes != nil {
			ys.Notes = *s.Notes
		}
		yamlData.Sessions = append(yamlData.Sessions, ys)
	}

	for _, m := range data.MealLogs {
		ym := yamlMeal{
			ID:       m.ID.String()[:8],
			Date:     m.Date.Format(time.RFC3339),
			Calories: m.Calories,
			ProteinG: m.ProteinG,
			CarbsG:   m.CarbsG,
			FatG:     m.FatG,
		}
		if m.Notes != nil {
			ym.Notes = *m.Notes
		}
		yamlData.MealLogs = append(yamlData.MealLogs, ym)
	}

	return yaml.Marshal(yamlData)
}

type yamlSend struct {
	ID           string `yaml:"id"`
	Grade        string `yaml:"grade"`
	Date         string `yaml:"date"`
	Significance string `yaml:"significance"`
	Notes        string `yaml:"notes,omitempty"`
}

type yamlSession struct {
	ID              string   `yaml:"id"`
	Type            string   `yaml:"type"`
	Date            string   `yaml:"date"`
	DurationMinutes int      `yaml:"duration_minutes"`
	Attempted       []string `yaml:"attempted,omitempty"`
	Completed       []string `yaml:"completed,omitempty"`
	Notes           string   `yaml:"notes,omitempty"`
}

type yamlMeal struct {
	ID       string  `yaml:"id"`
	Date     string  `yaml:"date"`
	Calories float64 `yaml:"calories"`
	ProteinG float64 `yaml:"protein_g"`
	CarbsG   float64 `yaml:"carbs_g"`
	FatG     float64 `yaml:"fat_g"`
	Notes    string  `yaml:"notes,omitempty"`
}

// ExportMarkdown exports sends, sessions, and meal logs as Markdown tables.
// When since is set, only records dated on or after it are included.
func (d *DB) ExportMarkdown(since *time.Time) (string, error) {
	data, err := d.GetAllData()
	if err != nil {
		return "", err
	}

	include := func(t time.Time) bool {
		return since == nil || !t.Before(*since)
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Climbing Log - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Sends\n\n")
	sb.WriteString("| Date | Grade | Style | Significance | Notes |\n")
	sb.WriteString("|------|-------|-------|--------------|-------|\n")
	for _, s := range data.Sends {
		if !include(s.Date) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			s.Date.Format("2006-01-02"), s.Grade, s.Style, s.Significance, deref(s.Notes)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Sessions\n\n")
	sb.WriteString("| Date | Type | Duration | Attempted | Completed | Notes |\n")
	sb.WriteString("|------|------|----------|-----------|-----------|-------|\n")
	for _, s := range data.Sessions {
		if !include(s.Date) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %s | %s | %s |\n",
			s.Date.Format("2006-01-02"), s.SessionType, s.DurationMinutes,
			strings.Join(s.GradesAttempted, ", "), strings.Join(s.GradesCompleted, ", "),
			deref(s.Notes)))
	}

	var meals []*models.MealLog
	for _, m := range data.MealLogs {
		if include(m.Date) {
			meals = append(meals, m)
		}
	}
	if len(meals) > 0 {
		sb.WriteString("\n## Nutrition\n\n")
		sb.WriteString("| Date | Calories | Protein | Carbs | Fat | Notes |\n")
		sb.WriteString("|------|----------|---------|-------|-----|-------|\n")
		for _, m := range meals {
			sb.WriteString(fmt.Sprintf("| %s | %.0f | %.0fg | %.0fg | %.0fg | %s |\n",
				m.Date.Format("2006-01-02"), m.Calories, m.ProteinG, m.CarbsG, m.FatG, deref(m.Notes)))
		}
	}

	return sb.String(), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
