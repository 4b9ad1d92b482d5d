// ABOUTME: Meal log operations for SQLite storage.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/crag/internal/models"
)

const mealColumns = `id, logged_at, calories, protein_g, carbs_g, fat_g, notes, created_at`

// CreateMealLog stores a new meal log.
func (d *DB) CreateMealLog(m *models.MealLog) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("create meal log: %w", err)
	}
	query := `INSERT INTO meal_logs (` + mealColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Date.UTC().Format(time.RFC3339),
		m.Calories,
		m.ProteinG,
		m.CarbsG,
		m.FatG,
		m.Notes,
		m.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create meal log: %w", err)
	}
	return nil
}

// ListMealLogs returns logs newest first, optionally only those on or after since.
func (d *DB) ListMealLogs(since *time.Time, limit int) ([]*models.MealLog, error) {
	query := `SELECT ` + mealColumns + ` FROM meal_logs`
	var args []interface{}

	if since != nil {
		query += ` WHERE logged_at >= ?`
		args = append(args, since.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY logged_at DESC`

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meal logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.MealLog
	for rows.Next() {
		var m models.MealLog
		var idStr, loggedAt, createdAt string
		var notes sql.NullString

		if err := rows.Scan(&idStr, &loggedAt, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan meal log: %w", err)
		}
		m.ID, _ = uuid.Parse(idStr)
		m.Date, _ = time.Parse(time.RFC3339, loggedAt)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if notes.Valid {
			m.Notes = &notes.String
		}
		logs = append(logs, &m)
	}
	return logs, rows.Err()
}

// DeleteMealLog removes a meal log by ID or prefix.
func (d *DB) DeleteMealLog(idOrPrefix string) error {
	if err := d.deleteByID("meal_logs", idOrPrefix); err != nil {
		return fmt.Errorf("delete meal log: %w", err)
	}
	return nil
}
