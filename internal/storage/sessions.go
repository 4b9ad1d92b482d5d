// ABOUTME: Session CRUD operations for SQLite storage.
// ABOUTME: Attempted and completed grades are stored as JSON arrays.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/crag/internal/models"
)

const sessionColumns = `id, session_date, duration_minutes, session_type, grades_attempted, grades_completed, notes, created_at`

// CreateSession stores a new session in the database.
func (d *DB) CreateSession(s *models.Session) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	attempted, err := encodeGrades(s.GradesAttempted)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	completed, err := encodeGrades(s.GradesCompleted)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = d.db.Exec(query,
		s.ID.String(),
		s.Date.UTC().Format(time.RFC3339),
		s.DurationMinutes,
		string(s.SessionType),
		attempted,
		completed,
		s.Notes,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID or ID prefix.
func (d *DB) GetSession(idOrPrefix string) (*models.Session, error) {
	id, err := d.resolveID("sessions", idOrPrefix)
	if err != nil {
		return nil, err
	}

	s, err := scanSession(d.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return s, err
}

// ListSessions retrieves sessions with optional filtering by type.
// Results are sorted by date descending (most recent first).
func (d *DB) ListSessions(sessionType *models.SessionType, limit int) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions`
	var args []interface{}

	if sessionType != nil {
		query += ` WHERE session_type = ?`
		args = append(args, string(*sessionType))
	}
	query += ` ORDER BY session_date DESC`

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session by ID or prefix.
func (d *DB) DeleteSession(idOrPrefix string) error {
	if err := d.deleteByID("sessions", idOrPrefix); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func encodeGrades(grades []string) (string, error) {
	if grades == nil {
		grades = []string{}
	}
	data, err := json.Marshal(grades)
	if err != nil {
		return "", fmt.Errorf("encode grades: %w", err)
	}
	return string(data), nil
}

func decodeGrades(s string) ([]string, error) {
	var grades []string
	if err := json.Unmarshal([]byte(s), &grades); err != nil {
		return nil, fmt.Errorf("decode grades: %w", err)
	}
	if len(grades) == 0 {
		return nil, nil
	}
	return grades, nil
}

func scanSession(row rowScanner) (*models.Session, error) {
	var s models.Session
	var idStr, date, sessionType, attempted, completed, createdAt string
	var notes sql.NullString

	err := row.Scan(&idStr, &date, &s.DurationMinutes, &sessionType, &attempted, &completed, &notes, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	s.ID, _ = uuid.Parse(idStr)
	s.SessionType = models.SessionType(sessionType)
	s.Date, _ = time.Parse(time.RFC3339, date)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		s.Notes = &notes.String
	}
	if s.GradesAttempted, err = decodeGrades(attempted); err != nil {
		return nil, err
	}
	if s.GradesCompleted, err = decodeGrades(completed); err != nil {
		return nil, err
	}
	return &s, nil
}
