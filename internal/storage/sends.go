// ABOUTME: Send CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for sends.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/crag/internal/models"
)

const sendColumns = `id, grade, sent_at, style, significance, notes, created_at`

// CreateSend stores a new send in the database.
func (d *DB) CreateSend(s *models.Send) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("create send: %w", err)
	}
	query := `INSERT INTO sends (` + sendColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := d.db.Exec(query,
		s.ID.String(),
		s.Grade,
		s.Date.UTC().Format(time.RFC3339),
		string(s.Style),
		string(s.Significance),
		s.Notes,
		s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create send: %w", err)
	}
	return nil
}

// GetSend retrieves a send by ID or ID prefix.
func (d *DB) GetSend(idOrPrefix string) (*models.Send, error) {
	id, err := d.resolveID("sends", idOrPrefix)
	if err != nil {
		return nil, err
	}

	row := d.db.QueryRow(`SELECT `+sendColumns+` FROM sends WHERE id = ?`, id)
	s, err := scanSend(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return s, err
}

// ListSends retrieves sends with optional filtering by style.
// Results are sorted by date descending (most recent first).
func (d *DB) ListSends(style *models.Style, limit int) ([]*models.Send, error) {
	query := `SELECT ` + sendColumns + ` FROM sends`
	var args []interface{}

	if style != nil {
		query += ` WHERE style = ?`
		args = append(args, string(*style))
	}
	query += ` ORDER BY sent_at DESC`

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sends: %w", err)
	}
	defer rows.Close()

	var sends []*models.Send
	for rows.Next() {
		s, err := scanSend(rows)
		if err != nil {
			return nil, err
		}
		sends = append(sends, s)
	}
	return sends, rows.Err()
}

// DeleteSend removes a send by ID or prefix.
func (d *DB) DeleteSend(idOrPrefix string) error {
	if err := d.deleteByID("sends", idOrPrefix); err != nil {
		return fmt.Errorf("delete send: %w", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSend(row rowScanner) (*models.Send, error) {
	var s models.Send
	var idStr, sentAt, style, significance, createdAt string
	var notes sql.NullString

	if err := row.Scan(&idStr, &s.Grade, &sentAt, &style, &significance, &notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan send: %w", err)
	}

	s.ID, _ = uuid.Parse(idStr)
	s.Style = models.Style(style)
	s.Significance = models.Significance(significance)
	s.Date, _ = time.Parse(time.RFC3339, sentAt)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		s.Notes = &notes.String
	}
	return &s, nil
}
