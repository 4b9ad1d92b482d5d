// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for sends, sessions, meal logs, and the profile.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sends (
		id TEXT PRIMARY KEY,
		grade TEXT NOT NULL,
		sent_at DATETIME NOT NULL,
		style TEXT NOT NULL,
		significance TEXT NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		session_date DATETIME NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		session_type TEXT NOT NULL,
		grades_attempted TEXT NOT NULL DEFAULT '[]',
		grades_completed TEXT NOT NULL DEFAULT '[]',
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meal_logs (
		id TEXT PRIMARY KEY,
		logged_at DATETIME NOT NULL,
		calories REAL NOT NULL,
		protein_g REAL NOT NULL,
		carbs_g REAL NOT NULL,
		fat_g REAL NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		weight_lb REAL NOT NULL,
		target_weight_lb REAL NOT NULL DEFAULT 0,
		height_in REAL NOT NULL,
		age INTEGER NOT NULL,
		sex TEXT NOT NULL,
		activity_level TEXT NOT NULL,
		goal TEXT NOT NULL,
		dietary_restrictions TEXT NOT NULL DEFAULT '[]',
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_sends_sent ON sends(sent_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sends_style ON sends(style, sent_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(session_date DESC);
	CREATE INDEX IF NOT EXISTS idx_meal_logs_logged ON meal_logs(logged_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
