package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		profile_image TEXT NOT NULL DEFAULT '',
		cv_file TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		github_url TEXT NOT NULL DEFAULT '',
		linkedin_url TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS skill (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS project (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		repo_url TEXT NOT NULL DEFAULT '',
		live_url TEXT NOT NULL DEFAULT '',
		display_order INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS project_skill (
		project_id TEXT NOT NULL,
		skill_id TEXT NOT NULL,
		PRIMARY KEY (project_id, skill_id),
		FOREIGN KEY (project_id) REFERENCES project(id) ON DELETE CASCADE,
		FOREIGN KEY (skill_id) REFERENCES skill(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS experience (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		organization TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT,
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS contact_message (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		sent_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS staff_account (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		is_staff INTEGER NOT NULL DEFAULT 0,
		is_superuser INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
