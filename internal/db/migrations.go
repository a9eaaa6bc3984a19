package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS enquiries (
  id INTEGER PRIMARY KEY,
  enquiry_number TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT,
  quantity TEXT,
  description TEXT NOT NULL,
  requirement_type TEXT NOT NULL,
  file_names TEXT NOT NULL DEFAULT '[]',
  file_urls TEXT NOT NULL DEFAULT '[]',
  internal_notes TEXT,
  status TEXT NOT NULL DEFAULT 'NEW',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_enquiries_status ON enquiries(status);
CREATE INDEX IF NOT EXISTS idx_enquiries_created_at ON enquiries(created_at);

CREATE TABLE IF NOT EXISTS admins (
  id INTEGER PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'ADMIN',
  created_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	// Run base schema first
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	// Run incremental migrations
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add internal_notes column for databases created before
	// the admin notes feature existed.
	exists, err := hasColumn(db, "enquiries", "internal_notes")
	if err != nil {
		return fmt.Errorf("check internal_notes column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE enquiries ADD COLUMN internal_notes TEXT`); err != nil {
			return fmt.Errorf("add internal_notes column: %w", err)
		}
	}

	// Migration 2: Unique index on enquiry_number (safe to run if it exists).
	// The insert path relies on this constraint to detect reference collisions.
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_enquiries_number ON enquiries(enquiry_number)`); err != nil {
		return fmt.Errorf("create idx_enquiries_number: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
