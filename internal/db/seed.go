package db

import (
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/pkg/snowflake"
)

// SeedAdmin upserts the back-office account: if an admin with the given
// email exists its password hash is refreshed, otherwise the account is
// created with the ADMIN role.
func SeedAdmin(db *sql.DB, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("seed admin: email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	result, err := db.Exec(
		`UPDATE admins SET password_hash = ? WHERE email = ?`,
		string(hash), email,
	)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update admin rows: %w", err)
	}
	if rows > 0 {
		return nil
	}

	_, err = db.Exec(
		`INSERT INTO admins (id, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		snowflake.NextID(), email, string(hash), model.RoleAdmin, now,
	)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
