package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"bhavesh/backend/internal/db"
	"bhavesh/backend/internal/model"
	"bhavesh/backend/pkg/snowflake"

	"golang.org/x/crypto/bcrypt"

	_ "modernc.org/sqlite"
)

// snowflakeOnce ensures snowflake is initialized exactly once across
// parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory sqlite database with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is not usable inside sync.Once, so panic instead.
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared cache mode keeps the in-memory database alive across
	// connections; a unique name per test avoids cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedEnquiry inserts a test enquiry and returns its ID.
func SeedEnquiry(t *testing.T, db *sql.DB, enquiry model.Enquiry) int64 {
	t.Helper()

	if enquiry.ID == 0 {
		enquiry.ID = snowflake.NextID()
	}
	if enquiry.EnquiryNumber == "" {
		enquiry.EnquiryNumber = fmt.Sprintf("BE-test-%d", enquiry.ID)
	}
	if enquiry.RequirementType == "" {
		enquiry.RequirementType = "Custom Manufacturing"
	}
	if enquiry.Status == "" {
		enquiry.Status = model.StatusNew
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO enquiries (id, enquiry_number, name, phone, email, quantity, description,
		 requirement_type, file_names, file_urls, internal_notes, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		enquiry.ID, enquiry.EnquiryNumber, enquiry.Name, enquiry.Phone,
		ptrVal(enquiry.Email), ptrVal(enquiry.Quantity), enquiry.Description,
		enquiry.RequirementType, jsonVal(t, enquiry.FileNames), jsonVal(t, enquiry.FileURLs),
		ptrVal(enquiry.InternalNotes), string(enquiry.Status), now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed enquiry: %v", err)
	}

	return enquiry.ID
}

// SeedAdmin inserts a test admin with a bcrypt hash of password and
// returns its ID.
func SeedAdmin(t *testing.T, db *sql.DB, email, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err = db.ExecContext(
		context.Background(),
		`INSERT INTO admins (id, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, email, string(hash), model.RoleAdmin, now,
	)
	if err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	return id
}

// ptrVal converts a pointer to interface{}; nil pointers stay nil.
func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

func jsonVal(t *testing.T, values []string) string {
	t.Helper()
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		t.Fatalf("failed to encode test values: %v", err)
	}
	return string(encoded)
}
