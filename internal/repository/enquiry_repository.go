//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/pkg/snowflake"
)

// ErrDuplicateEnquiryNumber reports a unique-constraint violation on the
// enquiry reference. Callers regenerate the reference and retry.
var ErrDuplicateEnquiryNumber = errors.New("duplicate enquiry number")

// EnquiryRepository defines the interface for enquiry storage.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error)
	List(ctx context.Context) ([]model.Enquiry, error)
	GetByID(ctx context.Context, id int64) (model.Enquiry, error)
	UpdateStatus(ctx context.Context, id int64, status model.EnquiryStatus) error
	UpdateNotes(ctx context.Context, id int64, notes string) error
	Delete(ctx context.Context, id int64) error
}

type enquiryRepository struct {
	db *sql.DB
}

// NewEnquiryRepository creates a new enquiry repository.
func NewEnquiryRepository(db *sql.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

// Create inserts the enquiry and returns it with ID and timestamps set.
// A clash on the enquiry number surfaces as ErrDuplicateEnquiryNumber.
func (r *enquiryRepository) Create(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error) {
	enquiry.ID = snowflake.NextID()
	now := time.Now().UTC()
	enquiry.CreatedAt = now
	enquiry.UpdatedAt = now

	fileNames, err := encodeStrings(enquiry.FileNames)
	if err != nil {
		return model.Enquiry{}, fmt.Errorf("encode file names: %w", err)
	}
	fileURLs, err := encodeStrings(enquiry.FileURLs)
	if err != nil {
		return model.Enquiry{}, fmt.Errorf("encode file urls: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO enquiries (
			id, enquiry_number, name, phone, email, quantity, description,
			requirement_type, file_names, file_urls, internal_notes, status,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		enquiry.ID, enquiry.EnquiryNumber, enquiry.Name, enquiry.Phone,
		nullableString(enquiry.Email), nullableString(enquiry.Quantity),
		enquiry.Description, enquiry.RequirementType, fileNames, fileURLs,
		nullableString(enquiry.InternalNotes), string(enquiry.Status),
		formatTime(enquiry.CreatedAt), formatTime(enquiry.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err, "enquiries.enquiry_number") {
			return model.Enquiry{}, ErrDuplicateEnquiryNumber
		}
		return model.Enquiry{}, err
	}

	return enquiry, nil
}

// List retrieves all enquiries, newest first.
func (r *enquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+enquiryColumns+` FROM enquiries ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enquiries := make([]model.Enquiry, 0)
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, enquiry)
	}
	return enquiries, rows.Err()
}

// GetByID retrieves one enquiry; a missing id yields sql.ErrNoRows.
func (r *enquiryRepository) GetByID(ctx context.Context, id int64) (model.Enquiry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+enquiryColumns+` FROM enquiries WHERE id = ?
	`, id)
	return scanEnquiry(row)
}

// UpdateStatus sets the status of an existing enquiry.
func (r *enquiryRepository) UpdateStatus(ctx context.Context, id int64, status model.EnquiryStatus) error {
	return r.exec(ctx, `
		UPDATE enquiries SET status = ?, updated_at = ? WHERE id = ?
	`, string(status), formatTime(time.Now().UTC()), id)
}

// UpdateNotes sets the internal admin notes of an existing enquiry.
func (r *enquiryRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	return r.exec(ctx, `
		UPDATE enquiries SET internal_notes = ?, updated_at = ? WHERE id = ?
	`, notes, formatTime(time.Now().UTC()), id)
}

// Delete removes an enquiry permanently.
func (r *enquiryRepository) Delete(ctx context.Context, id int64) error {
	return r.exec(ctx, `DELETE FROM enquiries WHERE id = ?`, id)
}

// exec runs a statement that must affect an existing row; zero affected
// rows surfaces as sql.ErrNoRows.
func (r *enquiryRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const enquiryColumns = `id, enquiry_number, name, phone, email, quantity, description,
	requirement_type, file_names, file_urls, internal_notes, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEnquiry(row rowScanner) (model.Enquiry, error) {
	var (
		enquiry              model.Enquiry
		email, quantity      sql.NullString
		notes                sql.NullString
		fileNames, fileURLs  string
		status               string
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&enquiry.ID, &enquiry.EnquiryNumber, &enquiry.Name, &enquiry.Phone,
		&email, &quantity, &enquiry.Description, &enquiry.RequirementType,
		&fileNames, &fileURLs, &notes, &status, &createdAt, &updatedAt,
	); err != nil {
		return model.Enquiry{}, err
	}

	enquiry.Email = stringPtr(email)
	enquiry.Quantity = stringPtr(quantity)
	enquiry.InternalNotes = stringPtr(notes)
	enquiry.Status = model.EnquiryStatus(status)
	enquiry.FileNames = decodeStrings(fileNames)
	enquiry.FileURLs = decodeStrings(fileURLs)

	var err error
	if enquiry.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Enquiry{}, fmt.Errorf("parse created_at: %w", err)
	}
	if enquiry.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Enquiry{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return enquiry, nil
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// decodeStrings tolerates malformed stored JSON by returning an empty
// slice; callers always see non-nil parallel arrays.
func decodeStrings(encoded string) []string {
	values := []string{}
	if encoded == "" {
		return values
	}
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return []string{}
	}
	return values
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func isUniqueViolation(err error, constraint string) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: "+constraint)
}
