//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bhavesh/backend/internal/model"
)

// AdminRepository defines the interface for admin account storage.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (model.Admin, error)
	GetByID(ctx context.Context, id int64) (model.Admin, error)
}

type adminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (model.Admin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, created_at FROM admins WHERE email = ?
	`, email)
	return scanAdmin(row)
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (model.Admin, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, role, created_at FROM admins WHERE id = ?
	`, id)
	return scanAdmin(row)
}

func scanAdmin(row rowScanner) (model.Admin, error) {
	var (
		admin     model.Admin
		createdAt string
	)
	if err := row.Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Role, &createdAt); err != nil {
		return model.Admin{}, err
	}
	var err error
	if admin.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Admin{}, fmt.Errorf("parse created_at: %w", err)
	}
	return admin, nil
}
