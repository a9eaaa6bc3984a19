package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/repository"
	"bhavesh/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestAdminRepository_GetByEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAdminRepository(db)
	ctx := context.Background()

	id := testutil.SeedAdmin(t, db, "admin@example.com", "secret123")

	admin, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, id, admin.ID)
	require.Equal(t, model.RoleAdmin, admin.Role)
	require.NotEmpty(t, admin.PasswordHash)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAdminRepository_GetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAdminRepository(db)
	ctx := context.Background()

	id := testutil.SeedAdmin(t, db, "admin@example.com", "secret123")

	admin, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", admin.Email)

	_, err = repo.GetByID(ctx, id+1)
	require.ErrorIs(t, err, sql.ErrNoRows)
}
