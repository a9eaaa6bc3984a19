package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/service"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	byEmail map[string]model.Admin
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (model.Admin, error) {
	admin, ok := r.byEmail[email]
	if !ok {
		return model.Admin{}, sql.ErrNoRows
	}
	return admin, nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int64) (model.Admin, error) {
	for _, admin := range r.byEmail {
		if admin.ID == id {
			return admin, nil
		}
	}
	return model.Admin{}, sql.ErrNoRows
}

func newAdminRepo(t *testing.T, email, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeAdminRepo{byEmail: map[string]model.Admin{
		email: {ID: 7, Email: email, PasswordHash: string(hash), Role: model.RoleAdmin},
	}}
}

func TestLogin_Success(t *testing.T) {
	repo := newAdminRepo(t, "admin@example.com", "s3cret")
	svc := service.NewAuthService(repo, "test-secret", time.Hour)

	token, admin, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, int64(7), admin.ID)
	require.Equal(t, model.RoleAdmin, admin.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newAdminRepo(t, "admin@example.com", "s3cret")
	svc := service.NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := newAdminRepo(t, "admin@example.com", "s3cret")
	svc := service.NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := service.NewAuthService(&fakeAdminRepo{}, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "", "")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	repo := newAdminRepo(t, "admin@example.com", "s3cret")
	svc := service.NewAuthService(repo, "test-secret", time.Hour)

	token, _, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.AdminID)
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, model.RoleAdmin, claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	repo := newAdminRepo(t, "admin@example.com", "s3cret")
	issuer := service.NewAuthService(repo, "issuer-secret", time.Hour)
	verifier := service.NewAuthService(repo, "other-secret", time.Hour)

	token, _, err := issuer.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestValidateToken_Expired(t *testing.T) {
	repo := newAdminRepo(t, "admin@example.com", "s3cret")
	svc := service.NewAuthService(repo, "test-secret", -time.Minute)

	token, _, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(&fakeAdminRepo{}, "test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.jwt")
	require.ErrorIs(t, err, service.ErrUnauthorized)
}
