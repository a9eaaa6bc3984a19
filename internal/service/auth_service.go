//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/repository"
	"bhavesh/backend/pkg/logger"
)

// Claims is the verified identity carried by a session token.
type Claims struct {
	AdminID int64
	Email   string
	Role    string
}

// AuthService verifies back-office credentials and session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, model.Admin, error)
	ValidateToken(token string) (Claims, error)
}

type authService struct {
	admins   repository.AdminRepository
	secret   []byte
	tokenTTL time.Duration
	clock    func() time.Time
}

func NewAuthService(admins repository.AdminRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		admins:   admins,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		clock:    time.Now,
	}
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the credentials against the admins table and returns a
// signed session token. Wrong email and wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, model.Admin, error) {
	if email == "" || password == "" {
		return "", model.Admin{}, ErrUnauthorized
	}

	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", model.Admin{}, ErrUnauthorized
		}
		return "", model.Admin{}, fmt.Errorf("lookup admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", model.Admin{}, ErrUnauthorized
	}

	now := s.clock()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: admin.Email,
		Role:  admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(admin.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", model.Admin{}, fmt.Errorf("sign token: %w", err)
	}

	logger.Info("admin logged in", "email", admin.Email)
	return signed, admin, nil
}

// ValidateToken parses and verifies a session token, returning its
// claims. Any parse, signature or expiry failure is ErrUnauthorized.
func (s *authService) ValidateToken(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil || !parsed.Valid {
		return Claims{}, ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return Claims{}, ErrUnauthorized
	}

	adminID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Claims{}, ErrUnauthorized
	}

	return Claims{AdminID: adminID, Email: claims.Email, Role: claims.Role}, nil
}
