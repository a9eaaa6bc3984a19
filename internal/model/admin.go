package model

import "time"

// RoleAdmin is the only role with back-office access.
const RoleAdmin = "ADMIN"

// Admin is a back-office account.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
