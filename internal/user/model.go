package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBanned             = errors.New("user is banned")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
)

// User represents a registered guest or administrator.
type User struct {
	ID           string // UUID
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	IsBanned     bool
	CreatedAt    time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	IsBanned *bool // Use pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
