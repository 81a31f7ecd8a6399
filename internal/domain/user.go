package domain

import (
	"net/mail"
	"strings"
	"time"
)

// User represents a registered account. Accounts start inactive and become
// active only after the one-time activation token exchange.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks structural invariants of a user entity.
func (u *User) Validate() error {
	if u.ID == "" {
		return NewInvalidInputError("user ID is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return NewInvalidInputError("email is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewInvalidInputError("email is not a valid address")
	}
	if strings.TrimSpace(u.Name) == "" {
		return NewInvalidInputError("name is required")
	}
	if u.PasswordHash == "" {
		return NewInvalidInputError("password hash is required")
	}
	return nil
}
