package models

import "time"

// User represents a user row. Passwords are stored as bcrypt hashes only.
type User struct {
	ID           string    `db:"ID"`            // ULID
	Email        string    `db:"EMAIL"`         // Unique login identifier
	Name         string    `db:"NAME"`          // Display name
	PasswordHash string    `db:"PASSWORD_HASH"` // bcrypt hash
	IsActive     int       `db:"IS_ACTIVE"`     // 0 until activation (Oracle has no boolean)
	CreatedAt    time.Time `db:"CREATED_AT"`
	UpdatedAt    time.Time `db:"UPDATED_AT"`
}
