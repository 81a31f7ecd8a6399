package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quizforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// UserRepository defines the interface for user data operations.
// Lookups return (nil, nil) when no row matches; services translate that
// into their own not-found errors.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	ActivateUser(ctx context.Context, userID string) error
}

// sqlxUserRepository implements UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) UserRepository {
	return &sqlxUserRepository{db: db}
}

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, email, name, password_hash, is_active, created_at, updated_at)
	          VALUES (:id, :email, :name, :password_hash, :is_active, :created_at, :updated_at)`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email address.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE email = :email`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetUserByEmail: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{"email": email}
	if err := stmt.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetUserByID: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{"id": userID}
	if err := stmt.GetContext(ctx, &user, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// ActivateUser flips the active flag for a user.
func (r *sqlxUserRepository) ActivateUser(ctx context.Context, userID string) error {
	query := `UPDATE users SET is_active = 1, updated_at = :updated_at WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":         userID,
		"updated_at": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
