package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"quizforge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupUserTestDB creates a new sqlx.DB instance and sqlmock for user repository testing.
func setupUserTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "ora")
	return sqlxDB, mock
}

func TestSQLXUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	user := &models.User{
		ID:           "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Email:        "new@example.com",
		Name:         "New User",
		PasswordHash: "$2a$10$hash",
		IsActive:     0,
	}

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero(), "CreateUser must stamp created_at")
	assert.False(t, user.UpdatedAt.IsZero(), "CreateUser must stamp updated_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	// Unique constraint violations surface from the driver wrapped, not
	// swallowed.
	dupErr := errors.New("ORA-00001: unique constraint (QUIZFORGE.UQ_USERS_EMAIL) violated")
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(dupErr)

	err := repo.CreateUser(context.Background(), &models.User{
		ID:    "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Email: "dup@example.com",
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, dupErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByEmail_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"ID", "EMAIL", "NAME", "PASSWORD_HASH", "IS_ACTIVE", "CREATED_AT", "UPDATED_AT"}).
		AddRow("01ARZ3NDEKTSV4RRFFQ69G5FAV", "test@example.com", "Test User", "$2a$10$hash", 1, now, now)

	mock.ExpectPrepare(`SELECT \* FROM users WHERE email = :email`).
		ExpectQuery().
		WithArgs("test@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "test@example.com")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", user.ID)
	assert.Equal(t, 1, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectPrepare(`SELECT \* FROM users WHERE email = :email`).
		ExpectQuery().
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")

	assert.NoError(t, err, "no rows reads as (nil, nil)")
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByID_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"ID", "EMAIL", "NAME", "PASSWORD_HASH", "IS_ACTIVE", "CREATED_AT", "UPDATED_AT"}).
		AddRow("01ARZ3NDEKTSV4RRFFQ69G5FAV", "test@example.com", "Test User", "$2a$10$hash", 0, now, now)

	mock.ExpectPrepare(`SELECT \* FROM users WHERE id = :id`).
		ExpectQuery().
		WithArgs("01ARZ3NDEKTSV4RRFFQ69G5FAV").
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, 0, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByID_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectPrepare(`SELECT \* FROM users WHERE id = :id`).
		ExpectQuery().
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_ActivateUser_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET is_active = 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ActivateUser(context.Background(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_ActivateUser_NoRowsAffected(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET is_active = 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ActivateUser(context.Background(), "missing")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
