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

func setupSessionTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "ora")
	return sqlxDB, mock
}

func TestSQLXSessionRepository_CreateSession_Success(t *testing.T) {
	db, mock := setupSessionTestDB(t)
	repo := NewSQLXSessionRepository(db)
	defer db.Close()

	session := &models.QuizSession{
		ID:            "01BX5ZZKBKACTAV9WEVGEMMVRZ",
		UserID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		TopicName:     "Operating Systems",
		QuestionCount: 5,
		Difficulty:    "medium",
		Questions:     `{"questions":[]}`,
	}

	mock.ExpectExec(`INSERT INTO quiz_sessions`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateSession(context.Background(), session)

	assert.NoError(t, err)
	assert.False(t, session.CreatedAt.IsZero(), "CreateSession must stamp created_at")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXSessionRepository_CreateSession_DBError(t *testing.T) {
	db, mock := setupSessionTestDB(t)
	repo := NewSQLXSessionRepository(db)
	defer db.Close()

	dbErr := errors.New("ORA-02291: integrity constraint violated - parent key not found")
	mock.ExpectExec(`INSERT INTO quiz_sessions`).WillReturnError(dbErr)

	err := repo.CreateSession(context.Background(), &models.QuizSession{
		ID:     "01BX5ZZKBKACTAV9WEVGEMMVRZ",
		UserID: "ghost",
	})

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXSessionRepository_GetSessionByID_Success(t *testing.T) {
	db, mock := setupSessionTestDB(t)
	repo := NewSQLXSessionRepository(db)
	defer db.Close()

	document := `{"questions":[{"id":1,"question":"Q?","choices":["a","b"],"correct_index":0,"related_topic":[],"hint":"","explanation":""}]}`
	rows := sqlmock.NewRows([]string{"ID", "USER_ID", "TOPIC_NAME", "QUESTION_COUNT", "DIFFICULTY", "QUESTIONS", "CREATED_AT"}).
		AddRow("01BX5ZZKBKACTAV9WEVGEMMVRZ", "01ARZ3NDEKTSV4RRFFQ69G5FAV", "Operating Systems", 5, "medium", document, time.Now())

	mock.ExpectPrepare(`SELECT \* FROM quiz_sessions WHERE id = :id`).
		ExpectQuery().
		WithArgs("01BX5ZZKBKACTAV9WEVGEMMVRZ").
		WillReturnRows(rows)

	session, err := repo.GetSessionByID(context.Background(), "01BX5ZZKBKACTAV9WEVGEMMVRZ")

	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", session.UserID)
	// Stored document comes back byte-for-byte.
	assert.Equal(t, document, session.Questions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXSessionRepository_GetSessionByID_NotFound(t *testing.T) {
	db, mock := setupSessionTestDB(t)
	repo := NewSQLXSessionRepository(db)
	defer db.Close()

	mock.ExpectPrepare(`SELECT \* FROM quiz_sessions WHERE id = :id`).
		ExpectQuery().
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	session, err := repo.GetSessionByID(context.Background(), "missing")

	assert.NoError(t, err, "no rows reads as (nil, nil)")
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}
