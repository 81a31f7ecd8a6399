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

// SessionRepository defines the interface for quiz session persistence.
// Sessions are write-once; there is no update path.
type SessionRepository interface {
	CreateSession(ctx context.Context, session *models.QuizSession) error
	GetSessionByID(ctx context.Context, sessionID string) (*models.QuizSession, error)
}

type sqlxSessionRepository struct {
	db *sqlx.DB
}

// NewSQLXSessionRepository creates a new instance of sqlxSessionRepository.
func NewSQLXSessionRepository(db *sqlx.DB) SessionRepository {
	return &sqlxSessionRepository{db: db}
}

// CreateSession inserts a new quiz session with its question-set document.
func (r *sqlxSessionRepository) CreateSession(ctx context.Context, session *models.QuizSession) error {
	query := `INSERT INTO quiz_sessions (id, user_id, topic_name, question_count, difficulty, questions, created_at)
	          VALUES (:id, :user_id, :topic_name, :question_count, :difficulty, :questions, :created_at)`

	session.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create quiz session: %w", err)
	}
	return nil
}

// GetSessionByID retrieves a quiz session by its identifier. Returns
// (nil, nil) when no row matches.
func (r *sqlxSessionRepository) GetSessionByID(ctx context.Context, sessionID string) (*models.QuizSession, error) {
	var session models.QuizSession
	query := `SELECT * FROM quiz_sessions WHERE id = :id`

	stmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare query for GetSessionByID: %w", err)
	}
	defer stmt.Close()

	args := map[string]interface{}{"id": sessionID}
	if err := stmt.GetContext(ctx, &session, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz session by id: %w", err)
	}
	return &session, nil
}
