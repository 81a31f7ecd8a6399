package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"

	"go.uber.org/zap"
)

const maxQuestionsPerSession = 100

// SessionService generates quiz sessions and reads them back.
type SessionService interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	GetQuiz(ctx context.Context, userID string, sessionID string) (*dto.QuizResponse, error)
}

type sessionServiceImpl struct {
	sessionRepo repository.SessionRepository
	generator   domain.QuizGenerator
}

// NewSessionService creates a new instance of SessionService.
func NewSessionService(sessionRepo repository.SessionRepository, generator domain.QuizGenerator) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		generator:   generator,
	}
}

func validateGenerateRequest(req *dto.GenerateRequest) (domain.Difficulty, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.TopicName) == "" {
		errs = append(errs, domain.NewMissingFieldError("topicName"))
	}

	var difficulty domain.Difficulty
	if req.DifficultyLevel == "" {
		errs = append(errs, domain.NewMissingFieldError("difficultyLevel"))
	} else {
		var ok bool
		difficulty, ok = domain.ParseDifficulty(req.DifficultyLevel)
		if !ok {
			errs = append(errs, domain.NewInvalidFormatError("difficultyLevel", req.DifficultyLevel))
		}
	}

	if req.NoOfQuestions == 0 {
		errs = append(errs, domain.NewMissingFieldError("noOfQuestions"))
	} else if req.NoOfQuestions < 0 || req.NoOfQuestions > maxQuestionsPerSession {
		errs = append(errs, domain.NewOutOfRangeError("noOfQuestions", req.NoOfQuestions, 1, maxQuestionsPerSession))
	}

	return difficulty, errs
}

// Generate invokes the model and persists exactly one immutable session on
// success. A failed invocation surfaces as an internal error and creates no
// session; an unparseable payload degrades to a raw-text wrapper, matching
// the provider-response policy.
func (s *sessionServiceImpl) Generate(ctx context.Context, userID string, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	appLogger := logger.Get()

	difficulty, errs := validateGenerateRequest(req)
	if len(errs) > 0 {
		return nil, errs
	}

	result := s.generator.Generate(ctx, req.TopicName, req.NoOfQuestions, difficulty)

	var document json.RawMessage
	switch result.Kind {
	case domain.GenerationParsed:
		document = result.Document
	case domain.GenerationRawText:
		appLogger.Warn("Model returned unparseable payload, storing raw wrapper",
			zap.String("topic", req.TopicName))
		wrapped, err := json.Marshal(map[string]string{"raw": result.Raw})
		if err != nil {
			return nil, domain.NewInternalError("failed to wrap raw model output", err)
		}
		document = wrapped
	case domain.GenerationFailed:
		return nil, domain.NewLLMServiceError(errors.New(result.Reason))
	default:
		return nil, domain.NewInternalError("unknown generation result kind", nil)
	}

	entity := &domain.QuizSession{
		ID:            util.NewULID(),
		UserID:        userID,
		TopicName:     req.TopicName,
		QuestionCount: req.NoOfQuestions,
		Difficulty:    difficulty,
		Questions:     document,
	}
	if err := entity.Validate(); err != nil {
		return nil, err
	}

	session := &models.QuizSession{
		ID:            entity.ID,
		UserID:        entity.UserID,
		TopicName:     entity.TopicName,
		QuestionCount: entity.QuestionCount,
		Difficulty:    string(entity.Difficulty),
		Questions:     string(entity.Questions),
	}
	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, domain.NewInternalError("failed to persist quiz session", err)
	}

	appLogger.Info("Quiz session created",
		zap.String("session_id", session.ID),
		zap.String("user_id", userID),
		zap.String("topic", req.TopicName),
		zap.Int("question_count", req.NoOfQuestions),
	)
	return &dto.GenerateResponse{SessionID: session.ID}, nil
}

// GetQuiz returns the stored question-set document verbatim. Sessions owned
// by other users read as not-found so ids cannot be probed.
func (s *sessionServiceImpl) GetQuiz(ctx context.Context, userID string, sessionID string) (*dto.QuizResponse, error) {
	session, err := s.sessionRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load quiz session", err)
	}
	if session == nil || session.UserID != userID {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	return &dto.QuizResponse{QuestionsSet: json.RawMessage(session.Questions)}, nil
}
