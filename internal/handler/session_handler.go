package handler

import (
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/middleware"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes quiz generation and retrieval endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Generate handles POST /api/generate. Requires authentication; returns only
// the new session identifier.
func (h *SessionHandler) Generate(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.sessionService.Generate(c.Context(), userID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetQuiz handles GET /api/quiz/:sessionId. Returns the stored question-set
// document verbatim; unknown or foreign sessions read as not-found.
func (h *SessionHandler) GetQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return domain.NewUnauthorizedError("Authentication required")
	}

	sessionID := c.Params("sessionId")
	if sessionID == "" {
		return domain.NewInvalidInputError("sessionId is required")
	}

	resp, err := h.sessionService.GetQuiz(c.Context(), userID, sessionID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
