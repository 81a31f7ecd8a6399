package handler

import (
	"time"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler exposes registration, activation and login endpoints.
type AuthHandler struct {
	authService service.AuthService
	appConfig   *config.Config
}

func NewAuthHandler(authService service.AuthService, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		appConfig:   appConfig,
	}
}

// CSRFCookie seeds the CSRF cookie for browser clients. The csrf middleware
// attached to this route does the actual work; the handler just confirms.
func (h *AuthHandler) CSRFCookie(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "CSRF cookie set"})
}

// Register creates an inactive account and dispatches the activation email.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	if err := h.authService.Register(c.Context(), &req); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{
		Message: "User created. Check your email to activate your account.",
	})
}

// Activate exchanges the activation link parameters for an active account.
// Re-activating an active account succeeds idempotently.
func (h *AuthHandler) Activate(c *fiber.Ctx) error {
	var req dto.ActivateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	message, err := h.authService.Activate(c.Context(), req.UID, req.Token)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: message})
}

// Login authenticates the user and sets the access token cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	token, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.appConfig.JWT.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.appConfig.JWT.AccessTokenTTL),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Logged in successfully."})
}

// Logout clears the access token cookie. Token invalidation is client-side;
// there is no server-side blacklist, and an expired session can still log out.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.appConfig.JWT.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
