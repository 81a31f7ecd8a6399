package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"quizforge/internal/config"
	"quizforge/internal/domain"
	"quizforge/internal/dto"
	"quizforge/internal/logger"
	"quizforge/internal/repository"
	"quizforge/internal/repository/models"
	"quizforge/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService drives the registration / activation / login flow.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	Activate(ctx context.Context, uid string, token string) (message string, err error)
	Login(ctx context.Context, email string, password string) (accessToken string, err error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	userRepo   repository.UserRepository
	tokenStore domain.ActivationTokenStore
	mailer     domain.Mailer
	appConfig  *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenStore domain.ActivationTokenStore, mailer domain.Mailer, appConfig *config.Config) (AuthService, error) {
	if len(appConfig.JWT.SecretKey) < 32 {
		return nil, errors.New("jwt secret key must be at least 32 bytes long")
	}
	if appConfig.SiteBaseURL == "" {
		return nil, errors.New("site base URL is not configured")
	}
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		mailer:     mailer,
		appConfig:  appConfig,
	}, nil
}

func validateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, domain.NewMissingFieldError("name"))
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs = append(errs, domain.NewInvalidFormatError("email", req.Email))
	}
	if req.Password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}
	if req.ConfirmPassword == "" {
		errs = append(errs, domain.NewMissingFieldError("confirm_password"))
	} else if req.Password != "" && req.Password != req.ConfirmPassword {
		errs = append(errs, domain.NewFieldError("confirm_password", "Passwords do not match"))
	}

	return errs
}

// Register creates an inactive account, stores a one-time activation token
// and mails the activation link. Validation failures happen before any
// account is created.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) error {
	appLogger := logger.Get()

	if errs := validateRegisterRequest(req); len(errs) > 0 {
		return errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalError("failed to hash password", err)
	}

	account := &domain.User{
		ID:           util.NewULID(),
		Email:        strings.TrimSpace(req.Email),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
	}
	if err := account.Validate(); err != nil {
		return err
	}

	user := &models.User{
		ID:           account.ID,
		Email:        account.Email,
		Name:         account.Name,
		PasswordHash: account.PasswordHash,
		IsActive:     0,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return domain.NewInternalError("failed to create user", err)
	}

	token := util.NewULID()
	if err := s.tokenStore.Put(ctx, user.ID, token); err != nil {
		return domain.NewInternalError("failed to store activation token", err)
	}

	uid := base64.RawURLEncoding.EncodeToString([]byte(user.ID))
	activationURL := fmt.Sprintf("%s/signup/activate?uid=%s&token=%s", s.appConfig.SiteBaseURL, uid, token)

	body := fmt.Sprintf("Click the link to activate your account:\n\n%s", activationURL)
	if err := s.mailer.Send(user.Email, "Activate your account", body); err != nil {
		appLogger.Error("Activation email dispatch failed", zap.Error(err), zap.String("user_id", user.ID))
		return domain.NewEmailDeliveryError(err)
	}

	appLogger.Info("User registered, activation email sent", zap.String("user_id", user.ID))
	return nil
}

// Activate exchanges the activation link's uid/token pair for an active
// account. Activating an already-active account is idempotent and does not
// re-validate the token.
func (s *authServiceImpl) Activate(ctx context.Context, uid string, token string) (string, error) {
	var errs domain.ValidationErrors
	if uid == "" {
		errs = append(errs, domain.NewMissingFieldError("uid"))
	}
	if token == "" {
		errs = append(errs, domain.NewMissingFieldError("token"))
	}
	if len(errs) > 0 {
		return "", errs
	}

	decoded, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return "", domain.NewInvalidTokenError()
	}
	userID := string(decoded)

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return "", domain.NewUserNotFoundError()
	}

	if user.IsActive != 0 {
		return "Account already activated", nil
	}

	ok, err := s.tokenStore.Consume(ctx, userID, token)
	if err != nil {
		return "", domain.NewInternalError("failed to check activation token", err)
	}
	if !ok {
		return "", domain.NewInvalidTokenError()
	}

	if err := s.userRepo.ActivateUser(ctx, userID); err != nil {
		return "", domain.NewInternalError("failed to activate user", err)
	}

	logger.Get().Info("Account activated", zap.String("user_id", userID))
	return "Account activated successfully", nil
}

// Login authenticates by email and password and issues an access token.
// An unknown email is reported as not-found, a bad password as
// unauthorized.
func (s *authServiceImpl) Login(ctx context.Context, email string, password string) (string, error) {
	var errs domain.ValidationErrors
	if strings.TrimSpace(email) == "" {
		errs = append(errs, domain.NewMissingFieldError("email"))
	}
	if password == "" {
		errs = append(errs, domain.NewMissingFieldError("password"))
	}
	if len(errs) > 0 {
		return "", errs
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return "", domain.NewUserNotFoundError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.NewUnauthorizedError("Email or password incorrect")
	}
	if user.IsActive == 0 {
		return "", domain.NewUnauthorizedError("Account is not activated")
	}

	token, err := s.createJWT(user.ID, s.appConfig.JWT.AccessTokenTTL)
	if err != nil {
		return "", domain.NewInternalError("failed to create access token", err)
	}

	logger.Get().Info("User logged in", zap.String("user_id", user.ID))
	return token, nil
}

func (s *authServiceImpl) createJWT(userID string, ttl time.Duration) (string, error) {
	claims := dto.AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}
