package dto

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ActivateRequest carries the opaque encoded user id and the one-time token
// embedded in the activation link.
type ActivateRequest struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

// LoginRequest is the request body for email/password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
