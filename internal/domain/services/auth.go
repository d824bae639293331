package services

import (
	"context"

	"editorial/internal/domain/models"
)

// RegisterRequest carries the registration form. Field names keep the
// frontend's wire contract (senha = password, nome = display name).
type RegisterRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
	Nome  string `json:"nome,omitempty"`
}

// LoginRequest carries the login form.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// AuthResult is returned by both register and login: a signed token plus the
// public user record.
type AuthResult struct {
	Token string
	User  models.PublicUser
}

// AuthService implements registration, login, and token-holder lookup.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)

	// Verify resolves already-verified claims to the current user record,
	// failing with domain.ErrNotFound when the user no longer exists.
	Verify(ctx context.Context, claims *models.Claims) (*models.PublicUser, error)
}
