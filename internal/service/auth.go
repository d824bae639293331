package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"editorial/internal/auth"
	"editorial/internal/config"
	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/repositories"
	"editorial/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// authService implements the AuthService interface.
type authService struct {
	users  repositories.UserRepository
	tokens *auth.TokenService
	logger *slog.Logger
}

// NewAuthService creates the auth service.
func NewAuthService(users repositories.UserRepository, tokens *auth.TokenService, logger *slog.Logger) services.AuthService {
	return &authService{users: users, tokens: tokens, logger: logger}
}

// Register creates a user and signs a token for it. A duplicate email fails
// with a conflict; previously issued tokens stay valid.
func (s *authService) Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResult, error) {
	if err := s.validateRegisterRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		SenhaHash: string(hash),
		Nome:      strings.TrimSpace(req.Nome),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user registered", "id", user.ID, "email", user.Email)

	return &services.AuthResult{Token: token, User: user.Public()}, nil
}

// Login verifies the credentials and signs a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResult, error) {
	if err := s.validateLoginRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(req.Senha)) != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", "id", user.ID)

	return &services.AuthResult{Token: token, User: user.Public()}, nil
}

// Verify resolves verified claims to the current user record.
func (s *authService) Verify(ctx context.Context, claims *models.Claims) (*models.PublicUser, error) {
	user, err := s.users.GetByID(ctx, claims.ID)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

func (s *authService) validateRegisterRequest(req *services.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email,
			validation.Required,
			validation.Length(1, config.MaxEmailLength),
			validation.Match(emailPattern).Error("must be a valid email"),
		),
		validation.Field(&req.Senha,
			validation.Required,
			validation.Length(config.MinPasswordLength, 0),
		),
	)
}

func (s *authService) validateLoginRequest(req *services.LoginRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Senha, validation.Required),
	)
}
