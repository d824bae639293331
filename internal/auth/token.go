package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"editorial/internal/config"
	"editorial/internal/domain"
	"editorial/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies HS256 tokens signed with a server-side
// secret. Tokens carry {id, email} and expire after seven days.
type TokenService struct {
	secret []byte
	logger *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewTokenService creates a token service for the given signing secret.
func NewTokenService(secret string, logger *slog.Logger) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &TokenService{
		secret: []byte(secret),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the given user.
func (s *TokenService) Issue(user *models.User) (string, error) {
	now := s.now()
	claims := &models.Claims{
		ID:    user.ID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.TokenTTLDays * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken implements TokenVerifier.
func (s *TokenService) VerifyToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Pin the algorithm: anything but HS256 is rejected outright.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if claims.ID == 0 {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}

// Close implements TokenVerifier. The local verifier holds no resources.
func (s *TokenService) Close() error { return nil }
