package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"editorial/internal/domain"
	"editorial/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// JWKSVerifier validates tokens against a remote JWKS endpoint. Used when an
// external identity provider signs the tokens; the local TokenService stays
// in charge of issuing otherwise.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewJWKSVerifier creates a verifier that fetches public keys from jwksURL.
// Keys are cached and refreshed by the keyfunc client based on HTTP cache
// headers.
func NewJWKSVerifier(jwksURL string, logger *slog.Logger) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("create JWKS client: %w", err)
	}

	logger.Info("JWKS verifier initialized", "jwks_url", jwksURL)

	return &JWKSVerifier{jwks: jwks, logger: logger}, nil
}

// VerifyToken implements TokenVerifier.
func (v *JWKSVerifier) VerifyToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, v.jwks.Keyfunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	// Prevent algorithm confusion attacks - allow only asymmetric signatures here.
	switch token.Method.Alg() {
	case "RS256", "ES256":
	default:
		v.logger.Warn("token uses unexpected algorithm", "algorithm", token.Method.Alg())
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || claims.ID == 0 {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}

// Close implements TokenVerifier. keyfunc manages its own refresh lifecycle.
func (v *JWKSVerifier) Close() error {
	v.logger.Info("JWKS verifier closed")
	return nil
}
