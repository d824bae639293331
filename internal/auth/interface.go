package auth

import "editorial/internal/domain/models"

// TokenVerifier validates bearer tokens. Two implementations exist: the
// local HS256 verifier (shared secret, the default) and a JWKS-backed
// verifier for deployments that delegate signing to an identity provider.
type TokenVerifier interface {
	// VerifyToken validates a JWT string and returns its claims. Expired
	// tokens fail with domain.ErrTokenExpired; anything else malformed or
	// badly signed fails with domain.ErrTokenInvalid.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
