package httputil

import (
	"context"
	"net/http"

	"editorial/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const claimsKey contextKey = "claims"

// WithClaims attaches verified token claims to the request context.
func WithClaims(r *http.Request, claims *models.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsKey, claims)
	return r.WithContext(ctx)
}

// GetClaims retrieves the verified claims, or nil on unauthenticated requests.
func GetClaims(r *http.Request) *models.Claims {
	claims, _ := r.Context().Value(claimsKey).(*models.Claims)
	return claims
}
