package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/httputil"
)

type stubVerifier struct {
	claims *models.Claims
	err    error
}

func (v *stubVerifier) VerifyToken(token string) (*models.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func (v *stubVerifier) Close() error { return nil }

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httputil.GetClaims(r) == nil && !publicPaths[r.URL.Path] {
			t.Error("protected handler reached without claims")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		authHeader string
		verifier   *stubVerifier
		wantStatus int
	}{
		{
			name:       "public path without token",
			path:       "/health",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "login is public",
			path:       "/api/auth/login",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "protected path without token",
			path:       "/api/generate",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			path:       "/api/generate",
			authHeader: "Token abc",
			verifier:   &stubVerifier{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			path:       "/api/generate",
			authHeader: "Bearer expired",
			verifier:   &stubVerifier{err: domain.ErrTokenExpired},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			path:       "/api/generate",
			authHeader: "Bearer garbage",
			verifier:   &stubVerifier{err: domain.ErrTokenInvalid},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "valid token",
			path:       "/api/generate",
			authHeader: "Bearer good",
			verifier:   &stubVerifier{claims: &models.Claims{ID: 1, Email: "a@b.co"}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tt.verifier)(protectedEcho(t))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
