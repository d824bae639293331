package middleware

import (
	"errors"
	"net/http"
	"strings"

	"editorial/internal/auth"
	"editorial/internal/domain"
	"editorial/internal/httputil"
)

// publicPaths are reachable without a bearer token.
var publicPaths = map[string]bool{
	"/health":            true,
	"/api/auth/register": true,
	"/api/auth/login":    true,
}

// AuthMiddleware extracts and verifies the bearer token on protected routes,
// attaching the claims to the request context. Status codes follow the auth
// contract: 401 for a missing or expired token, 403 for an invalid one.
func AuthMiddleware(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				httputil.RespondError(w, http.StatusUnauthorized,
					"Token não fornecido", "Acesso negado. Por favor, faça login.")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					httputil.RespondError(w, http.StatusUnauthorized,
						"Token expirado", "Sua sessão expirou. Por favor, faça login novamente.")
					return
				}
				httputil.RespondError(w, http.StatusForbidden,
					"Token inválido", "Token de autenticação inválido.")
				return
			}

			next.ServeHTTP(w, httputil.WithClaims(r, claims))
		})
	}
}

// bearerToken pulls the token out of "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
