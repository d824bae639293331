package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"editorial/internal/httputil"
)

// Recovery turns panics into a 500 response instead of killing the process.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)

					httputil.RespondError(w, http.StatusInternalServerError,
						"Erro interno do servidor", "Algo deu errado. Tente novamente.")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
