package handler

import (
	"net/http"

	"editorial/internal/httputil"
)

// Health answers the unauthenticated liveness probe.
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Servidor rodando",
	})
}
