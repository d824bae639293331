package handler

import (
	"log/slog"
	"net/http"

	"editorial/internal/domain/services"
	"editorial/internal/httputil"
)

// GenerationHandler turns raw strategic text into a structured document.
type GenerationHandler struct {
	service services.GenerationService
	logger  *slog.Logger
}

func NewGenerationHandler(service services.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{service: service, logger: logger}
}

// Generate runs one generation call.
// POST /api/generate
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.GenerateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Requisição inválida", "Corpo da requisição inválido.")
		return
	}
	if req.Mode == "" {
		req.Mode = services.ModeGenerative
	}

	doc, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, doc)
}
