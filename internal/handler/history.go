package handler

import (
	"log/slog"
	"net/http"

	"editorial/internal/domain/models"
	"editorial/internal/domain/services"
	"editorial/internal/httputil"
)

// HistoryHandler exposes the saved-project snapshot list.
type HistoryHandler struct {
	service services.HistoryService
	logger  *slog.Logger
}

func NewHistoryHandler(service services.HistoryService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{service: service, logger: logger}
}

// Save snapshots a document with its settings.
// POST /api/projects
func (h *HistoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Doc      *models.EditorialDocument `json:"doc"`
		Settings *models.LayoutSettings    `json:"settings"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil || req.Doc == nil {
		httputil.RespondError(w, http.StatusBadRequest, "Requisição inválida", "Corpo da requisição inválido.")
		return
	}

	settings := models.DefaultLayoutSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	project, err := h.service.Save(r.Context(), req.Doc, settings)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// List returns every snapshot, newest first.
// GET /api/projects
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	if projects == nil {
		projects = []models.SavedProject{}
	}
	httputil.RespondJSON(w, http.StatusOK, projects)
}

// Get returns one snapshot by id.
// GET /api/projects/{id}
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, project)
}
