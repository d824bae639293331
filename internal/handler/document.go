package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"editorial/internal/domain/models"
	"editorial/internal/domain/services"
	"editorial/internal/httputil"
	"editorial/internal/render"
)

// DocumentHandler renders and exports documents.
type DocumentHandler struct {
	exports services.ExportService
	logger  *slog.Logger
}

func NewDocumentHandler(exports services.ExportService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{exports: exports, logger: logger}
}

// documentRequest is the shared body of render and export calls: the
// document plus, optionally, layout settings. Missing settings fall back to
// the session defaults.
type documentRequest struct {
	Doc      *models.EditorialDocument `json:"doc"`
	Settings *models.LayoutSettings    `json:"settings"`
	Target   string                    `json:"target,omitempty"`
}

func (req *documentRequest) settings() models.LayoutSettings {
	if req.Settings == nil {
		return models.DefaultLayoutSettings()
	}
	return *req.Settings
}

// Render returns the document as a standalone HTML page.
// POST /api/render
func (h *DocumentHandler) Render(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil || req.Doc == nil {
		httputil.RespondError(w, http.StatusBadRequest, "Requisição inválida", "Corpo da requisição inválido.")
		return
	}
	req.Doc.Normalize()

	settings := req.settings()
	tree := render.Render(req.Doc, settings)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := render.WriteHTML(w, tree, settings); err != nil {
		h.logger.Error("write rendered document", "error", err)
	}
}

// Export rasterizes the document and streams the file back.
// POST /api/export
func (h *DocumentHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req documentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil || req.Doc == nil {
		httputil.RespondError(w, http.StatusBadRequest, "Requisição inválida", "Corpo da requisição inválido.")
		return
	}
	req.Doc.Normalize()

	target, err := services.ParseExportTarget(req.Target)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Formato inválido", "Formato de exportação desconhecido.")
		return
	}

	file, err := h.exports.Export(r.Context(), req.Doc, req.settings(), target)
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(file.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Data); err != nil {
		h.logger.Error("write export", "file", file.Name, "error", err)
	}
}
