package handler

import (
	"errors"
	"net/http"

	"editorial/internal/domain"
	"editorial/internal/httputil"
)

// handleError converts domain errors to HTTP responses. Messages are in
// the product's language; unknown errors never leak internals.
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, "Dados inválidos", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "Não encontrado", "Recurso não encontrado.")
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos.")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "Acesso negado", "Você não tem permissão para isso.")
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, "Conflito", err.Error())
	case errors.Is(err, domain.ErrExportBusy):
		httputil.RespondError(w, http.StatusConflict, "Exportação em andamento", "Aguarde a exportação atual terminar.")
	case errors.As(err, &httpErr):
		httputil.RespondError(w, httpErr.StatusCode(), "Erro", err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "Erro interno", "Erro interno do servidor.")
	}
}
