package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"editorial/internal/domain"
	"editorial/internal/domain/services"
	"editorial/internal/httputil"
)

// AuthHandler handles registration, login and token verification.
type AuthHandler struct {
	service services.AuthService
	logger  *slog.Logger
}

func NewAuthHandler(service services.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Register creates an account and returns a signed token.
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Requisição inválida", "Corpo da requisição inválido.")
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Usuário criado com sucesso",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Login authenticates an existing account.
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Requisição inválida", "Corpo da requisição inválido.")
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login realizado com sucesso",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Protected echoes the verified claims back to the caller. Exists so a
// frontend (or a curl) can check that its token passes the middleware.
// GET /api/protected
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)
	if claims == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "Token não fornecido", "Acesso negado. Por favor, faça login.")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Você acessou uma rota protegida!",
		"user": map[string]interface{}{
			"id":    claims.ID,
			"email": claims.Email,
		},
	})
}

// Verify resolves the bearer token to its current user record.
// GET /api/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := httputil.GetClaims(r)
	if claims == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "Token não fornecido", "Acesso negado. Por favor, faça login.")
		return
	}

	user, err := h.service.Verify(r.Context(), claims)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "Usuário não encontrado", "A conta deste token não existe mais.")
			return
		}
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
