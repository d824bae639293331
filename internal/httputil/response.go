package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error response shape used across the whole API:
// a short error code plus a human-readable message (kept in the product's
// language, Brazilian Portuguese, as the frontend displays it verbatim).
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RespondJSON writes a JSON response with the given status code. The payload
// is marshaled before any header is written so an encoding failure can still
// produce a clean 500 instead of a truncated body.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "Erro interno", "Falha ao codificar a resposta.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes an {error, message} response with the given status.
func RespondError(w http.ResponseWriter, status int, errCode, message string) {
	payload, err := json.Marshal(ErrorBody{Error: errCode, Message: message})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
