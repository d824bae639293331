package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface lets handlers translate domain failures
// without enumerating every concrete type.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// ErrTokenExpired distinguishes an expired bearer token (401) from a
	// malformed or badly signed one (403, ErrTokenInvalid).
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// ErrExportBusy signals that an export is already in flight. Exports are
	// single-flight: no queuing, no cancellation.
	ErrExportBusy = errors.New("export already in progress")
)

// GenerationError is terminal for the triggering call: transport failure,
// empty model response, or a response that does not satisfy the document
// contract. It is surfaced to the user as a retryable condition and never
// retried automatically.
type GenerationError struct {
	Stage   string // "transport", "empty", "parse", "contract"
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation %s: %s: %v", e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("generation %s: %s", e.Stage, e.Message)
}

func (e *GenerationError) Unwrap() error   { return e.Err }
func (e *GenerationError) StatusCode() int { return http.StatusBadGateway }

// ExportError covers rasterization and file-assembly failures. Partial files
// are never surfaced; the caller may re-trigger the export.
type ExportError struct {
	Target  string
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("export %s: %s: %v", e.Target, e.Message, e.Err)
	}
	return fmt.Sprintf("export %s: %s", e.Target, e.Message)
}

func (e *ExportError) Unwrap() error   { return e.Err }
func (e *ExportError) StatusCode() int { return http.StatusInternalServerError }

// ConflictError carries details about the existing resource on a 409.
type ConflictError struct {
	Message      string
	ResourceType string
	ResourceID   string
}

func (e *ConflictError) Error() string   { return e.Message }
func (e *ConflictError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
