package services

import (
	"context"

	"editorial/internal/domain/models"
)

// WorkflowMode selects how the model treats the raw input.
type WorkflowMode string

const (
	// ModeGenerative expands sparse input into a full invented strategy.
	ModeGenerative WorkflowMode = "generative"
	// ModeStructural reorganizes already-complete text faithfully,
	// inventing nothing.
	ModeStructural WorkflowMode = "structural"
)

// GenerateRequest is the input to a single generation call.
type GenerateRequest struct {
	RawText        string       `json:"rawText"`
	StyleReference string       `json:"styleReference,omitempty"`
	Mode           WorkflowMode `json:"mode"`

	// Days optionally names an explicit day subset. When empty, the contract
	// requires a full Monday-to-Sunday calendar and the result is validated
	// against exactly seven days.
	Days []string `json:"days,omitempty"`
}

// GenerationService turns raw strategic text into a validated, normalized
// EditorialDocument. Failures are domain.GenerationError values; calls are
// never retried automatically.
type GenerationService interface {
	Generate(ctx context.Context, req *GenerateRequest) (*models.EditorialDocument, error)
}
