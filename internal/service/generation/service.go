package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"editorial/internal/config"
	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// service implements the GenerationService interface.
type service struct {
	client ModelClient
	logger *slog.Logger
}

// NewService creates a generation service over the given model client.
func NewService(client ModelClient, logger *slog.Logger) services.GenerationService {
	return &service{client: client, logger: logger}
}

// Generate builds the steering instruction, submits the raw text, and parses
// and validates the reply. Every failure is terminal for this call; the user
// re-triggers explicitly.
func (s *service) Generate(ctx context.Context, req *services.GenerateRequest) (*models.EditorialDocument, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	instruction := BuildInstruction(req)

	raw, err := s.client.Generate(ctx, instruction, req.RawText)
	if err != nil {
		return nil, &domain.GenerationError{Stage: "transport", Message: "model call failed", Err: err}
	}
	if strings.TrimSpace(raw) == "" {
		return nil, &domain.GenerationError{Stage: "empty", Message: "model returned empty content"}
	}

	var doc models.EditorialDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &domain.GenerationError{Stage: "parse", Message: "reply does not match the document schema", Err: err}
	}

	expectSeven := len(req.Days) == 0
	if err := validateDocument(&doc, expectSeven); err != nil {
		return nil, &domain.GenerationError{Stage: "contract", Message: err.Error()}
	}

	doc.Normalize()

	s.logger.Info("document generated",
		"mode", req.Mode,
		"days", len(doc.Days),
		"immersion", doc.Immersion != nil,
	)

	return &doc, nil
}

func (s *service) validateRequest(req *services.GenerateRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.RawText,
			validation.Required,
			validation.Length(1, config.MaxRawTextLength),
		),
		validation.Field(&req.StyleReference,
			validation.Length(0, config.MaxStyleReferenceLength),
		),
		validation.Field(&req.Mode,
			validation.Required,
			validation.In(services.ModeGenerative, services.ModeStructural),
		),
	)
}
