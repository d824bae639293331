package generation

import (
	"context"
	"fmt"

	"editorial/internal/schema"

	"google.golang.org/genai"
)

// ModelClient is the outbound model call, reply constrained to the document
// schema. Abstracted so the service can be exercised without the network.
type ModelClient interface {
	// Generate sends the steering instruction and the raw user text and
	// returns the model's JSON reply verbatim.
	Generate(ctx context.Context, instruction, rawText string) (string, error)
}

// GeminiClient implements ModelClient against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed model client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate implements ModelClient. The response is constrained to the
// document schema; no repair or retry happens at this layer.
func (c *GeminiClient) Generate(ctx context.Context, instruction, rawText string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(rawText),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    schema.Document(),
		},
	)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
