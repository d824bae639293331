package generation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/services"
)

type fakeClient struct {
	reply       string
	err         error
	instruction string
}

func (c *fakeClient) Generate(ctx context.Context, instruction, rawText string) (string, error) {
	c.instruction = instruction
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validReply(t *testing.T, days int) string {
	t.Helper()

	doc := models.EditorialDocument{
		Title:          "Plano",
		Subtitle:       "Sub",
		PositionPhrase: "Frase",
		Architecture:   models.Architecture{Feeling: "f", Pain: "p", Authority: "a"},
		Observation:    "obs",
	}
	names := []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}
	for i := 0; i < days; i++ {
		doc.Days = append(doc.Days, models.DayPlan{
			Day:     names[i%len(names)],
			Format:  "Carrossel",
			Theme:   "Tema",
			Caption: "Legenda",
			CarouselSlides: []models.CarouselSlide{
				{SlideNumber: 1, TextOnCard: "Texto"},
			},
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func generateRequest() *services.GenerateRequest {
	return &services.GenerateRequest{
		RawText: "Texto estratégico bruto.",
		Mode:    services.ModeGenerative,
	}
}

func TestGenerateSevenDayCalendar(t *testing.T) {
	client := &fakeClient{reply: validReply(t, 7)}
	svc := NewService(client, testLogger())

	doc, err := svc.Generate(context.Background(), generateRequest())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(doc.Days) != 7 {
		t.Errorf("got %d days, want 7", len(doc.Days))
	}
	for i := range doc.Days {
		if doc.Days[i].Content.Kind == "" {
			t.Errorf("day %d: content not resolved", i)
		}
	}
}

func TestGenerateRejectsShortCalendar(t *testing.T) {
	client := &fakeClient{reply: validReply(t, 5)}
	svc := NewService(client, testLogger())

	_, err := svc.Generate(context.Background(), generateRequest())
	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "contract" {
		t.Fatalf("want contract GenerationError, got %v", err)
	}
}

func TestGenerateDaySubsetSkipsSevenDayCheck(t *testing.T) {
	client := &fakeClient{reply: validReply(t, 2)}
	svc := NewService(client, testLogger())

	req := generateRequest()
	req.Days = []string{"Segunda", "Quarta"}

	doc, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(doc.Days) != 2 {
		t.Errorf("got %d days, want 2", len(doc.Days))
	}
	if !strings.Contains(client.instruction, "DIAS SOLICITADOS") {
		t.Error("instruction should name the requested days")
	}
}

func TestGenerateFailureStages(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
		stage  string
	}{
		{"transport failure", &fakeClient{err: errors.New("connection reset")}, "transport"},
		{"empty reply", &fakeClient{reply: "   "}, "empty"},
		{"malformed json", &fakeClient{reply: "{not json"}, "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.client, testLogger())
			_, err := svc.Generate(context.Background(), generateRequest())
			var genErr *domain.GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("want GenerationError, got %v", err)
			}
			if genErr.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", genErr.Stage, tt.stage)
			}
		})
	}
}

func TestGenerateVideoDayRequiresScript(t *testing.T) {
	doc := models.EditorialDocument{
		Title:          "Plano",
		Subtitle:       "Sub",
		PositionPhrase: "Frase",
		Architecture:   models.Architecture{Feeling: "f", Pain: "p", Authority: "a"},
		Observation:    "obs",
	}
	for i := 0; i < 7; i++ {
		doc.Days = append(doc.Days, models.DayPlan{
			Day: "Dia", Format: "Reels", Theme: "Tema", Caption: "Legenda",
		})
	}
	data, _ := json.Marshal(doc)

	svc := NewService(&fakeClient{reply: string(data)}, testLogger())
	_, err := svc.Generate(context.Background(), generateRequest())

	var genErr *domain.GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "contract" {
		t.Fatalf("video day without script must fail the contract, got %v", err)
	}
}

func TestGenerateRequestValidation(t *testing.T) {
	svc := NewService(&fakeClient{reply: validReply(t, 7)}, testLogger())

	tests := []struct {
		name string
		req  *services.GenerateRequest
	}{
		{"empty raw text", &services.GenerateRequest{Mode: services.ModeGenerative}},
		{"oversized raw text", &services.GenerateRequest{RawText: strings.Repeat("x", 20001), Mode: services.ModeGenerative}},
		{"unknown mode", &services.GenerateRequest{RawText: "ok", Mode: "poetic"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("want ErrValidation, got %v", err)
			}
		})
	}
}
