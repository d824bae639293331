package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"editorial/internal/config"
	"editorial/internal/domain"
	"editorial/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func snapshotDoc(title string) *models.EditorialDocument {
	return &models.EditorialDocument{
		Title:          title,
		Subtitle:       "sub",
		PositionPhrase: "frase",
		Architecture:   models.Architecture{Feeling: "f", Pain: "p", Authority: "a"},
		Days:           []models.DayPlan{{Day: "Segunda", Format: "Carrossel", Theme: "t", Caption: "c"}},
		Observation:    "obs",
	}
}

func TestSaveNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryStore(), testLogger())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	svc.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Save(context.Background(), snapshotDoc(fmt.Sprintf("doc %d", i)), models.DefaultLayoutSettings()); err != nil {
			t.Fatal(err)
		}
	}

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 3 {
		t.Fatalf("got %d entries, want 3", len(projects))
	}
	if projects[0].Doc.Title != "doc 2" {
		t.Errorf("newest entry first, got %q", projects[0].Doc.Title)
	}
	if !projects[0].Timestamp.After(projects[2].Timestamp) {
		t.Error("timestamps should descend")
	}
}

func TestSaveCapsHistory(t *testing.T) {
	svc := NewService(NewMemoryStore(), testLogger())

	for i := 0; i < config.MaxHistoryEntries+3; i++ {
		if _, err := svc.Save(context.Background(), snapshotDoc(fmt.Sprintf("doc %d", i)), models.DefaultLayoutSettings()); err != nil {
			t.Fatal(err)
		}
	}

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != config.MaxHistoryEntries {
		t.Fatalf("got %d entries, want %d", len(projects), config.MaxHistoryEntries)
	}
	// The oldest saves fell off; the newest survived.
	if projects[0].Doc.Title != fmt.Sprintf("doc %d", config.MaxHistoryEntries+2) {
		t.Errorf("newest = %q", projects[0].Doc.Title)
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(NewMemoryStore(), testLogger())

	saved, err := svc.Save(context.Background(), snapshotDoc("alvo"), models.DefaultLayoutSettings())
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Fatal("saved project must get an id")
	}

	got, err := svc.Get(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Doc.Title != "alvo" {
		t.Errorf("Title = %q", got.Doc.Title)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	svc := NewService(NewMemoryStore(), testLogger())

	doc := snapshotDoc("original")
	saved, err := svc.Save(context.Background(), doc, models.DefaultLayoutSettings())
	if err != nil {
		t.Fatal(err)
	}

	doc.Title = "mutated after save"

	got, err := svc.Get(context.Background(), saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Doc.Title != "original" {
		t.Errorf("snapshot changed after the source document mutated: %q", got.Doc.Title)
	}
}
