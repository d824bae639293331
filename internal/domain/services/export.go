package services

import (
	"context"
	"fmt"
	"strings"

	"editorial/internal/domain/models"
)

// ExportKind is the output file kind.
type ExportKind string

const (
	ExportPDF ExportKind = "pdf"
	ExportPNG ExportKind = "png"
)

// PageSize is an ISO portrait page size for PDF export.
type PageSize string

const (
	PageA0 PageSize = "a0"
	PageA2 PageSize = "a2"
	PageA3 PageSize = "a3"
	PageA4 PageSize = "a4"
)

// ExportTarget combines the output kind with, for PDF, the page size.
type ExportTarget struct {
	Kind     ExportKind
	PageSize PageSize
}

// ParseExportTarget parses "png", "pdf-a4", "pdf-a0" and friends.
func ParseExportTarget(s string) (ExportTarget, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == string(ExportPNG) {
		return ExportTarget{Kind: ExportPNG}, nil
	}

	kind, size, ok := strings.Cut(s, "-")
	if !ok || kind != string(ExportPDF) {
		return ExportTarget{}, fmt.Errorf("unknown export target %q", s)
	}
	switch PageSize(size) {
	case PageA0, PageA2, PageA3, PageA4:
		return ExportTarget{Kind: ExportPDF, PageSize: PageSize(size)}, nil
	}
	return ExportTarget{}, fmt.Errorf("unknown page size %q", size)
}

// String renders the target back to its wire form.
func (t ExportTarget) String() string {
	if t.Kind == ExportPNG {
		return string(ExportPNG)
	}
	return fmt.Sprintf("%s-%s", t.Kind, t.PageSize)
}

// ExportFile is a finished downloadable artifact.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportService rasterizes a rendered document into a downloadable file.
// Exports are single-flight: a second call while one is outstanding fails
// with domain.ErrExportBusy.
type ExportService interface {
	Export(ctx context.Context, doc *models.EditorialDocument, settings models.LayoutSettings, target ExportTarget) (*ExportFile, error)
}

// HistoryService manages the capped list of saved-project snapshots.
type HistoryService interface {
	// Save snapshots the document and settings, keeping at most the ten most
	// recent entries, newest first.
	Save(ctx context.Context, doc *models.EditorialDocument, settings models.LayoutSettings) (*models.SavedProject, error)
	List(ctx context.Context) ([]models.SavedProject, error)
	Get(ctx context.Context, id string) (*models.SavedProject, error)
}
