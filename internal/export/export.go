// Package export turns a rendered document into downloadable PDF or PNG
// bytes via a headless browser.
package export

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"editorial/internal/domain"
	"editorial/internal/domain/models"
	"editorial/internal/domain/services"
	"editorial/internal/render"
)

// settleDelay gives web fonts and layout time to finish before capture.
const settleDelay = 800 * time.Millisecond

// PageSpec pins the capture geometry for one page size. WidthPx is the CSS
// pixel width the root element is locked to; Scale is the device scale
// factor of the capture; the paper dimensions are ISO portrait inches.
type PageSpec struct {
	Size          services.PageSize
	WidthPx       int
	Scale         float64
	PaperWidthIn  float64
	PaperHeightIn float64
}

// A0 uses a reduced scale so the raster stays under the browser's texture
// limits at its much larger pixel width.
var pageSpecs = map[services.PageSize]PageSpec{
	services.PageA4: {Size: services.PageA4, WidthPx: render.WidthA4, Scale: 2, PaperWidthIn: 8.27, PaperHeightIn: 11.69},
	services.PageA3: {Size: services.PageA3, WidthPx: render.WidthA3, Scale: 2, PaperWidthIn: 11.69, PaperHeightIn: 16.54},
	services.PageA2: {Size: services.PageA2, WidthPx: render.WidthA2, Scale: 2, PaperWidthIn: 16.54, PaperHeightIn: 23.39},
	services.PageA0: {Size: services.PageA0, WidthPx: render.WidthA0, Scale: 1.5, PaperWidthIn: 33.11, PaperHeightIn: 46.81},
}

// Rasterizer captures a standalone HTML page as a finished artifact.
type Rasterizer interface {
	PDF(ctx context.Context, html string, spec PageSpec) ([]byte, error)
	PNG(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// Service implements services.ExportService on top of a Rasterizer.
// Captures are expensive, so only one runs at a time.
type Service struct {
	rasterizer Rasterizer
	logger     *slog.Logger

	mu sync.Mutex
}

func NewService(rasterizer Rasterizer, logger *slog.Logger) *Service {
	return &Service{rasterizer: rasterizer, logger: logger}
}

func (s *Service) Export(ctx context.Context, doc *models.EditorialDocument, settings models.LayoutSettings, target services.ExportTarget) (*services.ExportFile, error) {
	if !s.mu.TryLock() {
		return nil, domain.ErrExportBusy
	}
	defer s.mu.Unlock()

	start := time.Now()

	tree := render.Render(doc, settings)
	var page strings.Builder
	if err := render.WriteHTML(&page, tree, settings); err != nil {
		return nil, &domain.ExportError{Target: target.String(), Message: "falha ao montar o documento", Err: err}
	}

	var (
		data []byte
		err  error
		file services.ExportFile
	)
	switch target.Kind {
	case services.ExportPNG:
		data, err = s.rasterizer.PNG(ctx, page.String())
		file = services.ExportFile{
			Name:        exportName(doc.Title, "", "png"),
			ContentType: "image/png",
		}
	default:
		spec, ok := pageSpecs[target.PageSize]
		if !ok {
			spec = pageSpecs[services.PageA4]
		}
		data, err = s.rasterizer.PDF(ctx, page.String(), spec)
		file = services.ExportFile{
			Name:        exportName(doc.Title, string(spec.Size), "pdf"),
			ContentType: "application/pdf",
		}
	}
	if err != nil {
		s.logger.Error("export failed", "target", target.String(), "error", err)
		return nil, &domain.ExportError{Target: target.String(), Message: "falha ao capturar o documento", Err: err}
	}
	file.Data = data

	s.logger.Info("export complete",
		"target", target.String(),
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &file, nil
}

// exportName derives the download filename from the document title:
// lowercased, spaces collapsed to dashes, suffixed with the page size for
// PDFs.
func exportName(title, size, ext string) string {
	base := strings.ToLower(strings.TrimSpace(title))
	base = strings.Join(strings.Fields(base), "-")
	if base == "" {
		base = "documento-editorial"
	}
	if size != "" {
		return base + "-" + size + "." + ext
	}
	return base + "." + ext
}
