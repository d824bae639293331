package export

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"editorial/internal/render"
)

// pngPixelRatio matches the on-screen capture: twice the CSS pixel density
// over a white backdrop.
const pngPixelRatio = 2

// RodRasterizer drives a headless Chrome instance. A single browser is
// launched lazily on first use and reused for every capture; each capture
// gets its own page.
type RodRasterizer struct {
	bin string

	mu      sync.Mutex
	browser *rod.Browser
}

// NewRodRasterizer creates a rasterizer. bin optionally pins the Chrome
// binary; when empty the launcher resolves one itself.
func NewRodRasterizer(bin string) *RodRasterizer {
	return &RodRasterizer{bin: bin}
}

func (r *RodRasterizer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		if _, err := r.browser.Version(); err == nil {
			return r.browser, nil
		}
		_ = r.browser.Close()
		r.browser = nil
	}

	launch := launcher.New().Headless(true)
	if r.bin != "" {
		launch = launch.Bin(r.bin)
	}
	controlURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	r.browser = browser
	return browser, nil
}

// openPage loads the HTML in a fresh page at the given viewport width and
// waits for fonts and layout to settle.
func (r *RodRasterizer) openPage(ctx context.Context, html string, width int, scale float64) (*rod.Page, error) {
	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            1200,
		DeviceScaleFactor: scale,
	}); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("set viewport: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("wait load: %w", err)
	}

	select {
	case <-time.After(settleDelay):
	case <-ctx.Done():
		_ = page.Close()
		return nil, ctx.Err()
	}

	return page, nil
}

func (r *RodRasterizer) PDF(ctx context.Context, html string, spec PageSpec) ([]byte, error) {
	page, err := r.openPage(ctx, html, spec.WidthPx, spec.Scale)
	if err != nil {
		return nil, err
	}
	defer func() { _ = page.Close() }()

	// Pin the root to the export width for the duration of the capture.
	if _, err := page.Eval(`(size) => {
		const el = document.getElementById('editorial-doc');
		if (el) el.classList.add('pdf-export-mode', 'pdf-mode-' + size);
	}`, string(spec.Size)); err != nil {
		return nil, fmt.Errorf("apply export mode: %w", err)
	}
	defer func() {
		_, _ = page.Eval(`(size) => {
			const el = document.getElementById('editorial-doc');
			if (el) el.classList.remove('pdf-export-mode', 'pdf-mode-' + size);
		}`, string(spec.Size))
	}()

	zero := 0.0
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &spec.PaperWidthIn,
		PaperHeight:     &spec.PaperHeightIn,
		MarginTop:       &zero,
		MarginBottom:    &zero,
		MarginLeft:      &zero,
		MarginRight:     &zero,
	})
	if err != nil {
		return nil, fmt.Errorf("print pdf: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return data, nil
}

func (r *RodRasterizer) PNG(ctx context.Context, html string) ([]byte, error) {
	page, err := r.openPage(ctx, html, render.WidthA4, pngPixelRatio)
	if err != nil {
		return nil, err
	}
	defer func() { _ = page.Close() }()

	data, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capture png: %w", err)
	}
	return data, nil
}

func (r *RodRasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	return err
}
