package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"editorial/internal/domain/models"
)

// voidTags never carry children or a closing tag.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "link": true, "meta": true,
}

// Serialize writes the node and its subtree as HTML. All text content is
// escaped; attribute order is fixed (id, class, style) so the output is
// byte-stable for identical trees.
func Serialize(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	var b strings.Builder
	writeNode(&b, n)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNode(b *strings.Builder, n *Node) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	if n.ID != "" {
		fmt.Fprintf(b, ` id=%q`, n.ID)
	}
	if len(n.Classes) > 0 {
		fmt.Fprintf(b, ` class=%q`, strings.Join(n.Classes, " "))
	}
	if n.Style != "" {
		fmt.Fprintf(b, ` style=%q`, n.Style)
	}
	b.WriteByte('>')
	if voidTags[n.Tag] {
		return
	}
	if n.Text != "" {
		writeText(b, n.Text)
	}
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// writeText escapes text, preserving line breaks as <br> so multi-paragraph
// captions survive serialization.
func writeText(b *strings.Builder, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(html.EscapeString(line))
	}
}

// WriteHTML writes a complete standalone page: document head, web font
// links, the generated stylesheet for the given settings, and the serialized
// tree. The output is what the export pipeline feeds to the browser.
func WriteHTML(w io.Writer, root *Node, settings models.LayoutSettings) error {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<link rel="preconnect" href="https://fonts.googleapis.com">` + "\n")
	b.WriteString(`<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>` + "\n")
	b.WriteString(`<link href="https://fonts.googleapis.com/css2?family=Playfair+Display:ital,wght@0,400..900;1,400..900&family=Syne:wght@400..800&family=Inter:wght@100..900&family=Montserrat:ital,wght@0,100..900;1,100..900&display=swap" rel="stylesheet">` + "\n")
	b.WriteString("<style>\n")
	writeStylesheet(&b, settings)
	b.WriteString("</style>\n</head>\n<body>\n")
	writeNode(&b, root)
	b.WriteString("\n</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Pixel widths the export pipeline pins the root element to, per page size.
// A0 is capped to keep the raster under the browser's texture limits.
const (
	WidthA4 = 794
	WidthA3 = 1122
	WidthA2 = 1587
	WidthA0 = 3178
)

func writeStylesheet(b *strings.Builder, settings models.LayoutSettings) {
	family := familyPreset(normalizeFontFamily(settings.FontFamily))
	style := stylePreset(normalizeFontStyle(settings.FontStyle))
	density := densityPreset(normalizeDensity(settings.ContentDensity))

	bg := safeColor(settings.BackgroundColor, "#ffffff")
	dark := settings.DarkMode()

	fmt.Fprintf(b, "body { margin: 0; background-color: %s; font-family: Inter, sans-serif; -webkit-font-smoothing: antialiased; }\n", bg)
	fmt.Fprintf(b, "#editorial-doc { max-width: %dpx; margin: 0 auto; padding: %dpx; box-sizing: border-box; }\n", WidthA4, density.Pad)

	// Typography
	fmt.Fprintf(b, ".heading { font-family: %s; font-weight: %d; letter-spacing: %s; text-transform: %s; }\n",
		family.Stack, style.Weight, style.Tracking, style.Transform)
	if style.Italic {
		b.WriteString(".doc-subtitle { font-style: italic; }\n")
	}
	fmt.Fprintf(b, ".doc-title { font-size: 56px; line-height: 1.05; margin: 0 0 12px; }\n")
	b.WriteString(".doc-subtitle { font-size: 18px; margin: 0 0 24px; }\n")
	b.WriteString(".position-phrase { font-size: 22px; line-height: 1.4; margin: 24px 0 0; }\n")
	b.WriteString(".section-label { font-size: 12px; letter-spacing: 0.2em; text-transform: uppercase; margin: 0 0 24px; }\n")
	b.WriteString(".label { font-size: 10px; letter-spacing: 0.15em; text-transform: uppercase; margin: 0 0 6px; }\n")
	b.WriteString(".accent-rule { width: 64px; height: 4px; }\n")

	// Rhythm
	fmt.Fprintf(b, "#editorial-doc > * { margin-bottom: %dpx; }\n", density.SectionGap)
	fmt.Fprintf(b, ".day, .immersion-step, .slide { margin-bottom: %dpx; }\n", density.BlockGap)
	fmt.Fprintf(b, ".arch-cell, .slide, .static-post, .stories, .reels-script, .step-card { padding: %dpx; }\n", density.BlockGap)
	b.WriteString(".day-header { display: flex; align-items: baseline; justify-content: space-between; gap: 16px; border-bottom: 1px solid currentColor; padding-bottom: 8px; margin-bottom: 16px; }\n")
	b.WriteString(".day-name { font-size: 28px; margin: 0; }\n")
	b.WriteString(".format-badge { font-size: 11px; letter-spacing: 0.1em; text-transform: uppercase; padding: 4px 10px; border-radius: 2px; white-space: nowrap; }\n")
	b.WriteString(".arch-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 16px; }\n")
	b.WriteString(".arch-cell { border-left: 3px solid; }\n")
	b.WriteString(".slide-meta, .static-meta { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin-bottom: 16px; }\n")
	b.WriteString(".scene { display: grid; grid-template-columns: auto 1fr 1fr; gap: 12px; padding: 12px 0; border-bottom: 1px solid rgba(128,128,128,0.25); }\n")
	b.WriteString(".dominant { font-size: 26px; line-height: 1.25; text-align: center; padding: 48px 32px; }\n")
	b.WriteString(".bonus-badge { display: inline-block; font-size: 11px; letter-spacing: 0.12em; text-transform: uppercase; padding: 6px 12px; margin-bottom: 20px; }\n")
	b.WriteString(".caption-text { white-space: pre-wrap; line-height: 1.7; font-size: 14px; margin-top: 24px; }\n")
	b.WriteString(".observation { font-size: 20px; line-height: 1.5; font-style: italic; }\n")

	// Palette
	writePalette(b, dark)

	// Keep logical blocks whole across printed pages.
	b.WriteString(".page-break-avoid { break-inside: avoid; page-break-inside: avoid; }\n")

	// Export pins the root to a fixed pixel width per page size; the class
	// pair is added before capture and removed after.
	fmt.Fprintf(b, "#editorial-doc.pdf-export-mode.pdf-mode-a4 { width: %dpx; max-width: none; }\n", WidthA4)
	fmt.Fprintf(b, "#editorial-doc.pdf-export-mode.pdf-mode-a3 { width: %dpx; max-width: none; }\n", WidthA3)
	fmt.Fprintf(b, "#editorial-doc.pdf-export-mode.pdf-mode-a2 { width: %dpx; max-width: none; }\n", WidthA2)
	fmt.Fprintf(b, "#editorial-doc.pdf-export-mode.pdf-mode-a0 { width: %dpx; max-width: none; }\n", WidthA0)
}

func writePalette(b *strings.Builder, dark bool) {
	if dark {
		b.WriteString(".ink-ondark { color: #f5f5f4; }\n")
		b.WriteString(".ink-muted-ondark { color: #a8a29e; }\n")
		b.WriteString(".ink-faint-ondark { color: #78716c; }\n")
		b.WriteString(".rule-ondark { border-color: #292524; }\n")
		b.WriteString(".surface-ondark { background-color: #1c1917; }\n")
		b.WriteString(".card-ondark { background-color: #f5f5f4; }\n")
		b.WriteString(".card-ink-ondark { color: #0a0a0a; }\n")
		b.WriteString(".card-muted-ondark { color: #57534e; }\n")
		return
	}
	b.WriteString(".ink { color: #1c1917; }\n")
	b.WriteString(".ink-muted { color: #57534e; }\n")
	b.WriteString(".ink-faint { color: #78716c; }\n")
	b.WriteString(".rule { border-color: #e7e5e4; }\n")
	b.WriteString(".surface { background-color: #fafaf9; }\n")
	b.WriteString(".card { background-color: #1c1917; }\n")
	b.WriteString(".card-ink { color: #fafaf9; }\n")
	b.WriteString(".card-muted { color: #a8a29e; }\n")
}
