package render

import (
	"fmt"
	"regexp"
	"strings"

	"editorial/internal/domain/models"
)

// palette names the foreground/surface classes used across the tree. The
// dark palette is the light one with every class swapped for its
// light-on-dark counterpart; which one applies is derived purely from the
// background color, never from a separate toggle.
type palette struct {
	Ink       string // primary text
	Muted     string // secondary text
	Faint     string // labels and hairline captions
	Rule      string // borders and divider lines
	Surface   string // subtle raised background
	Card      string // high-contrast card background
	CardInk   string // text on a card
	CardMuted string // secondary text on a card
}

func paletteFor(dark bool) palette {
	if dark {
		return palette{
			Ink:       "ink-ondark",
			Muted:     "ink-muted-ondark",
			Faint:     "ink-faint-ondark",
			Rule:      "rule-ondark",
			Surface:   "surface-ondark",
			Card:      "card-ondark",
			CardInk:   "card-ink-ondark",
			CardMuted: "card-muted-ondark",
		}
	}
	return palette{
		Ink:       "ink",
		Muted:     "ink-muted",
		Faint:     "ink-faint",
		Rule:      "rule",
		Surface:   "surface",
		Card:      "card",
		CardInk:   "card-ink",
		CardMuted: "card-muted",
	}
}

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// safeColor keeps user-supplied colors inside the hex space the stylesheet
// expects; anything else falls back.
func safeColor(c, fallback string) string {
	if colorPattern.MatchString(c) {
		return c
	}
	return fallback
}

// Render maps a document and settings to the visual tree. It is pure and
// idempotent: identical inputs produce structurally identical trees. A
// disabled section contributes nothing to the output, and absent optional
// content renders nothing rather than failing.
func Render(doc *models.EditorialDocument, settings models.LayoutSettings) *Node {
	pal := paletteFor(settings.DarkMode())
	accent := safeColor(settings.AccentColor, "#000000")

	root := El("div", "editorial-doc",
		"density-"+string(normalizeDensity(settings.ContentDensity)),
		"style-"+string(normalizeFontStyle(settings.FontStyle)),
		"family-"+string(normalizeFontFamily(settings.FontFamily)),
	).WithID("editorial-doc")
	if settings.DarkMode() {
		root.Classes = append(root.Classes, "dark")
	}

	if settings.Sections.Cover {
		root.Add(renderCover(doc, pal, accent))
	}
	if settings.Sections.Architecture {
		root.Add(renderArchitecture(&doc.Architecture, pal, accent))
	}
	if settings.Sections.Days {
		root.Add(renderDays(doc.Days, pal, accent))
	}
	if settings.Sections.Immersion && doc.Immersion != nil {
		root.Add(renderImmersion(doc.Immersion, pal))
	}
	if settings.Sections.Footer {
		root.Add(renderFooter(doc, pal))
	}

	return root
}

func renderCover(doc *models.EditorialDocument, pal palette, accent string) *Node {
	return El("header", "section-cover", "page-break-avoid").Add(
		Text("h1", doc.Title, "doc-title", "heading", pal.Ink),
		Text("p", doc.Subtitle, "doc-subtitle", pal.Muted),
		El("div", "accent-rule").WithStyle("background-color: "+accent),
		Text("p", doc.PositionPhrase, "position-phrase", pal.Ink),
	)
}

func renderArchitecture(arch *models.Architecture, pal palette, accent string) *Node {
	cell := func(label, text string) *Node {
		return El("div", "arch-cell", pal.Surface).
			WithStyle("border-left-color: "+accent).
			Add(
				Text("span", label, "label", pal.Faint),
				Text("p", text, "arch-text", pal.Ink),
			)
	}

	return El("section", "section-architecture", "page-break-avoid").Add(
		Text("h2", "Arquitetura Estratégica", "section-label", "heading", pal.Faint),
		El("div", "arch-grid").Add(
			cell("Atmosfera", arch.Feeling),
			cell("Foco de Dor", arch.Pain),
			cell("Autoridade", arch.Authority),
		),
	)
}

func renderDays(days []models.DayPlan, pal palette, accent string) *Node {
	section := El("section", "section-days").Add(
		Text("h2", "Calendário de Execução", "section-label", "heading", pal.Faint),
	)
	for i := range days {
		section.Add(renderDay(&days[i], pal, accent))
	}
	return section
}

func renderDay(day *models.DayPlan, pal palette, accent string) *Node {
	node := El("article", "day", "page-break-avoid").Add(
		El("div", "day-header").Add(
			Text("h3", day.Day, "day-name", "heading", pal.Ink),
			Text("span", day.Format, "format-badge", pal.CardInk).
				WithStyle("background-color: "+accent),
		),
		renderDayStrategy(day, pal),
		renderDayContent(day, pal),
		renderDayCaption(day, pal),
	)
	if day.ExecutionNotes != "" {
		node.Add(El("div", "execution-notes").Add(
			Text("p", "Notas de Execução", "label", pal.Faint),
			Text("p", day.ExecutionNotes, "notes-text", pal.Muted),
		))
	}
	return node
}

func renderDayStrategy(day *models.DayPlan, pal palette) *Node {
	block := func(label, text string) *Node {
		if text == "" {
			return nil
		}
		return El("div", "strategy-block").Add(
			Text("p", label, "label", pal.Faint),
			Text("p", text, "strategy-text", pal.Ink),
		)
	}

	col := El("div", "day-strategy").Add(
		block("Tema", day.Theme),
		block("Intenção Estratégica", day.StrategicIntent),
		block("Direção Criativa", day.CreativeDirection),
		block("Conversão", day.ApproachStrategy),
		block("Psicologia do Espectador", day.ViewerPsychology),
	)

	if ve := day.VisualElements; ve.Cards != "" || ve.Reels != "" || ve.Stories != "" {
		visual := El("div", "visual-elements").Add(
			Text("p", "Direção Visual", "label", pal.Faint),
			block("Cards", ve.Cards),
			block("Reels", ve.Reels),
			block("Stories", ve.Stories),
		)
		col.Add(visual)
	}

	if len(day.StorySuggestions) > 0 {
		stories := El("div", "stories", pal.Card).Add(
			Text("p", "Ecossistema Stories", "label", pal.CardMuted),
		)
		list := El("ul", "stories-list")
		for _, s := range day.StorySuggestions {
			list.Add(Text("li", s, "story-step", pal.CardInk))
		}
		col.Add(stories.Add(list))
	}

	return col
}

// renderDayContent picks exactly one format branch: video script, then
// carousel, then static post, then nothing. Caption and strategy render
// regardless of the branch.
func renderDayContent(day *models.DayPlan, pal palette) *Node {
	content := day.Content
	if content.Kind == "" {
		// Unresolved payload (settings edited client-side, or a document
		// loaded from history before normalization) - resolve on a copy.
		scratch := *day
		scratch.ResolveContent()
		content = scratch.Content
	}

	switch content.Kind {
	case models.ContentVideo:
		return renderReelsScript(content.Video, pal)
	case models.ContentCarousel:
		return renderCarousel(content.Carousel, pal)
	case models.ContentStatic:
		return renderStaticPost(content.Static, pal)
	}
	return nil
}

func renderReelsScript(script *models.ReelsScript, pal palette) *Node {
	node := El("div", "reels-script", "page-break-avoid", pal.Card).Add(
		Text("p", "Master Video Script", "label", pal.CardMuted),
		El("div", "hook").Add(
			Text("p", "Hook (0-3 segundos)", "label", pal.CardMuted),
			Text("p", fmt.Sprintf("%q", script.Hook), "hook-text", pal.CardInk),
		),
	)

	scenes := El("div", "scenes")
	for _, scene := range script.Scenes {
		row := El("div", "scene").Add(
			Text("span", fmt.Sprintf("#%d", scene.SceneNumber), "scene-number", pal.CardMuted),
			El("div", "scene-visual").Add(
				Text("p", "Visual / Ação", "label", pal.CardMuted),
				Text("p", scene.VisualAction, "scene-text", pal.CardInk),
			),
			El("div", "scene-audio").Add(
				Text("p", "Áudio / Fala", "label", pal.CardMuted),
				Text("p", scene.AudioSpeech, "scene-text", pal.CardInk),
			),
		)
		if scene.Transition != "" {
			row.Add(Text("p", "Transição: "+scene.Transition, "scene-transition", pal.CardMuted))
		}
		if scene.AudioSuggestion != "" {
			row.Add(Text("p", "Trilha: "+scene.AudioSuggestion, "scene-audio-suggestion", pal.CardMuted))
		}
		scenes.Add(row)
	}

	return node.Add(
		scenes,
		El("div", "cta").Add(
			Text("p", "CTA Final", "label", pal.CardMuted),
			Text("p", script.CTA, "cta-text", pal.CardInk),
		),
	)
}

func renderCarousel(slides []models.CarouselSlide, pal palette) *Node {
	node := El("div", "carousel")
	for _, slide := range slides {
		node.Add(El("div", "slide", "page-break-avoid", pal.Surface).Add(
			Text("p", fmt.Sprintf("SLIDE %02d", slide.SlideNumber), "slide-number", "heading", pal.Ink),
			El("div", "slide-meta").Add(
				El("div").Add(
					Text("p", "Visual", "label", pal.Faint),
					Text("p", slide.VisualDescription, "slide-text", pal.Ink),
				),
				El("div").Add(
					Text("p", "Ativo", "label", pal.Faint),
					Text("p", slide.ImageSuggestion, "slide-text", pal.Muted),
				),
			),
			// The on-card text is the dominant visual element of the block.
			El("div", "card-text", "dominant", pal.Card).Add(
				Text("p", slide.TextOnCard, "card-text-inner", pal.CardInk),
			),
		))
	}
	return node
}

func renderStaticPost(info *models.StaticPostInfo, pal palette) *Node {
	return El("div", "static-post", "page-break-avoid", pal.Surface).Add(
		Text("p", "POST ESTÁTICO", "label", pal.Faint),
		El("div", "static-meta").Add(
			El("div").Add(
				Text("p", "Layout", "label", pal.Faint),
				Text("p", info.VisualComposition, "static-text", pal.Ink),
			),
			El("div").Add(
				Text("p", "Imagem", "label", pal.Faint),
				Text("p", info.ImageSuggestion, "static-text", pal.Muted),
			),
		),
		El("div", "headline", "dominant", pal.Card).Add(
			Text("p", info.HeadlineOnCard, "headline-inner", pal.CardInk),
		),
	)
}

func renderDayCaption(day *models.DayPlan, pal palette) *Node {
	return El("div", "caption-block", "page-break-avoid").Add(
		Text("p", "Copy da Legenda", "label", pal.Faint),
		Text("div", day.Caption, "caption-text", pal.Ink),
	)
}

func renderImmersion(block *models.ImmersionBlock, pal palette) *Node {
	section := El("section", "section-immersion", "page-break-avoid", pal.Surface).Add(
		Text("div", "Asset Extra / Bônus", "bonus-badge", pal.Card, pal.CardInk),
		Text("h2", "ESTRATÉGIA DE IMERSÃO", "section-label", "heading", pal.Faint),
		Text("h3", block.Title, "immersion-title", "heading", pal.Ink),
		Text("p", block.Concept, "immersion-concept", pal.Muted),
	)

	steps := El("div", "immersion-steps")
	for i, step := range block.Steps {
		steps.Add(El("div", "immersion-step", "page-break-avoid").Add(
			Text("p", fmt.Sprintf("PASSO %02d", i+1), "label", pal.Faint),
			Text("p", step.VisualStep, "step-visual", pal.Ink),
			Text("p", step.Objective, "step-objective", pal.Muted),
			El("div", "step-card", pal.Card).Add(
				Text("p", fmt.Sprintf("%q", step.CardText), "step-card-text", pal.CardInk),
			),
			Text("p", step.ExpectedResult, "step-result", pal.Muted),
		))
	}
	section.Add(steps)

	return section.Add(El("div", "immersion-footer").Add(
		El("div", "immersion-caption").Add(
			Text("p", "Legenda Sugerida", "label", pal.Faint),
			Text("div", block.Caption, "caption-text", pal.Ink),
		),
		El("div", "immersion-aside").Add(
			El("div", "reels-cover").Add(
				Text("p", "Capa do Reels", "label", pal.Faint),
				Text("p", block.ReelsCover, "aside-text", pal.Ink),
			),
			El("div", "approach", pal.Card).Add(
				Text("p", "Estratégia de Abordagem", "label", pal.CardMuted),
				Text("p", block.ApproachStrategy, "aside-text", pal.CardInk),
			),
		),
	))
}

func renderFooter(doc *models.EditorialDocument, pal palette) *Node {
	return El("footer", "section-footer", "page-break-avoid").Add(
		Text("p", "Veredito Editorial", "section-label", pal.Faint),
		Text("p", fmt.Sprintf("%q", strings.TrimSpace(doc.Observation)), "observation", pal.Ink),
	)
}
