package render

import (
	"encoding/json"
	"reflect"
	"testing"

	"editorial/internal/domain/models"
)

func sampleDocument() *models.EditorialDocument {
	doc := &models.EditorialDocument{
		Title:          "Plano Editorial Elite",
		Subtitle:       "Sete dias de autoridade",
		PositionPhrase: "Quem define o jogo não disputa atenção.",
		Architecture: models.Architecture{
			Feeling:   "Exclusividade silenciosa",
			Pain:      "Invisibilidade no feed",
			Authority: "Método próprio comprovado",
		},
		Days: []models.DayPlan{
			{
				Day:    "Segunda-feira",
				Format: "Reels de Impacto",
				Theme:  "Abertura de semana",
				ReelsScript: &models.ReelsScript{
					Hook: "Você está postando errado.",
					Scenes: []models.ReelsScene{
						{SceneNumber: 1, VisualAction: "Close no rosto", AudioSpeech: "Fala direta"},
						{SceneNumber: 2, VisualAction: "Corte para tela", AudioSpeech: "Prova"},
					},
					CTA: "Comenta ESTRATÉGIA.",
				},
				Caption:          "Legenda do dia um.",
				StorySuggestions: []string{"Enquete de abertura", "Bastidor"},
			},
			{
				Day:    "Terça-feira",
				Format: "Carrossel",
				Theme:  "Quebra de objeção",
				CarouselSlides: []models.CarouselSlide{
					{SlideNumber: 2, VisualDescription: "Fundo escuro", TextOnCard: "Segundo"},
					{SlideNumber: 1, VisualDescription: "Capa", TextOnCard: "Primeiro"},
				},
				Caption: "Legenda do dia dois.",
			},
			{
				Day:            "Quarta-feira",
				Format:         "Post Estático",
				Theme:          "Autoridade",
				StaticPostInfo: &models.StaticPostInfo{VisualComposition: "Retrato central", ImageSuggestion: "Foto editorial", HeadlineOnCard: "O método"},
				Caption:        "Legenda do dia três.",
			},
		},
		Immersion: &models.ImmersionBlock{
			Title:   "Sequência de Imersão",
			Concept: "Stories encadeados",
			Steps: []models.ImmersionStep{
				{VisualStep: "Abertura", CardText: "Card um", Objective: "Prender", ExpectedResult: "Resposta"},
			},
			Caption:          "Legenda da imersão.",
			ReelsCover:       "Capa mínima",
			ApproachStrategy: "Responder em áudio",
		},
		Observation: "Consistência vale mais que alcance.",
	}
	doc.Normalize()
	return doc
}

func TestRenderIsPure(t *testing.T) {
	doc := sampleDocument()
	settings := models.DefaultLayoutSettings()

	before, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}

	first := Render(doc, settings)
	second := Render(doc, settings)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical trees")
	}

	after, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("Render mutated the document")
	}
}

func TestRenderSingleFormatBranch(t *testing.T) {
	doc := sampleDocument()
	// Populate every branch on the video day; only video should render.
	doc.Days[0].CarouselSlides = []models.CarouselSlide{{SlideNumber: 1, TextOnCard: "x"}}
	doc.Days[0].StaticPostInfo = &models.StaticPostInfo{HeadlineOnCard: "y"}
	doc.Normalize()

	tree := Render(doc, models.DefaultLayoutSettings())
	days := tree.FindAll("day")
	if len(days) != 3 {
		t.Fatalf("got %d day nodes, want 3", len(days))
	}

	videoDay := days[0]
	if videoDay.Find("reels-script") == nil {
		t.Error("video day should render the script block")
	}
	if videoDay.Find("carousel") != nil {
		t.Error("video day must not also render a carousel")
	}
	if videoDay.Find("static-post") != nil {
		t.Error("video day must not also render a static post")
	}
}

func TestRenderCarouselOrderAndDominantText(t *testing.T) {
	tree := Render(sampleDocument(), models.DefaultLayoutSettings())

	slides := tree.FindAll("slide")
	if len(slides) != 2 {
		t.Fatalf("got %d slides, want 2", len(slides))
	}
	first := slides[0].Find("card-text-inner")
	if first == nil || first.Text != "Primeiro" {
		t.Errorf("slides must render in slideNumber order, first card = %+v", first)
	}

	for i, slide := range slides {
		if slide.Find("dominant") == nil {
			t.Errorf("slide %d: on-card text should carry the dominant class", i)
		}
	}
}

func TestRenderSectionToggles(t *testing.T) {
	doc := sampleDocument()

	sections := []struct {
		name    string
		class   string
		disable func(*models.SectionVisibility)
	}{
		{"cover", "section-cover", func(v *models.SectionVisibility) { v.Cover = false }},
		{"architecture", "section-architecture", func(v *models.SectionVisibility) { v.Architecture = false }},
		{"days", "section-days", func(v *models.SectionVisibility) { v.Days = false }},
		{"immersion", "section-immersion", func(v *models.SectionVisibility) { v.Immersion = false }},
		{"footer", "section-footer", func(v *models.SectionVisibility) { v.Footer = false }},
	}

	for _, tt := range sections {
		t.Run(tt.name, func(t *testing.T) {
			settings := models.DefaultLayoutSettings()
			if Render(doc, settings).Find(tt.class) == nil {
				t.Fatalf("%s should render when enabled", tt.class)
			}
			tt.disable(&settings.Sections)
			if Render(doc, settings).Find(tt.class) != nil {
				t.Errorf("%s should be absent when disabled", tt.class)
			}
		})
	}
}

func TestRenderToggleRoundTrip(t *testing.T) {
	doc := sampleDocument()
	enabled := models.DefaultLayoutSettings()

	disabled := enabled
	disabled.Sections.Days = false

	before := Render(doc, enabled)
	after := Render(doc, enabled)
	_ = Render(doc, disabled)

	if !reflect.DeepEqual(before, after) {
		t.Error("re-enabling a section must restore the identical tree")
	}
}

func TestRenderDarkPalette(t *testing.T) {
	doc := sampleDocument()

	light := Render(doc, models.DefaultLayoutSettings())
	if light.Find("ink-ondark") != nil {
		t.Error("light palette should not use ondark classes")
	}

	settings := models.DefaultLayoutSettings()
	settings.BackgroundColor = models.DarkBackground
	dark := Render(doc, settings)
	if dark.Find("ink-ondark") == nil {
		t.Error("dark palette should use ondark classes")
	}
	if !dark.HasClass("dark") {
		t.Error("dark tree should be marked at the root")
	}
}

func TestRenderSettingsClasses(t *testing.T) {
	settings := models.DefaultLayoutSettings()
	settings.ContentDensity = models.DensityCompact
	settings.FontStyle = models.FontStyleModern
	settings.FontFamily = models.FontFamilySyne

	tree := Render(sampleDocument(), settings)
	for _, class := range []string{"density-compact", "style-modern", "family-syne"} {
		if !tree.HasClass(class) {
			t.Errorf("root should carry %q, got %v", class, tree.Classes)
		}
	}
}

func TestRenderUnknownEnumsFallBack(t *testing.T) {
	settings := models.DefaultLayoutSettings()
	settings.ContentDensity = "ultra"
	settings.FontStyle = "gothic"
	settings.FontFamily = "wingdings"
	settings.AccentColor = "red; background: url(x)"

	tree := Render(sampleDocument(), settings)
	for _, class := range []string{"density-elegant", "style-classic", "family-playfair"} {
		if !tree.HasClass(class) {
			t.Errorf("root should fall back to %q, got %v", class, tree.Classes)
		}
	}

	rule := tree.Find("accent-rule")
	if rule == nil {
		t.Fatal("accent rule missing")
	}
	if rule.Style != "background-color: #000000" {
		t.Errorf("invalid accent color must fall back, got %q", rule.Style)
	}
}

func TestRenderUnresolvedDayContent(t *testing.T) {
	doc := sampleDocument()
	// Simulate a document that skipped Normalize, e.g. loaded straight from
	// a history snapshot.
	for i := range doc.Days {
		doc.Days[i].Content = models.DayContent{}
	}

	tree := Render(doc, models.DefaultLayoutSettings())
	if tree.Find("reels-script") == nil {
		t.Error("renderer should resolve content on the fly for unresolved days")
	}
	if doc.Days[0].Content.Kind != "" {
		t.Error("on-the-fly resolution must not mutate the input document")
	}
}
