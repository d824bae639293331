package models

// FontStyle selects the heading typography treatment.
type FontStyle string

const (
	FontStyleClassic FontStyle = "classic"
	FontStyleModern  FontStyle = "modern"
	FontStyleMinimal FontStyle = "minimal"
)

// FontFamily selects the underlying type family, independent of FontStyle.
type FontFamily string

const (
	FontFamilyPlayfair   FontFamily = "playfair"
	FontFamilySyne       FontFamily = "syne"
	FontFamilyInter      FontFamily = "inter"
	FontFamilyMontserrat FontFamily = "montserrat"
)

// ContentDensity controls the vertical spacing rhythm of the rendered
// document. It never changes content, only layout.
type ContentDensity string

const (
	DensityCompact  ContentDensity = "compact"
	DensityElegant  ContentDensity = "elegant"
	DensitySpacious ContentDensity = "spacious"
)

// DarkBackground is the sentinel background value that switches the whole
// palette to light-on-dark. Dark mode is derived from BackgroundColor, it is
// not a separate toggle.
const DarkBackground = "#0a0a0a"

// SectionVisibility gates entire document sections. A disabled section is
// absent from the rendered tree, not merely hidden.
type SectionVisibility struct {
	Cover        bool `json:"cover"`
	Architecture bool `json:"architecture"`
	Days         bool `json:"days"`
	Immersion    bool `json:"immersion"`
	Footer       bool `json:"footer"`
}

// LayoutSettings is the presentation configuration, orthogonal to document
// content. It lives only in the editing session and, optionally, in local
// history snapshots; it is never persisted server-side on its own.
type LayoutSettings struct {
	AccentColor     string            `json:"accentColor"`
	BackgroundColor string            `json:"backgroundColor"`
	FontStyle       FontStyle         `json:"fontStyle"`
	FontFamily      FontFamily        `json:"fontFamily"`
	Sections        SectionVisibility `json:"sections"`
	ContentDensity  ContentDensity    `json:"contentDensity"`
}

// DefaultLayoutSettings returns the session-start defaults.
func DefaultLayoutSettings() LayoutSettings {
	return LayoutSettings{
		AccentColor:     "#000000",
		BackgroundColor: "#ffffff",
		FontStyle:       FontStyleClassic,
		FontFamily:      FontFamilyPlayfair,
		Sections: SectionVisibility{
			Cover:        true,
			Architecture: true,
			Days:         true,
			Immersion:    true,
			Footer:       true,
		},
		ContentDensity: DensityElegant,
	}
}

// DarkMode reports whether the settings derive the light-on-dark palette.
func (s LayoutSettings) DarkMode() bool {
	return s.BackgroundColor == DarkBackground
}
