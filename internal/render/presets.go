package render

import (
	"embed"
	"fmt"
	"sync"

	"editorial/internal/domain/models"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetFiles embed.FS

// FamilyPreset is the CSS stack for a font family.
type FamilyPreset struct {
	Stack string `yaml:"stack"`
}

// StylePreset is the heading treatment for a font style.
type StylePreset struct {
	Weight    int    `yaml:"weight"`
	Tracking  string `yaml:"tracking"`
	Transform string `yaml:"transform"`
	Italic    bool   `yaml:"italic"`
}

// DensityPreset scales the vertical rhythm, in pixels.
type DensityPreset struct {
	SectionGap int `yaml:"section_gap"`
	BlockGap   int `yaml:"block_gap"`
	Pad        int `yaml:"pad"`
}

type presetRegistry struct {
	Families  map[string]FamilyPreset  `yaml:"families"`
	Styles    map[string]StylePreset   `yaml:"styles"`
	Densities map[string]DensityPreset `yaml:"densities"`
}

var (
	presetsOnce sync.Once
	presets     presetRegistry
	presetsErr  error
)

func loadPresets() (presetRegistry, error) {
	presetsOnce.Do(func() {
		data, err := presetFiles.ReadFile("presets/presets.yaml")
		if err != nil {
			presetsErr = fmt.Errorf("read presets: %w", err)
			return
		}
		if err := yaml.Unmarshal(data, &presets); err != nil {
			presetsErr = fmt.Errorf("unmarshal presets: %w", err)
		}
	})
	return presets, presetsErr
}

// Lookups below fall back to the defaults on any unrecognized value.
// Rendering never fails over a bad enum.

func familyPreset(f models.FontFamily) FamilyPreset {
	reg, err := loadPresets()
	if err != nil {
		return FamilyPreset{Stack: "Georgia, serif"}
	}
	if p, ok := reg.Families[string(f)]; ok {
		return p
	}
	return reg.Families[string(models.FontFamilyPlayfair)]
}

func stylePreset(s models.FontStyle) StylePreset {
	reg, err := loadPresets()
	if err != nil {
		return StylePreset{Weight: 700, Tracking: "-0.02em", Transform: "uppercase", Italic: true}
	}
	if p, ok := reg.Styles[string(s)]; ok {
		return p
	}
	return reg.Styles[string(models.FontStyleClassic)]
}

func densityPreset(d models.ContentDensity) DensityPreset {
	reg, err := loadPresets()
	if err != nil {
		return DensityPreset{SectionGap: 96, BlockGap: 32, Pad: 40}
	}
	if p, ok := reg.Densities[string(d)]; ok {
		return p
	}
	return reg.Densities[string(models.DensityElegant)]
}

// normalizeDensity returns the density if recognized, the default otherwise.
func normalizeDensity(d models.ContentDensity) models.ContentDensity {
	switch d {
	case models.DensityCompact, models.DensityElegant, models.DensitySpacious:
		return d
	}
	return models.DensityElegant
}

func normalizeFontStyle(s models.FontStyle) models.FontStyle {
	switch s {
	case models.FontStyleClassic, models.FontStyleModern, models.FontStyleMinimal:
		return s
	}
	return models.FontStyleClassic
}

func normalizeFontFamily(f models.FontFamily) models.FontFamily {
	switch f {
	case models.FontFamilyPlayfair, models.FontFamilySyne, models.FontFamilyInter, models.FontFamilyMontserrat:
		return f
	}
	return models.FontFamilyPlayfair
}
