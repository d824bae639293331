package generation

import (
	"fmt"
	"strings"

	"editorial/internal/domain/models"
)

// validateDocument checks the parsed reply against the document contract
// before anyone downstream sees it. The model is schema-constrained, but the
// schema cannot express everything: the seven-day calendar, non-empty
// required text, and the video-day script rule are enforced here. A partial
// document is never accepted silently.
func validateDocument(doc *models.EditorialDocument, expectSevenDays bool) error {
	for field, value := range map[string]string{
		"title":          doc.Title,
		"subtitle":       doc.Subtitle,
		"positionPhrase": doc.PositionPhrase,
		"observation":    doc.Observation,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("missing required field %q", field)
		}
	}

	arch := doc.Architecture
	if strings.TrimSpace(arch.Feeling) == "" ||
		strings.TrimSpace(arch.Pain) == "" ||
		strings.TrimSpace(arch.Authority) == "" {
		return fmt.Errorf("incomplete strategic architecture")
	}

	if len(doc.Days) == 0 {
		return fmt.Errorf("document has no days")
	}
	if expectSevenDays && len(doc.Days) != 7 {
		return fmt.Errorf("expected a 7-day calendar, got %d days", len(doc.Days))
	}

	for i := range doc.Days {
		if err := validateDay(&doc.Days[i]); err != nil {
			return fmt.Errorf("day %d: %w", i+1, err)
		}
	}

	return nil
}

func validateDay(day *models.DayPlan) error {
	for field, value := range map[string]string{
		"day":     day.Day,
		"format":  day.Format,
		"theme":   day.Theme,
		"caption": day.Caption,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("missing required field %q", field)
		}
	}

	// Every video-format day must carry a full technical script, not just a
	// caption. The format label is free text, so match loosely.
	if isVideoFormat(day.Format) {
		script := day.ReelsScript
		if script == nil || strings.TrimSpace(script.Hook) == "" ||
			len(script.Scenes) == 0 || strings.TrimSpace(script.CTA) == "" {
			return fmt.Errorf("video format %q requires a complete reels script", day.Format)
		}
	}

	return nil
}

func isVideoFormat(format string) bool {
	f := strings.ToLower(format)
	return strings.Contains(f, "reel") ||
		strings.Contains(f, "video") ||
		strings.Contains(f, "vídeo")
}
