package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/logger"
)

// Ensure LocationContextService implements the interface.
var _ driving.LocationResolver = (*LocationContextService)(nil)

// minAddressLength is the shortest parsed address line accepted as a real
// address. Anything shorter degrades to the coordinate string.
const minAddressLength = 5

// Label prefixes the model tends to emit despite the strict format
// instruction, stripped case-insensitively in both working languages.
var (
	addressLabels     = []string{"Zeile 1:", "Line 1:", "Adresse:", "Address:"}
	hospitalLabels    = []string{"Zeile 2:", "Line 2:", "Krankenhaus:", "Hospital:"}
	descriptionLabels = []string{"Zeile 3:", "Line 3:", "Beschreibung:", "Description:"}
)

// LocationContextService resolves a coordinate into a displayable location
// context via the grounded language model. It is stateless: every Resolve
// call owns its request and response exclusively, and no state bleeds
// between calls.
type LocationContextService struct {
	model   driven.LanguageModel
	prompts driven.PromptStore
}

// NewLocationContextService creates a new location context service.
// The prompt store may be nil; embedded defaults are used then.
func NewLocationContextService(model driven.LanguageModel, prompts driven.PromptStore) *LocationContextService {
	return &LocationContextService{
		model:   model,
		prompts: prompts,
	}
}

// Resolve asks the grounded model for address, nearest hospital and a short
// environment description near coord. It never returns an error: every
// failure path degrades into a context with the coordinate-string address
// and the localized static description, so the report can always render.
func (s *LocationContextService) Resolve(ctx context.Context, coord domain.Coordinate, lang domain.Language, manualAddress string) domain.LocationContext {
	if !lang.IsValid() {
		lang = domain.DefaultLanguage
	}
	manualAddress = strings.TrimSpace(manualAddress)

	if s.model == nil {
		logger.Warn("location resolve skipped: %v", domain.ErrModelUnavailable)
		return s.degraded(coord, lang, manualAddress)
	}

	res, err := s.model.GenerateGrounded(ctx, driven.GroundedRequest{
		Prompt: locationPrompt(s.prompts, coord, lang, manualAddress),
		Anchor: coord,
	})
	if err != nil {
		logger.Warn("location resolve degraded: %v", err)
		return s.degraded(coord, lang, manualAddress)
	}

	parsed := parseLocationResponse(res.Text, coord, lang, manualAddress)
	parsed.MapURL = res.MapURL
	return parsed
}

// degraded is the uniform fallback context: coordinate-string address
// (or the manual address when one was supplied), static description, no
// medical facility.
func (s *LocationContextService) degraded(coord domain.Coordinate, lang domain.Language, manualAddress string) domain.LocationContext {
	address := coord.GPSString()
	if manualAddress != "" {
		address = manualAddress
	}
	return domain.LocationContext{
		Address:     address,
		Description: FallbackDescription(lang),
	}
}

// parseLocationResponse splits the model output into non-empty lines:
// line 1 address, line 2 medical facility, remaining lines joined into the
// description. Known label prefixes are stripped.
func parseLocationResponse(text string, coord domain.Coordinate, lang domain.Language, manualAddress string) domain.LocationContext {
	lines := nonEmptyLines(text)

	var address, medical, description string
	if len(lines) > 0 {
		address = stripLabel(lines[0], addressLabels)
	}
	if len(lines) > 1 {
		medical = stripLabel(lines[1], hospitalLabels)
	}
	if len(lines) > 2 {
		description = stripLabel(strings.Join(lines[2:], "\n"), descriptionLabels)
	}

	if utf8.RuneCountInString(address) < minAddressLength {
		if manualAddress != "" {
			address = manualAddress
		} else {
			address = coord.GPSString()
		}
	}
	if description == "" {
		description = FallbackDescription(lang)
	}

	return domain.LocationContext{
		Address:         address,
		Description:     description,
		MedicalFacility: medical,
	}
}

// nonEmptyLines splits text by newline and drops blank lines.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	return lines
}

// stripLabel removes the first matching label prefix, case-insensitively.
func stripLabel(line string, labels []string) string {
	for _, label := range labels {
		if len(line) >= len(label) && strings.EqualFold(line[:len(label)], label) {
			return strings.TrimSpace(line[len(label):])
		}
	}
	return strings.TrimSpace(line)
}
