package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/logger"
)

// Ensure AddressExtractionService implements the interface.
var _ driving.AddressExtractor = (*AddressExtractionService)(nil)

// extractionFailureNote is recorded on the degraded result so the UI can
// tell the user extraction did not run rather than found nothing.
const extractionFailureNote = "Extraktion fehlgeschlagen"

// AddressExtractionService pulls a structured postal address out of
// free-form text using the model's schema-validated output mode.
type AddressExtractionService struct {
	model   driven.LanguageModel
	prompts driven.PromptStore
}

// NewAddressExtractionService creates a new address extraction service.
func NewAddressExtractionService(model driven.LanguageModel, prompts driven.PromptStore) *AddressExtractionService {
	return &AddressExtractionService{
		model:   model,
		prompts: prompts,
	}
}

// extractionResult mirrors the response schema. All address fields are
// nullable; confidence is required.
type extractionResult struct {
	Street      *string `json:"street"`
	HouseNumber *string `json:"houseNumber"`
	PostalCode  *string `json:"postalCode"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	SourceText  *string `json:"sourceText"`
	Confidence  string  `json:"confidence"`
	Notes       *string `json:"notes"`
}

// Extract sends the text to the extraction model and returns the structured
// address. It never returns an error: blank input, transport failures and
// malformed responses all degrade to the all-empty low-confidence result.
func (s *AddressExtractionService) Extract(ctx context.Context, freeText string) domain.ExtractedAddress {
	freeText = strings.TrimSpace(freeText)
	if freeText == "" {
		return domain.EmptyExtraction("")
	}
	if s.model == nil {
		logger.Warn("address extraction skipped: %v", domain.ErrModelUnavailable)
		return domain.EmptyExtraction(extractionFailureNote)
	}

	raw, err := s.model.GenerateStructured(ctx, driven.StructuredRequest{
		SystemInstruction: loadPrompt(s.prompts, driven.PromptAddressExtraction),
		Prompt:            freeText,
		Schema:            extractionSchema(),
	})
	if err != nil {
		logger.Warn("address extraction degraded: %v", err)
		return domain.EmptyExtraction(extractionFailureNote)
	}

	var res extractionResult
	if err := json.Unmarshal(raw, &res); err != nil {
		logger.Warn("address extraction returned malformed JSON: %v", err)
		return domain.EmptyExtraction(extractionFailureNote)
	}

	confidence := domain.Confidence(res.Confidence)
	if !confidence.IsValid() {
		// A schema violation on the one required field is treated like a
		// malformed response, not trusted partially.
		logger.Warn("address extraction returned unknown confidence %q", res.Confidence)
		return domain.EmptyExtraction(extractionFailureNote)
	}

	return domain.ExtractedAddress{
		Street:      deref(res.Street),
		HouseNumber: deref(res.HouseNumber),
		PostalCode:  deref(res.PostalCode),
		City:        deref(res.City),
		Country:     deref(res.Country),
		SourceText:  deref(res.SourceText),
		Confidence:  confidence,
		Notes:       deref(res.Notes),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
