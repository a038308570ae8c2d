package domain

import "strings"

// Confidence is the coarse trust label attached to an extracted address.
// It is a UI signal, not a probability.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// IsValid returns true if the confidence literal is one of the three levels.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}

// String returns the literal.
func (c Confidence) String() string {
	return string(c)
}

// ExtractedAddress is a structured postal address pulled out of free-form
// text by the extraction model. Any field may be empty; values must be
// traceable to the input text. Confidence is always one of the three
// literals.
type ExtractedAddress struct {
	Street      string `json:"street,omitempty"`
	HouseNumber string `json:"house_number,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`

	// SourceText is the fragment of the input the address was taken from.
	SourceText string `json:"source_text,omitempty"`

	Confidence Confidence `json:"confidence"`

	// Notes carries caveats from the extractor, or the failure reason when
	// extraction degraded to the empty low-confidence result.
	Notes string `json:"notes,omitempty"`
}

// EmptyExtraction returns the degraded all-null result used for blank input
// and provider failures.
func EmptyExtraction(notes string) ExtractedAddress {
	return ExtractedAddress{
		Confidence: ConfidenceLow,
		Notes:      notes,
	}
}

// DisplayAddress formats the single display string
// "{street} {houseNumber}, {postalCode} {city}", collapsing missing parts.
// An empty result means no usable address was found.
func (a ExtractedAddress) DisplayAddress() string {
	left := strings.TrimSpace(strings.Join(nonEmpty(a.Street, a.HouseNumber), " "))
	right := strings.TrimSpace(strings.Join(nonEmpty(a.PostalCode, a.City), " "))

	switch {
	case left == "" && right == "":
		return ""
	case left == "":
		return right
	case right == "":
		return left
	default:
		return left + ", " + right
	}
}

// HasAddress reports whether any address component was extracted.
func (a ExtractedAddress) HasAddress() bool {
	return a.DisplayAddress() != ""
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}
