package domain

import (
	"fmt"
	"time"
)

// EmergencyNumbers are the dial shortcuts printed on every orientation
// sheet: 112 (European emergency number) and 144 (rescue service).
var EmergencyNumbers = []string{"112", "144"}

// RescueStep is one entry of the static five-step rescue chain.
type RescueStep struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OrientationReport is the fully assembled, displayable and exportable
// model of one report-generation attempt. Every field is always populated
// (with fallbacks where resolution degraded) so presentation and export
// never have to handle missing data.
type OrientationReport struct {
	Coordinate Coordinate      `json:"coordinate"`
	Context    LocationContext `json:"context"`
	Language   Language        `json:"language"`

	// RescueChain is the localized five-step checklist.
	RescueChain []RescueStep `json:"rescue_chain"`

	// EmergencyNumbers are the dial shortcuts for the sheet.
	EmergencyNumbers []string `json:"emergency_numbers"`

	// MapURL is always present: the grounding deep link when the model
	// exposed one, otherwise a maps search pinned to the coordinate.
	MapURL string `json:"map_url"`

	// HospitalMapURL searches for hospitals around the coordinate.
	HospitalMapURL string `json:"hospital_map_url"`

	// Accuracy classifies the position fix quality.
	Accuracy AccuracyRating `json:"accuracy"`

	// ManualAddress is set when the location came from extracted text
	// instead of a position fix.
	ManualAddress string `json:"manual_address,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ShareText renders the short SMS-style payload with coordinates and a map
// link, used by the share dialog and kept stable for exports.
func (r *OrientationReport) ShareText() string {
	return fmt.Sprintf("LUMAR Safety Info. %s. Map: https://maps.google.com/?q=%v,%v",
		r.Coordinate.GPSString(), r.Coordinate.Latitude, r.Coordinate.Longitude)
}
