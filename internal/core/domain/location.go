package domain

import "fmt"

// Coordinate is a single position fix. It is produced once per locate
// attempt and never mutated afterwards.
type Coordinate struct {
	// Latitude in decimal degrees, positive north.
	Latitude float64 `json:"latitude"`

	// Longitude in decimal degrees, positive east.
	Longitude float64 `json:"longitude"`

	// AccuracyMeters is the estimated radius of the fix in meters.
	// Zero means the source did not report an accuracy.
	AccuracyMeters float64 `json:"accuracy_meters,omitempty"`
}

// GPSString renders the coordinate in the canonical six-decimal form used
// as the address fallback and in shared/exported text.
func (c Coordinate) GPSString() string {
	return fmt.Sprintf("GPS: %.6f, %.6f", c.Latitude, c.Longitude)
}

// MapsSearchURL returns a Google Maps deep link pinned to the coordinate.
func (c Coordinate) MapsSearchURL() string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", c.Latitude, c.Longitude)
}

// HospitalSearchURL returns a Google Maps search for hospitals around the
// coordinate at a close zoom level.
func (c Coordinate) HospitalSearchURL() string {
	return fmt.Sprintf("https://www.google.com/maps/search/hospital/@%v,%v,14z", c.Latitude, c.Longitude)
}

// AccuracyRating is a coarse quality label for a position fix, used by the
// report consumers to colour the accuracy indicator.
type AccuracyRating string

// Accuracy ratings. Below 20 m is good, above 100 m is poor.
const (
	AccuracyGood    AccuracyRating = "good"
	AccuracyFair    AccuracyRating = "fair"
	AccuracyPoor    AccuracyRating = "poor"
	AccuracyUnknown AccuracyRating = "unknown"
)

// Rating classifies the fix accuracy.
func (c Coordinate) Rating() AccuracyRating {
	switch {
	case c.AccuracyMeters <= 0:
		return AccuracyUnknown
	case c.AccuracyMeters < 20:
		return AccuracyGood
	case c.AccuracyMeters > 100:
		return AccuracyPoor
	default:
		return AccuracyFair
	}
}

// LocationContext is the resolved description of a coordinate. Address and
// Description are always present; when resolution fails they carry fallback
// values so a report can always render. MedicalFacility and MapURL are
// best-effort and may be empty.
type LocationContext struct {
	// Address is the verified postal address, or the coordinate string
	// fallback when resolution failed or returned nothing usable.
	Address string `json:"address"`

	// Description is a short characterisation of the surroundings
	// (forest, industrial zone, motorway, ...).
	Description string `json:"description"`

	// MedicalFacility names the nearest hospital with its address.
	MedicalFacility string `json:"medical_facility,omitempty"`

	// MapURL is a maps deep link taken from the model's grounding
	// citations when one was exposed.
	MapURL string `json:"map_url,omitempty"`
}

// GeoErrorKind classifies a position-fix failure. Every failed locate
// attempt maps to exactly one kind.
type GeoErrorKind string

// Position failure classes.
const (
	GeoPermissionDenied    GeoErrorKind = "permission_denied"
	GeoPositionUnavailable GeoErrorKind = "position_unavailable"
	GeoTimeout             GeoErrorKind = "timeout"
	GeoUnsupported         GeoErrorKind = "unsupported"
)

// GeoError is a classified position-fix failure. Callers map the kind to a
// localized user-facing message and offer an explicit retry; no retry
// happens inside the pipeline.
type GeoError struct {
	Kind  GeoErrorKind
	Cause error
}

// Error implements the error interface.
func (e *GeoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("geolocation %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("geolocation %s", e.Kind)
}

// Unwrap exposes the underlying cause.
func (e *GeoError) Unwrap() error {
	return e.Cause
}

// NewGeoError builds a classified position failure.
func NewGeoError(kind GeoErrorKind, cause error) *GeoError {
	return &GeoError{Kind: kind, Cause: cause}
}
