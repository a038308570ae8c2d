package driving

import (
	"context"

	"github.com/lumar-safety/orient/internal/core/domain"
)

// LocationResolver turns a coordinate (and optionally a manually supplied
// address) into a displayable location context. Resolve never fails: every
// error path degrades into a context with fallback values.
type LocationResolver interface {
	Resolve(ctx context.Context, coord domain.Coordinate, lang domain.Language, manualAddress string) domain.LocationContext
}

// AddressExtractor pulls a structured postal address out of free-form text.
// Extract never fails: transport or parsing problems degrade to the
// all-empty low-confidence result.
type AddressExtractor interface {
	Extract(ctx context.Context, freeText string) domain.ExtractedAddress
}

// ReportParams select the entry point for one report-generation attempt.
type ReportParams struct {
	// Coordinate is the known position. Nil means the position source
	// should be asked for a fix.
	Coordinate *domain.Coordinate

	// ManualAddress substitutes an extracted address for the resolved
	// one. With a manual address, a position failure falls back to the
	// default coordinate instead of aborting.
	ManualAddress string

	// Language selects prompt and content language.
	Language domain.Language
}

// ReportGenerator runs the full pipeline: position, location context,
// rescue chain, map links - the complete orientation sheet model.
type ReportGenerator interface {
	// Generate assembles a report. It returns *domain.GeoError when a
	// required position fix failed; service errors never propagate.
	Generate(ctx context.Context, params ReportParams) (*domain.OrientationReport, error)
}

// FirstAidSession is one conversational first-aid session owned by its
// caller, with an explicit create/dispose lifecycle.
type FirstAidSession interface {
	// ID identifies the session in the registry.
	ID() string

	// Language returns the session language.
	Language() domain.Language

	// Send submits one turn. At least one of text/image must be present.
	// Provider failures do not error: the returned assistant message
	// carries a fixed localized safety text and the session stays usable.
	Send(ctx context.Context, text string, image *domain.ImageAttachment) (domain.ChatMessage, error)

	// History returns the ordered messages exchanged so far.
	History() []domain.ChatMessage

	// Close disposes the session and removes it from the registry.
	Close() error
}

// FirstAidChat creates and looks up first-aid chat sessions.
type FirstAidChat interface {
	// NewSession opens a session preconfigured with the localized
	// safety-first system instruction.
	NewSession(lang domain.Language) (FirstAidSession, error)

	// Session retrieves a live session by ID.
	Session(id string) (FirstAidSession, bool)
}
