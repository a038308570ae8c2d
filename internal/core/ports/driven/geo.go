package driven

import (
	"context"
	"time"

	"github.com/lumar-safety/orient/internal/core/domain"
)

// PositionSource wraps a position-fixing capability. Locate issues exactly
// one underlying request; failures come back as *domain.GeoError with
// exactly one kind. No retry is attempted by the source.
type PositionSource interface {
	// Locate requests a single position fix.
	Locate(ctx context.Context, opts LocateOptions) (*domain.Coordinate, error)

	// Name identifies the source in logs and diagnostics.
	Name() string
}

// LocateOptions mirror the platform position-request parameters.
type LocateOptions struct {
	// HighAccuracy requests the most precise fix available.
	HighAccuracy bool

	// Timeout is the hard deadline for the fix. Exceeding it yields a
	// GeoTimeout classification, never GeoPositionUnavailable.
	Timeout time.Duration

	// MaxCacheAge is the oldest acceptable cached fix. Zero forces a
	// fresh fix.
	MaxCacheAge time.Duration
}

// DefaultLocateOptions are the standard request parameters: high accuracy,
// 20 s timeout, no cached fixes.
func DefaultLocateOptions() LocateOptions {
	return LocateOptions{
		HighAccuracy: true,
		Timeout:      20 * time.Second,
		MaxCacheAge:  0,
	}
}
