package geo

import (
	"context"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Ensure StaticSource implements the interface.
var _ driven.PositionSource = (*StaticSource)(nil)

// StaticSource serves a surveyed site position from configuration. Used on
// fixed installations (site office terminals) where the position is known
// and no fix hardware exists.
type StaticSource struct {
	coord domain.Coordinate
	set   bool
}

// NewStaticSource creates a source pinned to the given position.
func NewStaticSource(lat, lng float64) *StaticSource {
	return &StaticSource{
		coord: domain.Coordinate{Latitude: lat, Longitude: lng},
		set:   lat != 0 || lng != 0,
	}
}

// Locate returns the configured position, or GeoUnsupported when none was
// configured.
func (s *StaticSource) Locate(_ context.Context, _ driven.LocateOptions) (*domain.Coordinate, error) {
	if !s.set {
		return nil, domain.NewGeoError(domain.GeoUnsupported, nil)
	}
	coord := s.coord
	return &coord, nil
}

// Name identifies the source.
func (s *StaticSource) Name() string {
	return "static"
}
