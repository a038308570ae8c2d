package services

import (
	"context"
	"strings"
	"time"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportGenerator = (*ReportService)(nil)

// defaultCoordinate anchors a manual-address report when no position fix
// could be obtained. Vienna city centre, like the original deployment.
var defaultCoordinate = domain.Coordinate{Latitude: 48.2082, Longitude: 16.3738}

// ReportService assembles the complete orientation sheet model from a
// position fix (or manual address) and the resolved location context.
type ReportService struct {
	resolver driving.LocationResolver
	position driven.PositionSource
	locate   driven.LocateOptions
}

// NewReportService creates a new report service. The position source may be
// nil when every caller supplies coordinates; a locate attempt then fails
// as unsupported.
func NewReportService(resolver driving.LocationResolver, position driven.PositionSource) *ReportService {
	return &ReportService{
		resolver: resolver,
		position: position,
		locate:   driven.DefaultLocateOptions(),
	}
}

// Generate runs one report attempt end to end. A position failure in the
// locate-first flow propagates as *domain.GeoError for the caller to map to
// a retryable error state; with a manual address the default coordinate is
// substituted instead, and service-level failures never propagate at all.
func (s *ReportService) Generate(ctx context.Context, params driving.ReportParams) (*domain.OrientationReport, error) {
	lang := params.Language
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	if !lang.IsValid() {
		return nil, domain.ErrUnsupportedLanguage
	}
	manualAddress := strings.TrimSpace(params.ManualAddress)

	coord, err := s.resolveCoordinate(ctx, params.Coordinate, manualAddress)
	if err != nil {
		return nil, err
	}

	locCtx := s.resolver.Resolve(ctx, coord, lang, manualAddress)

	mapURL := locCtx.MapURL
	if mapURL == "" {
		mapURL = coord.MapsSearchURL()
	}

	return &domain.OrientationReport{
		Coordinate:       coord,
		Context:          locCtx,
		Language:         lang,
		RescueChain:      RescueChain(lang),
		EmergencyNumbers: domain.EmergencyNumbers,
		MapURL:           mapURL,
		HospitalMapURL:   coord.HospitalSearchURL(),
		Accuracy:         coord.Rating(),
		ManualAddress:    manualAddress,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

// resolveCoordinate picks the report position: the supplied coordinate, a
// fresh fix, or (manual-address flow only) the default anchor when fixing
// failed.
func (s *ReportService) resolveCoordinate(ctx context.Context, given *domain.Coordinate, manualAddress string) (domain.Coordinate, error) {
	if given != nil {
		return *given, nil
	}

	if s.position == nil {
		if manualAddress != "" {
			return defaultCoordinate, nil
		}
		return domain.Coordinate{}, domain.NewGeoError(domain.GeoUnsupported, nil)
	}

	coord, err := s.position.Locate(ctx, s.locate)
	if err != nil {
		if manualAddress != "" {
			logger.Warn("position fix failed, using default anchor for manual address: %v", err)
			return defaultCoordinate, nil
		}
		return domain.Coordinate{}, err
	}
	return *coord, nil
}
