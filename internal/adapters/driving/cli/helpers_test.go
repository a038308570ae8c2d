package cli

import (
	"context"

	"github.com/lumar-safety/orient/internal/adapters/driven/storage/memory"
	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/core/services"
)

// stubReports returns a canned report.
type stubReports struct {
	report *domain.OrientationReport
	err    error
	params driving.ReportParams
}

func (s *stubReports) Generate(_ context.Context, params driving.ReportParams) (*domain.OrientationReport, error) {
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

// stubExtractor returns a canned extraction.
type stubExtractor struct {
	result domain.ExtractedAddress
}

func (s *stubExtractor) Extract(_ context.Context, _ string) domain.ExtractedAddress {
	return s.result
}

// stubChat satisfies the chat port without a model.
type stubChat struct{}

func (s *stubChat) NewSession(_ domain.Language) (driving.FirstAidSession, error) {
	return nil, domain.ErrModelUnavailable
}

func (s *stubChat) Session(_ string) (driving.FirstAidSession, bool) {
	return nil, false
}

// stubPosition returns a canned fix.
type stubPosition struct {
	coord *domain.Coordinate
	err   error
}

func (s *stubPosition) Locate(_ context.Context, _ driven.LocateOptions) (*domain.Coordinate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.coord, nil
}

func (s *stubPosition) Name() string { return "stub" }

func sampleReport() *domain.OrientationReport {
	coord := domain.Coordinate{Latitude: 48.2082, Longitude: 16.3738, AccuracyMeters: 12}
	return &domain.OrientationReport{
		Coordinate: coord,
		Context: domain.LocationContext{
			Address:     "Stephansplatz 1, 1010 Wien",
			Description: "Stadtzentrum, dichte Bebauung",
		},
		Language:         domain.LanguageGerman,
		RescueChain:      services.RescueChain(domain.LanguageGerman),
		EmergencyNumbers: domain.EmergencyNumbers,
		MapURL:           coord.MapsSearchURL(),
		HospitalMapURL:   coord.HospitalSearchURL(),
		Accuracy:         coord.Rating(),
	}
}

// setupTestServices wires stub services into the command tree and returns a
// cleanup restoring the previous wiring.
func setupTestServices() func() {
	prevReports := reportService
	prevExtract := extractService
	prevChat := chatService
	prevSettings := settingsService
	prevPosition := positionSource
	prevValidate := validateModels

	reportService = &stubReports{report: sampleReport()}
	extractService = &stubExtractor{result: domain.ExtractedAddress{
		Street:      "Hauptstraße",
		HouseNumber: "12",
		PostalCode:  "1010",
		City:        "Wien",
		Confidence:  domain.ConfidenceHigh,
	}}
	chatService = &stubChat{}
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	positionSource = &stubPosition{coord: &domain.Coordinate{
		Latitude: 48.2082, Longitude: 16.3738, AccuracyMeters: 9,
	}}
	validateModels = nil

	return func() {
		reportService = prevReports
		extractService = prevExtract
		chatService = prevChat
		settingsService = prevSettings
		positionSource = prevPosition
		validateModels = prevValidate
	}
}
