// Package geo provides position source adapters.
package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Ensure GeolocateSource implements the interface.
var _ driven.PositionSource = (*GeolocateSource)(nil)

// DefaultGeolocateURL is the Google Geolocation API endpoint.
const DefaultGeolocateURL = "https://www.googleapis.com/geolocation/v1/geolocate"

// GeolocateConfig holds configuration for the Geolocation API source.
type GeolocateConfig struct {
	// APIKey is the Google API key (required).
	APIKey string

	// BaseURL is the endpoint URL (default: the public endpoint).
	BaseURL string
}

// GeolocateSource obtains a position fix from the Google Geolocation API,
// which estimates the device position from visible networks. Useful when no
// GPS receiver is available, at the cost of accuracy.
type GeolocateSource struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// geolocateRequest is the Geolocation API request format. considerIp lets
// the API fall back to an IP-based estimate.
type geolocateRequest struct {
	ConsiderIP bool `json:"considerIp"`
}

// geolocateResponse is the Geolocation API response format.
type geolocateResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
	Error    *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// NewGeolocateSource creates a new Geolocation API source.
func NewGeolocateSource(cfg GeolocateConfig) (*GeolocateSource, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geolocate: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultGeolocateURL
	}
	return &GeolocateSource{
		client:  &http.Client{},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// Locate requests a single position fix. Failures are classified: a missed
// deadline is always GeoTimeout, a rejected key is GeoPermissionDenied, and
// everything else is GeoPositionUnavailable.
func (s *GeolocateSource) Locate(ctx context.Context, opts driven.LocateOptions) (*domain.Coordinate, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	jsonBody, err := json.Marshal(geolocateRequest{ConsiderIP: true})
	if err != nil {
		return nil, domain.NewGeoError(domain.GeoPositionUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"?key="+s.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, domain.NewGeoError(domain.GeoPositionUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domain.NewGeoError(domain.GeoTimeout, err)
		}
		return nil, domain.NewGeoError(domain.GeoPositionUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewGeoError(domain.GeoPositionUnavailable, err)
	}

	var geoResp geolocateResponse
	if err := json.Unmarshal(body, &geoResp); err != nil {
		return nil, domain.NewGeoError(domain.GeoPositionUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, domain.NewGeoError(domain.GeoPermissionDenied, apiErr(geoResp, resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return nil, domain.NewGeoError(domain.GeoPositionUnavailable, apiErr(geoResp, resp.StatusCode))
	}

	return &domain.Coordinate{
		Latitude:       geoResp.Location.Lat,
		Longitude:      geoResp.Location.Lng,
		AccuracyMeters: geoResp.Accuracy,
	}, nil
}

// Name identifies the source.
func (s *GeolocateSource) Name() string {
	return "geolocation-api"
}

func apiErr(resp geolocateResponse, status int) error {
	if resp.Error != nil {
		return fmt.Errorf("geolocation API %s: %s", resp.Error.Status, resp.Error.Message)
	}
	return fmt.Errorf("geolocation API returned status %d", status)
}
