// Package gemini provides a language model adapter using the Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Ensure Service implements the interface.
var _ driven.LanguageModel = (*Service)(nil)

// Default configuration values.
const (
	DefaultBaseURL           = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout           = 60 * time.Second
	DefaultRequestsPerMinute = 30
)

// Config holds configuration for the Gemini service.
type Config struct {
	// APIKey is the Gemini API key (required).
	APIKey string

	// BaseURL is the API base URL (default: the public endpoint).
	BaseURL string

	// Model is the model identifier (required, e.g. gemini-2.5-flash).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// RequestsPerMinute caps the upstream request rate (default: 30).
	RequestsPerMinute int
}

// Service provides language model operations using the Gemini API. One
// Service is bound to one model identifier; callers needing both the
// resolve and the chat model create two instances.
type Service struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	apiKey  string
	model   string
}

// NewService creates a new Gemini service.
func NewService(cfg Config) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini: model is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerMinute == 0 {
		cfg.RequestsPerMinute = DefaultRequestsPerMinute
	}

	return &Service{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// GenerateGrounded produces free text with the Google Maps grounding tool
// anchored to the request coordinate.
func (s *Service) GenerateGrounded(ctx context.Context, req driven.GroundedRequest) (*driven.GroundedResult, error) {
	body := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: req.Prompt}}},
		},
		Tools: []tool{{GoogleMaps: &struct{}{}}},
		ToolConfig: &toolConfig{
			RetrievalConfig: &retrievalConfig{
				LatLng: &latLng{
					Latitude:  req.Anchor.Latitude,
					Longitude: req.Anchor.Longitude,
				},
			},
		},
	}

	cand, err := s.generate(ctx, body)
	if err != nil {
		return nil, err
	}
	return &driven.GroundedResult{
		Text:   cand.text(),
		MapURL: cand.mapURL(),
	}, nil
}

// GenerateStructured produces JSON conforming to the request schema via the
// structured-output mode.
func (s *Service) GenerateStructured(ctx context.Context, req driven.StructuredRequest) (json.RawMessage, error) {
	body := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: req.Prompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   toSchema(req.Schema),
		},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}

	cand, err := s.generate(ctx, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(cand.text()), nil
}

// generate is the internal :generateContent call shared by all operations.
func (s *Service) generate(ctx context.Context, body generateRequest) (*candidate, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("gemini: rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if genResp.Error != nil {
		return nil, fmt.Errorf("gemini error (status %s): %s", genResp.Error.Status, genResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini error (status %d): %s", resp.StatusCode, string(respBody))
	}
	if len(genResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates returned")
	}
	return &genResp.Candidates[0], nil
}

// ModelName returns the model identifier in use.
func (s *Service) ModelName() string {
	return s.model
}

// Ping validates the API key by fetching the model metadata. This is a
// lightweight check that does not run inference.
func (s *Service) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/models/%s", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("gemini: failed to create ping request: %w", err)
	}
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("gemini: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("gemini: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("gemini: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// Close releases resources.
func (s *Service) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
