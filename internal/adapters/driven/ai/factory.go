// Package ai provides factory functions for creating model and position
// source adapters from application settings.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/lumar-safety/orient/internal/adapters/driven/geo"
	"github.com/lumar-safety/orient/internal/adapters/driven/llm/gemini"
	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// Models bundles the two model bindings the pipeline needs: the fast one
// for resolution and extraction, the strong one for the first-aid chat.
type Models struct {
	Resolve driven.LanguageModel
	Chat    driven.LanguageModel
}

// Close releases both model bindings.
func (m *Models) Close() {
	if m.Resolve != nil {
		m.Resolve.Close()
	}
	if m.Chat != nil {
		m.Chat.Close()
	}
}

// CreateModels creates the model bindings from settings. A missing API key
// fails fast with domain.ErrAPIKeyMissing: no feature works without it, so
// there is no degraded mode to fall back to.
func CreateModels(settings *domain.ModelSettings) (*Models, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, domain.ErrAPIKeyMissing
	}

	resolve, err := gemini.NewService(gemini.Config{
		APIKey: settings.APIKey,
		Model:  modelOr(settings.ResolveModel, domain.DefaultResolveModel),
	})
	if err != nil {
		return nil, fmt.Errorf("create resolve model: %w", err)
	}

	chat, err := gemini.NewService(gemini.Config{
		APIKey: settings.APIKey,
		Model:  modelOr(settings.ChatModel, domain.DefaultChatModel),
	})
	if err != nil {
		resolve.Close()
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	return &Models{Resolve: resolve, Chat: chat}, nil
}

// ValidateModelConfig validates the provider credential by creating a model
// binding and pinging it. Intended for the settings flow, so a bad key is
// caught at configuration time instead of on site.
func ValidateModelConfig(settings *domain.ModelSettings) error {
	models, err := CreateModels(settings)
	if err != nil {
		return err
	}
	defer models.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return models.Resolve.Ping(ctx)
}

// CreatePositionSource creates the position source from settings: the
// Google Geolocation API when enabled, otherwise the configured static
// position. Returns nil when neither is available; report generation then
// requires explicit coordinates or a manual address.
func CreatePositionSource(settings *domain.AppSettings) driven.PositionSource {
	if settings == nil {
		return nil
	}

	if settings.Geo.UseGeolocationAPI && settings.Model.APIKey != "" {
		src, err := geo.NewGeolocateSource(geo.GeolocateConfig{APIKey: settings.Model.APIKey})
		if err == nil {
			return src
		}
	}

	if settings.Geo.HasStaticPosition() {
		return geo.NewStaticSource(settings.Geo.StaticLatitude, settings.Geo.StaticLongitude)
	}
	return nil
}

func modelOr(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}
