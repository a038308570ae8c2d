package services

import (
	"os"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Configuration keys.
const (
	keyAPIKey       = "model.api_key"
	keyResolveModel = "model.resolve"
	keyChatModel    = "model.chat"
	keyGeoUseAPI    = "geo.use_geolocation_api"
	keyGeoStaticLat = "geo.static_latitude"
	keyGeoStaticLng = "geo.static_longitude"
	keyLanguage     = "language"
	keyListenAddr   = "listen_addr"
)

// Environment variables that override the stored API key. ORIENT_API_KEY
// wins; GEMINI_API_KEY is accepted for parity with the provider tooling.
const (
	EnvAPIKey         = "ORIENT_API_KEY"
	EnvProviderAPIKey = "GEMINI_API_KEY"
)

// SettingsService reads and persists the application configuration through
// a ConfigStore, layering environment overrides on top.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the effective settings: defaults, overridden by stored
// values, overridden by environment variables.
func (s *SettingsService) Get() *domain.AppSettings {
	settings := domain.DefaultAppSettings()
	if s.store != nil {
		if v := s.store.GetString(keyAPIKey); v != "" {
			settings.Model.APIKey = v
		}
		if v := s.store.GetString(keyResolveModel); v != "" {
			settings.Model.ResolveModel = v
		}
		if v := s.store.GetString(keyChatModel); v != "" {
			settings.Model.ChatModel = v
		}
		if _, ok := s.store.Get(keyGeoUseAPI); ok {
			settings.Geo.UseGeolocationAPI = s.store.GetBool(keyGeoUseAPI)
		}
		settings.Geo.StaticLatitude = s.store.GetFloat(keyGeoStaticLat)
		settings.Geo.StaticLongitude = s.store.GetFloat(keyGeoStaticLng)
		if lang, err := domain.ParseLanguage(s.store.GetString(keyLanguage)); err == nil {
			settings.Language = lang
		}
		if v := s.store.GetString(keyListenAddr); v != "" {
			settings.ListenAddr = v
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		settings.Model.APIKey = v
	} else if v := os.Getenv(EnvProviderAPIKey); v != "" {
		settings.Model.APIKey = v
	}
	return settings
}

// Save persists the settings. The API key is only written when set, so an
// environment-provided key does not end up on disk by accident.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.store == nil {
		return domain.ErrNotFound
	}
	if settings.Model.APIKey != "" && os.Getenv(EnvAPIKey) == "" && os.Getenv(EnvProviderAPIKey) == "" {
		if err := s.store.Set(keyAPIKey, settings.Model.APIKey); err != nil {
			return err
		}
	}
	if err := s.store.Set(keyResolveModel, settings.Model.ResolveModel); err != nil {
		return err
	}
	if err := s.store.Set(keyChatModel, settings.Model.ChatModel); err != nil {
		return err
	}
	if err := s.store.Set(keyGeoUseAPI, settings.Geo.UseGeolocationAPI); err != nil {
		return err
	}
	if err := s.store.Set(keyGeoStaticLat, settings.Geo.StaticLatitude); err != nil {
		return err
	}
	if err := s.store.Set(keyGeoStaticLng, settings.Geo.StaticLongitude); err != nil {
		return err
	}
	if err := s.store.Set(keyLanguage, settings.Language.String()); err != nil {
		return err
	}
	return s.store.Set(keyListenAddr, settings.ListenAddr)
}

// SetAPIKey stores the provider credential.
func (s *SettingsService) SetAPIKey(key string) error {
	if s.store == nil {
		return domain.ErrNotFound
	}
	return s.store.Set(keyAPIKey, key)
}
