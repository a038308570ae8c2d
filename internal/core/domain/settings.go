package domain

// Default model identifiers. Resolution and extraction use the fast model;
// the first-aid chat runs on the stronger one.
const (
	DefaultResolveModel = "gemini-2.5-flash"
	DefaultChatModel    = "gemini-3-pro-preview"
)

// ModelSettings configures the language-model provider.
type ModelSettings struct {
	// APIKey is the provider credential (required).
	APIKey string

	// ResolveModel handles location resolution and address extraction.
	ResolveModel string

	// ChatModel handles the first-aid conversation.
	ChatModel string
}

// IsConfigured returns true if the provider credential is present.
func (s *ModelSettings) IsConfigured() bool {
	return s != nil && s.APIKey != ""
}

// GeoSettings configures the position source.
type GeoSettings struct {
	// UseGeolocationAPI enables the Google Geolocation API source.
	UseGeolocationAPI bool

	// StaticLatitude/StaticLongitude pin a surveyed site position used by
	// the static source. Both zero means unconfigured.
	StaticLatitude  float64
	StaticLongitude float64
}

// HasStaticPosition reports whether a surveyed position is configured.
func (s *GeoSettings) HasStaticPosition() bool {
	return s != nil && (s.StaticLatitude != 0 || s.StaticLongitude != 0)
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Model    ModelSettings
	Geo      GeoSettings
	Language Language

	// ListenAddr is the HTTP API bind address for serve mode.
	ListenAddr string
}

// DefaultAppSettings returns the configuration used before anything was
// stored.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Model: ModelSettings{
			ResolveModel: DefaultResolveModel,
			ChatModel:    DefaultChatModel,
		},
		Geo:        GeoSettings{UseGeolocationAPI: true},
		Language:   DefaultLanguage,
		ListenAddr: ":8492",
	}
}
