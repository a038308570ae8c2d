package driven

// ConfigStore provides persistent key-value configuration storage.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	GetBool(key string) bool

	// GetFloat retrieves a floating-point configuration value.
	GetFloat(key string) float64

	// Set stores a configuration value.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Prompt template names understood by the PromptStore.
const (
	// PromptLocationContext is the grounded three-line resolution prompt.
	PromptLocationContext = "location_context"

	// PromptLocationContextManual pins a known address and asks only for
	// hospital and surroundings.
	PromptLocationContextManual = "location_context_manual"

	// PromptAddressExtraction is the structured-extraction contract.
	PromptAddressExtraction = "address_extraction"

	// PromptFirstAidSystem is the chat system instruction.
	PromptFirstAidSystem = "first_aid_system"
)

// PromptStore provides customisable prompt templates. Implementations fall
// back to embedded defaults when a template is unavailable.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}

// SessionStore keeps live chat sessions by ID. Values are opaque to the
// store; the owning service puts and asserts its own session type. Sessions
// are process-local and never persisted.
type SessionStore interface {
	// Put registers a session under its ID.
	Put(id string, session any) error

	// Get retrieves a session by ID.
	Get(id string) (any, bool)

	// Delete removes a session.
	Delete(id string) error

	// Count returns the number of live sessions.
	Count() int
}
