package driven

import (
	"context"
	"encoding/json"

	"github.com/lumar-safety/orient/internal/core/domain"
)

// LanguageModel provides the three hosted-model operations the pipeline
// needs: grounded free-text generation, schema-validated extraction, and a
// stateful chat session. Implementations perform exactly one upstream
// request per call; retry is a caller-level policy.
type LanguageModel interface {
	// GenerateGrounded produces free text for a prompt with a maps
	// grounding tool anchored to a coordinate, so the answer is
	// constrained to facts near that point.
	GenerateGrounded(ctx context.Context, req GroundedRequest) (*GroundedResult, error)

	// GenerateStructured produces JSON conforming to the request schema.
	GenerateStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error)

	// StartChat opens a multi-turn session bound to a system instruction.
	// History is carried inside the session between Send calls.
	StartChat(cfg ChatConfig) ChatSession

	// ModelName returns the resolve-model identifier in use.
	ModelName() string

	// Ping validates the provider credential with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GroundedRequest asks for free text grounded near a coordinate.
type GroundedRequest struct {
	// Prompt is the full instruction, already in the target language.
	Prompt string

	// Anchor binds the grounding tool to this position.
	Anchor domain.Coordinate
}

// GroundedResult is the model answer plus optional grounding citation data.
type GroundedResult struct {
	// Text is the raw model output.
	Text string

	// MapURL is a maps deep link lifted from the grounding citations,
	// empty when the provider exposed none.
	MapURL string
}

// StructuredRequest asks for schema-validated JSON output.
type StructuredRequest struct {
	// SystemInstruction fixes the extraction contract.
	SystemInstruction string

	// Prompt carries the user input.
	Prompt string

	// Schema constrains the response shape.
	Schema *Schema
}

// Schema is a minimal JSON-schema subset understood by the provider's
// structured-output mode.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
}

// ChatConfig configures a chat session at creation time.
type ChatConfig struct {
	// SystemInstruction biases every turn of the conversation.
	SystemInstruction string
}

// ChatTurn is one user submission: text, an image, or both.
type ChatTurn struct {
	Text  string
	Image *domain.ImageAttachment
}

// ChatSession is a stateful conversation with the provider. Sessions are
// not safe for concurrent Send calls; callers serialise turns.
type ChatSession interface {
	// Send submits a turn and returns the assistant text. The turn and
	// the answer are appended to the session history.
	Send(ctx context.Context, turn ChatTurn) (string, error)

	// Turns returns the number of turns exchanged so far.
	Turns() int
}
