package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAPIKeyMissing indicates the language-model provider credential is
	// not configured. This is the only fatal error in the pipeline: it is
	// surfaced at wiring time, before any call is attempted.
	ErrAPIKeyMissing = errors.New("API key missing")

	// ErrEmptyTurn indicates a chat turn carried neither text nor an image.
	ErrEmptyTurn = errors.New("empty chat turn")

	// ErrSessionBusy indicates a chat turn was submitted while a prior
	// response is still outstanding. Turns are strictly serialised.
	ErrSessionBusy = errors.New("session busy")

	// ErrSessionClosed indicates the chat session has been disposed.
	ErrSessionClosed = errors.New("session closed")

	// ErrUnsupportedLanguage indicates a locale code outside the supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrModelUnavailable indicates the language-model service is not configured.
	ErrModelUnavailable = errors.New("language model unavailable")
)
