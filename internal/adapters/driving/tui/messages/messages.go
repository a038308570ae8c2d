// Package messages defines Bubbletea message types for the chat UI.
// Messages represent events and commands that flow through the Elm
// architecture.
package messages

import (
	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
)

// SessionOpened carries the freshly created session, or the reason it
// could not be created.
type SessionOpened struct {
	Session driving.FirstAidSession
	Err     error
}

// TurnCompleted signals that a chat turn finished. Provider failures do
// not appear here; they come back as a safety message inside the session.
// Err carries caller-side validation problems only.
type TurnCompleted struct {
	Message domain.ChatMessage
	Err     error
}

// PhotoLoaded carries an image read from disk for the next turn.
type PhotoLoaded struct {
	Path  string
	Image *domain.ImageAttachment
	Err   error
}
