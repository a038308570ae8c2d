// Package tui provides the interactive first-aid chat for the terminal.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
)

// Ports aggregates what the chat UI needs from the core.
type Ports struct {
	// Chat creates and drives first-aid sessions.
	Chat driving.FirstAidChat

	// Language is the conversation language.
	Language domain.Language
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}
