package gemini

import (
	"context"
	"encoding/base64"
	"sync"

	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// Ensure chatSession implements the interface.
var _ driven.ChatSession = (*chatSession)(nil)

// StartChat opens a multi-turn session. The full conversation history is
// resent with every turn; the Gemini API is stateless across requests.
func (s *Service) StartChat(cfg driven.ChatConfig) driven.ChatSession {
	sess := &chatSession{svc: s}
	if cfg.SystemInstruction != "" {
		sess.system = &content{Parts: []part{{Text: cfg.SystemInstruction}}}
	}
	return sess
}

// chatSession accumulates the conversation and replays it on each Send.
type chatSession struct {
	svc    *Service
	system *content

	mu      sync.Mutex
	history []content
	turns   int
}

// Send submits one turn. The user content and the model answer are appended
// to the history only when the call succeeds, so a failed turn can be
// retried without a phantom entry.
func (s *chatSession) Send(ctx context.Context, turn driven.ChatTurn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userContent := content{Role: "user", Parts: turnParts(turn)}

	body := generateRequest{
		Contents:          append(append([]content{}, s.history...), userContent),
		SystemInstruction: s.system,
	}

	cand, err := s.svc.generate(ctx, body)
	if err != nil {
		return "", err
	}

	reply := cand.text()
	s.history = append(s.history, userContent, content{Role: "model", Parts: []part{{Text: reply}}})
	s.turns++
	return reply, nil
}

// Turns returns the number of completed turns.
func (s *chatSession) Turns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns
}

// turnParts converts a port turn into wire parts: text first, then the
// image as inline data.
func turnParts(turn driven.ChatTurn) []part {
	parts := make([]part, 0, 2)
	if turn.Text != "" {
		parts = append(parts, part{Text: turn.Text})
	}
	if turn.Image != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MIMEType: turn.Image.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(turn.Image.Data),
		}})
	}
	return parts
}
