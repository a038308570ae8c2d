package services

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
	"github.com/lumar-safety/orient/internal/logger"
)

// Ensure FirstAidService implements the interface.
var _ driving.FirstAidChat = (*FirstAidService)(nil)

// FirstAidService creates first-aid chat sessions and tracks the live ones
// in a process-local registry. Sessions are owned by their callers and
// disposed explicitly via Close.
type FirstAidService struct {
	model    driven.LanguageModel
	prompts  driven.PromptStore
	sessions driven.SessionStore
}

// NewFirstAidService creates a new first-aid chat service.
func NewFirstAidService(model driven.LanguageModel, prompts driven.PromptStore, sessions driven.SessionStore) *FirstAidService {
	return &FirstAidService{
		model:    model,
		prompts:  prompts,
		sessions: sessions,
	}
}

// NewSession opens a chat session bound to the localized safety-first
// system instruction and registers it.
func (s *FirstAidService) NewSession(lang domain.Language) (driving.FirstAidSession, error) {
	if lang == "" {
		lang = domain.DefaultLanguage
	}
	if !lang.IsValid() {
		return nil, domain.ErrUnsupportedLanguage
	}
	if s.model == nil {
		return nil, domain.ErrModelUnavailable
	}

	sess := &Session{
		id:   uuid.NewString(),
		lang: lang,
		svc:  s,
		chat: s.model.StartChat(driven.ChatConfig{
			SystemInstruction: firstAidSystemPrompt(s.prompts, lang),
		}),
		history: []domain.ChatMessage{{
			ID:   uuid.NewString(),
			Role: domain.ChatRoleModel,
			Text: ChatGreeting(lang),
		}},
	}

	if s.sessions != nil {
		if err := s.sessions.Put(sess.id, sess); err != nil {
			return nil, err
		}
	}
	logger.Debug("first-aid session %s opened (%s)", sess.id, lang)
	return sess, nil
}

// Session retrieves a live session by ID.
func (s *FirstAidService) Session(id string) (driving.FirstAidSession, bool) {
	if s.sessions == nil {
		return nil, false
	}
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := v.(driving.FirstAidSession)
	return sess, ok
}

// Ensure Session implements the interface.
var _ driving.FirstAidSession = (*Session)(nil)

// Session is one first-aid conversation. Turns are strictly serialised: a
// Send while a prior turn is outstanding fails with ErrSessionBusy, the
// same guard the UI busy flag provides.
type Session struct {
	id   string
	lang domain.Language
	svc  *FirstAidService
	chat driven.ChatSession

	busy atomic.Bool

	mu      sync.Mutex
	history []domain.ChatMessage
	closed  bool
}

// ID identifies the session in the registry.
func (s *Session) ID() string {
	return s.id
}

// Language returns the session language.
func (s *Session) Language() domain.Language {
	return s.lang
}

// Send submits one turn. With an image and no text, the localized default
// analysis instruction is substituted. A provider failure does not error:
// the assistant turn becomes the fixed safety message and the session
// remains usable for further turns.
func (s *Session) Send(ctx context.Context, text string, image *domain.ImageAttachment) (domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" && image == nil {
		return domain.ChatMessage{}, domain.ErrEmptyTurn
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return domain.ChatMessage{}, domain.ErrSessionClosed
	}

	if !s.busy.CompareAndSwap(false, true) {
		return domain.ChatMessage{}, domain.ErrSessionBusy
	}
	defer s.busy.Store(false)

	turnText := text
	if turnText == "" {
		turnText = DefaultImageInstruction(s.lang)
	}

	s.append(domain.ChatMessage{
		ID:       uuid.NewString(),
		Role:     domain.ChatRoleUser,
		Text:     text,
		HasImage: image != nil,
	})

	reply, err := s.chat.Send(ctx, driven.ChatTurn{Text: turnText, Image: image})
	switch {
	case err != nil:
		logger.Warn("chat turn failed, appending safety message: %v", err)
		reply = SafetyMessage(s.lang)
	case strings.TrimSpace(reply) == "":
		reply = EmergencyReminder(s.lang)
	}

	msg := domain.ChatMessage{
		ID:   uuid.NewString(),
		Role: domain.ChatRoleModel,
		Text: reply,
	}
	s.append(msg)
	return msg, nil
}

// History returns a copy of the ordered messages exchanged so far.
func (s *Session) History() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// Close disposes the session and removes it from the registry.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.svc != nil && s.svc.sessions != nil {
		return s.svc.sessions.Delete(s.id)
	}
	return nil
}

func (s *Session) append(msg domain.ChatMessage) {
	s.mu.Lock()
	s.history = append(s.history, msg)
	s.mu.Unlock()
}
