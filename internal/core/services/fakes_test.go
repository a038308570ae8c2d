package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driven"
)

// fakeModel is a scriptable driven.LanguageModel for service tests.
type fakeModel struct {
	groundedText   string
	groundedMapURL string
	groundedErr    error
	groundedCalls  []driven.GroundedRequest

	structuredJSON string
	structuredErr  error
	structuredReqs []driven.StructuredRequest

	chatReplies []string
	chatErr     error
	chatTurns   []driven.ChatTurn
	chatConfigs []driven.ChatConfig
}

func (m *fakeModel) GenerateGrounded(_ context.Context, req driven.GroundedRequest) (*driven.GroundedResult, error) {
	m.groundedCalls = append(m.groundedCalls, req)
	if m.groundedErr != nil {
		return nil, m.groundedErr
	}
	return &driven.GroundedResult{Text: m.groundedText, MapURL: m.groundedMapURL}, nil
}

func (m *fakeModel) GenerateStructured(_ context.Context, req driven.StructuredRequest) (json.RawMessage, error) {
	m.structuredReqs = append(m.structuredReqs, req)
	if m.structuredErr != nil {
		return nil, m.structuredErr
	}
	return json.RawMessage(m.structuredJSON), nil
}

func (m *fakeModel) StartChat(cfg driven.ChatConfig) driven.ChatSession {
	m.chatConfigs = append(m.chatConfigs, cfg)
	return &fakeChatSession{model: m}
}

func (m *fakeModel) ModelName() string { return "fake-model" }

func (m *fakeModel) Ping(context.Context) error { return nil }

func (m *fakeModel) Close() error { return nil }

// fakeChatSession replays the model's scripted replies in order.
type fakeChatSession struct {
	model *fakeModel
	turns int
}

func (s *fakeChatSession) Send(_ context.Context, turn driven.ChatTurn) (string, error) {
	s.model.chatTurns = append(s.model.chatTurns, turn)
	if s.model.chatErr != nil {
		return "", s.model.chatErr
	}
	reply := ""
	if s.turns < len(s.model.chatReplies) {
		reply = s.model.chatReplies[s.turns]
	}
	s.turns++
	return reply, nil
}

func (s *fakeChatSession) Turns() int { return s.turns }

// fakePosition is a scriptable driven.PositionSource.
type fakePosition struct {
	coord *domain.Coordinate
	err   error
	calls int
	opts  driven.LocateOptions
}

func (p *fakePosition) Locate(_ context.Context, opts driven.LocateOptions) (*domain.Coordinate, error) {
	p.calls++
	p.opts = opts
	if p.err != nil {
		return nil, p.err
	}
	return p.coord, nil
}

func (p *fakePosition) Name() string { return "fake" }

var errUpstream = errors.New("upstream failure")
