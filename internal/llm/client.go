// Package llm provides the model-backend clients used to review files. Both
// providers expose the same narrow Chat surface; the review pipeline never
// sees which one is configured.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/revbot-io/revbot/internal/config"
)

// ChatOptions carries the per-exchange parameters of a model call.
type ChatOptions struct {
	Model      string
	TokenLimit int
	// Restart discards any prior turn state for the session before this
	// exchange, making it a fresh single-turn conversation.
	Restart      bool
	SystemPrompt string
}

// Client is the surface the review pipeline needs from a model backend.
//
//go:generate mockgen -destination=../../mocks/mock_llm_client.go -package=mocks -mock_names Client=MockLLMClient . Client
type Client interface {
	// Chat sends one prompt within the session identified by sessionID and
	// returns the model's reply text.
	Chat(ctx context.Context, sessionID, prompt string, opts ChatOptions) (string, error)
}

// New selects a model backend implementation from the configuration.
func New(cfg *config.Config, logger *slog.Logger) (Client, error) {
	switch cfg.LLMProvider {
	case "openai", "":
		return NewOpenAIClient(cfg.LLMAPIEndpoint, cfg.LLMAPIKey, logger), nil
	case "anthropic":
		return NewAnthropicClient(cfg.LLMAPIKey, logger), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLMProvider)
	}
}

// sessionStore keeps per-session conversation turns for providers whose wire
// protocol is stateless. The review pipeline always restarts its sessions, so
// entries are cleared as soon as they would start to accumulate.
type sessionStore[T any] struct {
	mu    sync.Mutex
	turns map[string][]T
}

func newSessionStore[T any]() *sessionStore[T] {
	return &sessionStore[T]{turns: make(map[string][]T)}
}

// history returns a copy of the session's recorded turns. With restart set it
// clears the session first and returns nothing.
func (s *sessionStore[T]) history(sessionID string, restart bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if restart {
		delete(s.turns, sessionID)
		return nil
	}
	out := make([]T, len(s.turns[sessionID]))
	copy(out, s.turns[sessionID])
	return out
}

func (s *sessionStore[T]) record(sessionID string, turns ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[sessionID] = append(s.turns[sessionID], turns...)
}
