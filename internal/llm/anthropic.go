package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// The Messages API rejects max_tokens beyond the model's output ceiling, so
// larger configured limits are clamped.
const anthropicMaxOutputTokens = 8192

// AnthropicClient adapts the official Anthropic SDK to the Client interface.
// The Messages API is stateless, so turn history for non-restarted sessions
// is replayed client-side, mirroring the OpenAI-compatible provider.
type AnthropicClient struct {
	client   *anthropic.Client
	logger   *slog.Logger
	sessions *sessionStore[anthropic.MessageParam]
}

// NewAnthropicClient creates a client backed by the Anthropic Messages API.
func NewAnthropicClient(apiKey string, logger *slog.Logger) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:   &client,
		logger:   logger,
		sessions: newSessionStore[anthropic.MessageParam](),
	}
}

// Chat implements Client.
func (c *AnthropicClient) Chat(ctx context.Context, sessionID, prompt string, opts ChatOptions) (string, error) {
	history := c.sessions.history(sessionID, opts.Restart)

	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	maxTokens := opts.TokenLimit
	if maxTokens <= 0 || maxTokens > anthropicMaxOutputTokens {
		maxTokens = anthropicMaxOutputTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(opts.Model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}
	if opts.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: opts.SystemPrompt}}
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic message request failed: %w", err)
	}
	if message == nil || len(message.Content) == 0 {
		return "", fmt.Errorf("anthropic returned empty content")
	}

	var text string
	if block := message.Content[0]; block.Type == "text" {
		text = block.Text
	}

	c.sessions.record(sessionID,
		anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)),
	)

	c.logger.Debug("anthropic completion finished",
		"session_id", sessionID,
		"input_tokens", message.Usage.InputTokens,
		"output_tokens", message.Usage.OutputTokens,
	)
	return text, nil
}
