package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultCompletionPath = "/chat/completions"

// chatMessage is one turn of a chat-completions conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	User      string        `json:"user,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// OpenAIClient talks to any OpenAI-compatible chat-completions endpoint. The
// session id travels as the request's "user" field so the backend can group
// exchanges; turn history for non-restarted sessions is replayed client-side
// because the wire protocol itself is stateless.
type OpenAIClient struct {
	baseURL    string
	path       string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	sessions   *sessionStore[chatMessage]
}

// OpenAIOption is a functional option for configuring the client.
type OpenAIOption func(*OpenAIClient)

// WithCompletionPath overrides the completion endpoint path.
func WithCompletionPath(path string) OpenAIOption {
	return func(c *OpenAIClient) { c.path = path }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) OpenAIOption {
	return func(c *OpenAIClient) { c.httpClient = client }
}

// NewOpenAIClient creates a client for the endpoint's chat-completions API.
// baseURL is the API root, e.g. "https://yicoder9b.us.gaianet.network/v1".
func NewOpenAIClient(baseURL, apiKey string, logger *slog.Logger, opts ...OpenAIOption) *OpenAIClient {
	c := &OpenAIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		path:       defaultCompletionPath,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		logger:     logger,
		sessions:   newSessionStore[chatMessage](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat implements Client.
func (c *OpenAIClient) Chat(ctx context.Context, sessionID, prompt string, opts ChatOptions) (string, error) {
	history := c.sessions.history(sessionID, opts.Restart)

	messages := make([]chatMessage, 0, len(history)+2)
	if opts.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: opts.SystemPrompt})
	}
	messages = append(messages, history...)
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	request := chatCompletionRequest{
		Model:     opts.Model,
		Messages:  messages,
		MaxTokens: opts.TokenLimit,
		User:      sessionID,
	}

	response, err := c.makeRequest(ctx, request)
	if err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from completion API")
	}

	text := response.Choices[0].Message.Content
	c.sessions.record(sessionID,
		chatMessage{Role: "user", Content: prompt},
		chatMessage{Role: "assistant", Content: text},
	)

	c.logger.Debug("chat completion finished",
		"session_id", sessionID,
		"finish_reason", response.Choices[0].FinishReason,
	)
	return text, nil
}

func (c *OpenAIClient) makeRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := c.baseURL + c.path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("completion API error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("completion API returned status %d: %s", resp.StatusCode, truncateForLog(body))
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse completion response: %w", err)
	}
	return &response, nil
}

func truncateForLog(body []byte) string {
	const maxLen = 512
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
