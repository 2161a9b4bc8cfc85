// Package external holds the HTTP clients for the hosted services the
// platform calls out to: the chat assistant, IP geolocation, and the
// automation webhook. The clients carry no business logic; they marshal
// requests, enforce timeouts, and surface errors.
package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout bounds every outbound call.
const DefaultTimeout = 30 * time.Second

// ChatRequest is the payload sent to the chat-assistant service.
type ChatRequest struct {
	ProjectID uint   `json:"project_id"`
	Message   string `json:"message"`
	// Context is a short project summary the assistant is scoped to.
	Context string `json:"context,omitempty"`
}

// ChatResponse is the assistant's reply plus its token accounting.
type ChatResponse struct {
	Reply            string `json:"reply"`
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
}

// AssistantClient talks to the chat-assistant service.
type AssistantClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAssistantClient creates a client for the chat-assistant service.
func NewAssistantClient(baseURL, apiKey string) *AssistantClient {
	return &AssistantClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Chat sends a project-scoped message and returns the assistant's reply.
func (c *AssistantClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat-assistant", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling chat assistant: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("chat assistant returned status %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decoding chat response: %w", err)
	}
	return &chatResp, nil
}
