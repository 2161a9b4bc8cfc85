package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// WebhookEvent is the payload posted to the automation webhook. Events fan
// out to the n8n flows that send emails and sync CRM boards; the platform
// only fires and forgets.
type WebhookEvent struct {
	Event     string                 `json:"event"`
	UserID    uint                   `json:"user_id"`
	ProjectID uint                   `json:"project_id,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// Webhook event names.
const (
	EventProjectCreated  = "project.created"
	EventBudgetGenerated = "budget.generated"
	EventPaymentApproved = "payment.approved"
)

// WebhookClient posts events to the webhook-automation service.
type WebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookClient creates a client for the webhook-automation service. An
// empty URL disables delivery.
func NewWebhookClient(webhookURL string) *WebhookClient {
	return &WebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Send posts an event. With no URL configured it is a no-op.
func (c *WebhookClient) Send(ctx context.Context, event WebhookEvent) error {
	if c.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding webhook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook event: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
