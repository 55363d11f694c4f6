package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// WebhookDispatcher posts notifications to an external delivery service
// (the app backend's push pipeline) as JSON over HTTP.
type WebhookDispatcher struct {
	url    string
	client *http.Client
}

// webhookMessage is the wire format of one notification
type webhookMessage struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Type   string `json:"type"`
}

// NewWebhookDispatcher creates a dispatcher posting to the given URL
func NewWebhookDispatcher(url string) *WebhookDispatcher {
	return &WebhookDispatcher{
		url: url,
		client: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// Notify posts a single notification. The caller treats errors as
// best-effort failures.
func (d *WebhookDispatcher) Notify(ctx context.Context, userID uuid.UUID, title, body string, kind Kind) error {
	msg := webhookMessage{
		UserID: userID.String(),
		Title:  title,
		Body:   body,
		Type:   string(kind),
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// RequestTimeout bounds a single delivery attempt
const RequestTimeout = 5 * time.Second
