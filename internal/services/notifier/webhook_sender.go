package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/porchman/notification-api/internal/services/trackingrepo"
)

const (
	// Default timeout for webhook requests
	defaultWebhookTimeout = 30 * time.Second
	// Maximum response body size to read for error reporting
	maxResponseBodySize = 1024
)

// WebhookSender posts registration events to a fixed URL.
type WebhookSender struct {
	client    *http.Client
	targetURL string
}

// NewWebhookSender creates a WebhookSender. A nil client gets a default with a timeout.
func NewWebhookSender(targetURL string, client *http.Client) *WebhookSender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultWebhookTimeout,
		}
	}
	return &WebhookSender{
		client:    client,
		targetURL: targetURL,
	}
}

// Notify sends the registration event for rec.
func (w *WebhookSender) Notify(ctx context.Context, rec trackingrepo.Record) error {
	body, err := json.Marshal(NewRegisteredEvent(rec))
	if err != nil {
		return fmt.Errorf("failed to marshal registration event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.targetURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Porchman-Webhook/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST to webhook: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return fmt.Errorf("webhook returned status code %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
