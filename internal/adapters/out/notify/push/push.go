// Package push delivers job alerts to translator devices through the push
// provider's webhook API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
)

// Config captures the subset of the push provider behaviour we need.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
	RetryLimit int
	Client     *http.Client
}

// Client posts job alerts to the push provider webhook.
// It implements ports.PushGateway.
type Client struct {
	webhookURL string
	retryLimit int
	client     *http.Client
}

// NewClient builds a push webhook client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	webhookURL := strings.TrimSpace(cfg.WebhookURL)
	if webhookURL == "" {
		return nil, errors.New("push webhook url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	retries := cfg.RetryLimit
	if retries < 0 {
		retries = 0
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		webhookURL: webhookURL,
		retryLimit: retries,
		client:     hc,
	}, nil
}

// alertPayload is the wire format the push provider expects.
type alertPayload struct {
	JobID       string   `json:"job_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Event       string   `json:"event"`
	Recipients  []string `json:"recipients"`
}

// SendJobAlert pushes the alert to every translator in recipients.
func (c *Client) SendJobAlert(
	ctx context.Context,
	alert ports.JobAlert,
	recipients []kernel.UUID,
) error {
	ids := make([]string, 0, len(recipients))
	for _, id := range recipients {
		ids = append(ids, id.String())
	}

	body, err := json.Marshal(alertPayload{
		JobID:       alert.JobID.String(),
		Title:       alert.Title,
		Description: alert.Description,
		Status:      alert.Status,
		Event:       alert.Event,
		Recipients:  ids,
	})
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}

	attempts := c.retryLimit + 1
	var lastErr error
	for attempt := range attempts {
		err = c.post(ctx, body)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < attempts-1 {
			// Simple linear backoff to avoid thundering retries.
			delay := time.Duration(attempt+1) * 200 * time.Millisecond
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				return ctx.Err()
			case <-timer.C:
			}
		}
	}

	return lastErr
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push webhook %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("drain push response body: %w", err)
	}
	return nil
}
