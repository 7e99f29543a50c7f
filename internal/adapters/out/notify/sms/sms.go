// Package sms delivers job alerts to a single translator through the SMS
// provider's HTTP API.
package sms

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

// Config captures the subset of the SMS provider behaviour we need.
type Config struct {
	EndpointURL string
	Timeout     time.Duration
	RetryLimit  int
	Client      *http.Client
}

// Client posts single-recipient job messages to the SMS provider.
// It implements ports.SMSGateway.
type Client struct {
	endpointURL string
	retryLimit  int
	client      *http.Client
}

// NewClient builds an SMS client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	endpointURL := strings.TrimSpace(cfg.EndpointURL)
	if endpointURL == "" {
		return nil, errors.New("sms endpoint url is required")
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
		endpointURL: endpointURL,
		retryLimit:  retries,
		client:      hc,
	}, nil
}

// messagePayload is the wire format the SMS provider expects.
// The provider resolves the translator id to a phone number; phone numbers
// never pass through this service.
type messagePayload struct {
	JobID        string `json:"job_id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	Event        string `json:"event"`
	TranslatorID string `json:"translator_id"`
}

// SendJobSMS sends the alert to one translator's phone.
func (c *Client) SendJobSMS(
	ctx context.Context,
	alert ports.JobAlert,
	translatorID kernel.UUID,
) error {
	body, err := json.Marshal(messagePayload{
		JobID:        alert.JobID.String(),
		Title:        alert.Title,
		Status:       alert.Status,
		Event:        alert.Event,
		TranslatorID: translatorID.String(),
	})
	if err != nil {
		return fmt.Errorf("encode sms payload: %w", err)
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
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sms endpoint %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	_, err = io.Copy(io.Discard, resp.Body)
	if err != nil {
		return fmt.Errorf("drain sms response body: %w", err)
	}
	return nil
}
