// Package eligibility queries the matching collaborator that decides which
// translators may take which jobs. Matching rules live entirely in that
// service; this client only asks.
package eligibility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booking/internal/core/domain/model/kernel"
)

// Config captures the collaborator connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client resolves translator eligibility against the matching collaborator.
// It implements ports.EligibilityProvider.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds an eligibility client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("eligibility base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		client:  hc,
	}, nil
}

// EligibleTranslators returns the ids of every translator currently eligible
// for the job. An empty pool is a valid answer, not an error.
func (c *Client) EligibleTranslators(ctx context.Context, jobID kernel.UUID) ([]kernel.UUID, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s/eligible-translators", c.baseURL, url.PathEscape(jobID.String()))

	var payload struct {
		TranslatorIDs []string `json:"translator_ids"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	translators := make([]kernel.UUID, 0, len(payload.TranslatorIDs))
	for _, raw := range payload.TranslatorIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("eligibility returned malformed translator id %q: %w", raw, err)
		}
		translators = append(translators, id)
	}

	return translators, nil
}

// IsEligible reports whether one translator may accept one job.
func (c *Client) IsEligible(
	ctx context.Context,
	translatorID kernel.UUID,
	jobID kernel.UUID,
) (bool, error) {
	endpoint := fmt.Sprintf("%s/jobs/%s/eligibility/%s",
		c.baseURL, url.PathEscape(jobID.String()), url.PathEscape(translatorID.String()))

	var payload struct {
		Eligible bool `json:"eligible"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return false, err
	}

	return payload.Eligible, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create eligibility request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("eligibility request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("eligibility %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode eligibility response: %w", err)
	}
	return nil
}
