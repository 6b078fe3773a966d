// Package portal is the typed HTTP client for the remote job-portal API.
// It is the only place that sees the API's wire format: stringy booleans,
// mixed id field names, and loose timestamps are normalized here and never
// leak into the rest of the console.
package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/webutsav/admin-console/internal/logger"
)

// Client issues requests against the portal API. All operations are plain
// network calls; the caller owns any in-memory replica of the results.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *RateLimiter
	log     *logger.Logger
}

// Config holds the configuration for the portal client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateRPS   float64
	RateBurst int
}

// NewClient creates a portal client with the provided configuration.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limiter := DefaultRateLimiter()
	if cfg.RateRPS > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = NewRateLimiter(cfg.RateRPS, burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		log:     log,
	}
}

// do issues one request and decodes a 2xx JSON body into out (when out is
// non-nil). Non-2xx responses become *APIError with the server's message when
// one was parseable; 404 wraps ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			c.limiter.SetRetryAfter(secs)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body),
		}
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("portal request failed")
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s %s: %w: %w", method, path, ErrNotFound, apiErr)
		}
		return fmt.Errorf("%s %s: %w", method, path, apiErr)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeErrorMessage pulls the optional {"message": ...} out of an error body.
// Returns "" when the body is absent or unparseable.
func decodeErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
