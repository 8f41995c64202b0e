// Package api is the HTTP client for the staffing backend REST surface.
// All requests and responses are JSON; non-2xx responses are reported as
// errors carrying the status and a snippet of the body.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/metrics"
)

const defaultHTTPTimeout = 30 * time.Second

// ErrNotFound is returned when the backend reports 404 for a requested
// entity.
var ErrNotFound = errors.New("not found")

// Client talks to the staffing backend.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// New creates a staffing backend client. baseURL is the configured origin
// plus versioned prefix, e.g. "http://localhost:8080/api/v1". A zero
// timeout falls back to the default.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one JSON request. body is marshalled when non-nil; the
// response body is unmarshalled into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	metrics.Inc(metrics.RequestsTotal)
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("staffing api: marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("staffing api: creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.Inc(metrics.RequestErrors)
		return fmt.Errorf("staffing api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("staffing api: reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		metrics.Inc(metrics.RequestErrors)
		return fmt.Errorf("staffing api: %s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.Inc(metrics.RequestErrors)
		return fmt.Errorf("staffing api: %s %s returned %d: %s", method, path, resp.StatusCode, snippet(rawBody))
	}

	if out != nil {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("staffing api: decoding response: %w", err)
		}
	}

	c.logger.Debug("staffing api call", "method", method, "path", path, "status", resp.StatusCode)
	return nil
}

// snippet trims a response body for inclusion in an error message.
func snippet(body []byte) string {
	const maxLen = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
