// Package api is the HTTP client for the inventory backend. One shared Client
// serves every view; the session transport scopes each request to the current
// token and workspace.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/melmoskitchen/pantry/internal/log"
	"github.com/melmoskitchen/pantry/internal/session"
)

// Client is the inventory backend API client.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New creates a client for the given base endpoint. All requests pass through
// the session transport so auth and tenant headers are attached uniformly.
func New(baseURL string, store session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: NewSessionTransport(store, nil),
		},
		logger: log.DefaultLogger().With("component", "api"),
	}
}

// BaseURL returns the configured base endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest performs a JSON request against the backend.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		// No retry, no backoff: the failure is surfaced as-is and the
		// operation is terminal.
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// ErrorResponse is the backend's error body shape.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// parseResponse decodes the response body into target, extracting the backend
// error message on non-2xx statuses so views can show it inline.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Message != "" {
				return fmt.Errorf("%s", errResp.Message)
			}
			if errResp.Error != "" {
				return fmt.Errorf("%s", errResp.Error)
			}
		}

		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
