// Package services implements the StockAI API client: the single integration
// point between frontends and the remote backend. The client owns request
// construction, the bearer-token lifecycle, and uniform error translation.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stockai/stockai-go/internal/session"
	"github.com/stockai/stockai-go/observability"
)

// Client handles communication with the StockAI backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Store
	metrics    *observability.Metrics
}

// NewClient creates a new Client instance talking to baseURL, reading and
// writing session state through store.
func NewClient(baseURL string, store *session.Store) *Client {
	return NewClientWithTimeout(baseURL, store, 30*time.Second)
}

// NewClientWithTimeout creates a Client with an explicit transport timeout.
func NewClientWithTimeout(baseURL string, store *session.Store, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    store,
		metrics:    observability.GetMetrics(),
	}
}

// IsAuthenticated reports whether a bearer token is present locally. The
// backend remains the authority; a present token may still be rejected.
func (c *Client) IsAuthenticated() bool {
	return c.session.Token() != ""
}

// errorBody is the backend's error payload shape.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). A bearer token is attached whenever one is stored; requests are
// still sent without one, since only the backend decides what needs auth.
// Non-2xx responses come back as *APIError.
func (c *Client) do(ctx context.Context, operation, method, path string, body any, out any) error {
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAPIRequest(operation, "transport_error", time.Since(start))
		c.metrics.RecordAPIError(operation, "transport")
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordAPIRequest(operation, "transport_error", time.Since(start))
		c.metrics.RecordAPIError(operation, "transport")
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		// The error body is JSON on every backend-reported failure, but a
		// proxy in between may answer with something else entirely.
		var eb errorBody
		if jsonErr := json.Unmarshal(data, &eb); jsonErr == nil {
			apiErr.Message = eb.Error
			apiErr.Code = eb.Code
		}

		errType := "backend"
		if resp.StatusCode == http.StatusUnauthorized {
			errType = "auth"
		}
		c.metrics.RecordAPIRequest(operation, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))
		c.metrics.RecordAPIError(operation, errType)
		observability.WithEndpoint(path).Debug("backend rejected request",
			"operation", operation, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			c.metrics.RecordAPIError(operation, "decode")
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}

	c.metrics.RecordAPIRequest(operation, "ok", time.Since(start))
	return nil
}
