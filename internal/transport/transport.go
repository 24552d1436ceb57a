// Package transport implements the HTTP plumbing for the RevrseAI client:
// signed JSON requests against the service base URL, response decoding, and
// mapping of non-2xx responses to typed errors.
//
// This package is internal; the public error types are re-exported by the
// root package. Requests are never retried here.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const maxResponseBodySize = 4 << 20 // 4MB, schema payloads can be large

// connection pooling limits to avoid resource exhaustion from long-lived clients
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultMaxConnsPerHost     = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// APIError is a non-2xx response from the service.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Detail is the "detail" field of the error body, or the raw body text
	// if the body was not the usual JSON error shape.
	Detail string

	// RequestID is the correlation ID sent with the failed request.
	RequestID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("revrseai: service returned %d: %s", e.StatusCode, e.Detail)
}

// TransportError is a network-level or decoding failure; the request did not
// produce a usable response.
type TransportError struct {
	// Op names the failing stage: "request", "read", or "decode".
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("revrseai: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client performs authenticated JSON requests against the RevrseAI API.
//
// The API key is injected into every request as the X-API-Key header, along
// with a fresh X-Request-ID correlation UUID. Client holds no per-call state
// and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a transport Client for the given base URL and API key.
//
// If httpClient is nil, a pooled client with conservative connection limits
// is created. Per-call deadlines come from the request context rather than a
// global client timeout.
func NewClient(baseURL, apiKey, userAgent string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			// no default timeout - deadlines come from the request context
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Get issues a GET request to path with optional query parameters and
// decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request to path with body marshalled as JSON and
// decodes the JSON response into out. A nil body sends an empty JSON object
// so the service always receives a parseable payload.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	if body == nil {
		body = map[string]any{}
	}
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: "request", URL: fullURL, Err: fmt.Errorf("encoding body: %w", err)}
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return &TransportError{Op: "request", URL: fullURL, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: "request", URL: fullURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	// read body with size limit
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return &TransportError{Op: "read", URL: fullURL, Err: err}
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(data),
			RequestID:  requestID,
		}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &TransportError{Op: "decode", URL: fullURL, Err: err}
		}
	}
	return nil
}

// errorDetail pulls the "detail" field out of a JSON error body, falling
// back to the raw body text.
func errorDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	if len(body) > 0 {
		return string(body)
	}
	return "unknown error"
}

// Close releases idle connections in the underlying connection pool.
//
// Safe to call multiple times; the client remains usable afterwards,
// establishing new connections as needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if t, ok := c.httpClient.Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}
