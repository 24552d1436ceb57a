package revrseai

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/revrse-ai/revrseai-go/internal/transport"
)

// ErrMissingCredential is returned by [New] when no API key is supplied
// explicitly and none is found in the REVRSE_AI_API_KEY environment variable.
var ErrMissingCredential = errors.New("revrseai: API key is required (pass WithAPIKey or set REVRSE_AI_API_KEY)")

// APIError is a non-2xx response from the RevrseAI service. It carries the
// HTTP status code and the detail message reported by the service.
//
// Use the Is* helpers ([IsNotFound], [IsAuthentication], [IsRateLimit],
// [IsValidation], [IsServerError]) to classify an APIError without matching
// status codes by hand.
type APIError = transport.APIError

// TransportError is a network or HTTP-layer failure: the request never
// completed, or the response body could not be read or decoded. It wraps the
// underlying error for errors.Is/As inspection. Transport failures are never
// retried automatically.
type TransportError = transport.TransportError

// InvalidSelectorError reports a [Selector] that does not populate exactly
// one addressing form. It is returned before any network I/O happens.
type InvalidSelectorError struct {
	// Reason describes what is wrong with the selector.
	Reason string
}

func (e *InvalidSelectorError) Error() string {
	return "revrseai: invalid selector: " + e.Reason
}

// EndpointNotFoundError indicates that a selector did not resolve to any
// endpoint, either because the service returned 404 or because no endpoint
// with the requested name exists on the task or app.
type EndpointNotFoundError struct {
	// Selector is the original selector, kept for diagnostics.
	Selector Selector

	// Detail is the service-reported detail, if any.
	Detail string
}

func (e *EndpointNotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("revrseai: endpoint not found for %s: %s", e.Selector, e.Detail)
	}
	return fmt.Sprintf("revrseai: endpoint not found for %s", e.Selector)
}

// PollTimeoutError is returned by [Task.WaitTillDone] when the task does not
// reach a terminal state within the configured timeout. No further status
// queries are issued once the timeout fires.
type PollTimeoutError struct {
	TaskID  string
	Timeout time.Duration
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("revrseai: task %s did not finish within %s", e.TaskID, e.Timeout)
}

// GenerationFailedError is returned by [Task.WaitTillDone] when the task
// reaches the failed state. Detail carries whatever the service reported.
type GenerationFailedError struct {
	TaskID string
	Detail string
}

func (e *GenerationFailedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("revrseai: generation task %s failed: %s", e.TaskID, e.Detail)
	}
	return fmt.Sprintf("revrseai: generation task %s failed", e.TaskID)
}

// IOError reports a failure to write exported documentation to disk.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("revrseai: writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an [APIError] with HTTP status 404.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsAuthentication reports whether err is an [APIError] with HTTP status
// 401 or 403 (invalid API key, or key lacking access to the resource).
func IsAuthentication(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

// IsValidation reports whether err is an [APIError] with HTTP status 422.
func IsValidation(err error) bool { return hasStatus(err, http.StatusUnprocessableEntity) }

// IsRateLimit reports whether err is an [APIError] with HTTP status 429.
func IsRateLimit(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsServerError reports whether err is an [APIError] with a 5xx HTTP status.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
