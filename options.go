package revrseai

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const defaultUserAgent = "revrseai-go/" + Version

// Version is the client library version, reported in the User-Agent header.
const Version = "0.1.0"

// clientConfig holds mutable state during Client construction.
type clientConfig struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a function that configures a [Client] during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithAPIKey], [WithBaseURL], [WithHTTPClient],
// [WithLogger], [WithUserAgent].
type Option func(*clientConfig) error

// WithAPIKey sets the API key explicitly, taking precedence over the
// REVRSE_AI_API_KEY environment variable.
//
// The key is opaque bearer data; the client sends it unchanged in the
// X-API-Key header of every request.
func WithAPIKey(key string) Option {
	return func(cfg *clientConfig) error {
		if key == "" {
			return errors.New("API key cannot be empty")
		}
		cfg.apiKey = key
		return nil
	}
}

// WithBaseURL overrides the API base URL.
//
// Intended for tests and staging environments; production use should keep
// the default [DefaultBaseURL]. A trailing slash is stripped.
//
// Returns an error if the URL is not an absolute http or https URL.
func WithBaseURL(rawURL string) Option {
	return func(cfg *clientConfig) error {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return errors.New("invalid base URL: " + err.Error())
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return errors.New("base URL must use http or https")
		}
		cfg.baseURL = strings.TrimRight(rawURL, "/")
		return nil
	}
}

// WithHTTPClient sets a custom [http.Client] for all requests.
//
// Use this to apply proxies, custom TLS configuration, or instrumentation.
// If not provided, a pooled client with conservative connection limits is
// used. Per-call deadlines come from the request context either way.
//
// Returns an error if the client is nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *clientConfig) error {
		if hc == nil {
			return errors.New("HTTP client cannot be nil")
		}
		cfg.httpClient = hc
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the client.
//
// The client logs request completions at debug level and task lifecycle
// events at info level. If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
// Defaults to "revrseai-go/<version>".
func WithUserAgent(ua string) Option {
	return func(cfg *clientConfig) error {
		if ua == "" {
			return errors.New("user agent cannot be empty")
		}
		cfg.userAgent = ua
		return nil
	}
}
