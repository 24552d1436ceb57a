package revrseai

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"
	"strconv"

	"github.com/revrse-ai/revrseai-go/internal/transport"
)

const (
	// DefaultBaseURL is the production RevrseAI API endpoint.
	DefaultBaseURL = "https://api.revrse.ai"

	// EnvAPIKey is the environment variable consulted for the API key when
	// none is passed via [WithAPIKey].
	EnvAPIKey = "REVRSE_AI_API_KEY"
)

// Client talks to the RevrseAI API.
//
// A Client is created once via [New] and is immutable afterwards: it holds
// only the resolved credential and configuration, no per-call state, so a
// single instance is safe for concurrent use from independent call sites.
//
// Every method that performs network I/O takes a [context.Context]; cancel
// the context to abandon an in-flight call.
type Client struct {
	apiKey  string
	baseURL string
	logger  *slog.Logger
	http    *transport.Client
}

// New creates a [Client] with the given options.
//
// The API key is resolved once, at construction: an explicit [WithAPIKey]
// value wins, otherwise the REVRSE_AI_API_KEY environment variable is used.
// Returns [ErrMissingCredential] if neither is set.
//
// Example:
//
//	client, err := revrseai.New(
//	    revrseai.WithAPIKey("rvrs_..."),
//	    revrseai.WithLogger(logger),
//	)
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: cfg.baseURL,
		logger:  logger,
		http:    transport.NewClient(cfg.baseURL, apiKey, cfg.userAgent, cfg.httpClient, logger),
	}, nil
}

// BaseURL returns the API base URL the client is configured against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the client's connection pool.
// The client remains usable after Close.
func (c *Client) Close() {
	c.http.Close()
}

// Generate starts a new generation task from a natural-language prompt.
//
// The platform explores the target app and builds the endpoints needed to
// accomplish the described task. Secrets (logins, passwords) are passed
// through to the generated endpoints' execution context; they are not stored
// by this client. secrets may be nil.
//
// The returned [Task] starts in [TaskPending]; use [Task.WaitTillDone] to
// block until generation finishes.
func (c *Client) Generate(ctx context.Context, prompt string, secrets map[string]string) (*Task, error) {
	body := map[string]any{"task": prompt}
	if secrets != nil {
		body["secrets"] = secrets
	}

	var task Task
	if err := c.http.Post(ctx, "/generate", body, &task); err != nil {
		return nil, err
	}
	task.client = c
	c.logger.Info("generation task created", "task_id", task.ID, "status", task.Status)
	return &task, nil
}

// Tasks lists all generation tasks owned by the authenticated account.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.http.Get(ctx, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].client = c
	}
	return tasks, nil
}

// Task retrieves a task by ID without its messages and endpoints. This is
// the lightweight lookup used by the polling loop.
func (c *Client) Task(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	query := url.Values{"include_details": {strconv.FormatBool(false)}}
	if err := c.http.Get(ctx, "/api/tasks/"+url.PathEscape(taskID), query, &task); err != nil {
		return nil, err
	}
	task.client = c
	return &task, nil
}

// TaskResult retrieves the full result of a task: metadata, the message
// exchange that produced it, and the generated endpoints.
func (c *Client) TaskResult(ctx context.Context, taskID string) (*GenerationResult, error) {
	var raw struct {
		Task
		Messages  []Message  `json:"messages"`
		Endpoints []Endpoint `json:"endpoints"`
	}
	query := url.Values{"include_details": {strconv.FormatBool(true)}}
	if err := c.http.Get(ctx, "/api/tasks/"+url.PathEscape(taskID), query, &raw); err != nil {
		return nil, err
	}

	res := &GenerationResult{
		TaskID:      raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Messages:    raw.Messages,
		Endpoints:   raw.Endpoints,
	}
	res.attach(c)
	return res, nil
}

// Info lists the existing endpoints of an app.
//
// An app that exists but has no endpoints yet yields an empty result; an
// unknown app fails with [EndpointNotFoundError]. See [Client.Resolve] for
// addressing a single endpoint.
func (c *Client) Info(ctx context.Context, app string) (*GenerationResult, error) {
	return c.info(ctx, Selector{App: app})
}

// info fetches app info, mapping a service 404 to EndpointNotFoundError
// carrying the selector that triggered the lookup.
func (c *Client) info(ctx context.Context, sel Selector) (*GenerationResult, error) {
	var raw struct {
		AppName        string     `json:"app_name"`
		AppTitle       string     `json:"app_title"`
		AppDescription string     `json:"app_description"`
		AppImageURL    string     `json:"app_image_url"`
		Endpoints      []Endpoint `json:"endpoints"`
	}
	query := url.Values{"query": {sel.App}}
	if err := c.http.Get(ctx, "/api/info", query, &raw); err != nil {
		return nil, notFoundFor(err, sel)
	}

	title := raw.AppTitle
	if title == "" {
		title = raw.AppName
	}
	res := &GenerationResult{
		App:         raw.AppName,
		Title:       title,
		Description: raw.AppDescription,
		ImageURL:    raw.AppImageURL,
		Endpoints:   raw.Endpoints,
	}
	res.attach(c)
	return res, nil
}

// notFoundFor converts a 404 APIError into an EndpointNotFoundError that
// carries the selector for diagnostics. Other errors pass through unchanged.
func notFoundFor(err error, sel Selector) error {
	if IsNotFound(err) {
		return &EndpointNotFoundError{Selector: sel, Detail: apiDetail(err)}
	}
	return err
}

func apiDetail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}
