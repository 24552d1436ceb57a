package revrseai

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Role identifies the author of a [Message] in a task's exchange.
type Role string

const (
	// RoleUser is the account that submitted the prompt.
	RoleUser Role = "user"

	// RoleAgent is the platform's generation agent.
	RoleAgent Role = "agent"
)

// Message is one entry in the exchange between the user and the generation
// agent while a task runs.
type Message struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id,omitempty"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerationResult is the terminal artifact of a completed generation task,
// and also the shape returned by [Client.Info] for an existing app. It is
// immutable once produced.
type GenerationResult struct {
	// TaskID is set when the result came from a generation task.
	TaskID string

	// App is set when the result came from [Client.Info].
	App string

	// Title is the task title, or the app title for info results.
	Title string

	// Description is the task or app description.
	Description string

	// ImageURL points at the app's icon, when the service provides one.
	ImageURL string

	// Messages is the exchange that produced the result. Empty for info
	// results.
	Messages []Message

	// Endpoints are the generated endpoint descriptors.
	Endpoints []Endpoint
}

// attach wires the result's endpoints to the client so they can be executed
// directly.
func (r *GenerationResult) attach(c *Client) {
	for i := range r.Endpoints {
		r.Endpoints[i].client = c
	}
}

// Endpoint returns the endpoint with the given name, or nil if the result
// contains no such endpoint.
func (r *GenerationResult) Endpoint(name string) *Endpoint {
	for i := range r.Endpoints {
		if r.Endpoints[i].Name == name {
			return &r.Endpoints[i]
		}
	}
	return nil
}

// MarkdownDocumentation renders the result's endpoints as one markdown
// document.
//
// Rendering is deterministic: the same endpoint set always produces
// byte-identical output. Endpoints are ordered by name, then by app, and
// schema fields by field name, so exported files diff cleanly.
func (r *GenerationResult) MarkdownDocumentation() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	if r.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", r.Description)
	}
	b.WriteString("## Endpoints\n\n")

	sorted := make([]Endpoint, len(r.Endpoints))
	copy(sorted, r.Endpoints)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].App < sorted[j].App
	})

	for i := range sorted {
		b.WriteString(sorted[i].MarkdownDocumentation())
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// PrintMarkdownDocumentation writes the markdown documentation to stdout.
func (r *GenerationResult) PrintMarkdownDocumentation() {
	fmt.Print(r.MarkdownDocumentation())
}

// ExportMarkdownDocumentation writes the markdown documentation to path,
// creating or truncating the file. The file handle is closed on every exit
// path; any create, write, or close failure is reported as [IOError].
func (r *GenerationResult) ExportMarkdownDocumentation(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}

	_, writeErr := f.WriteString(r.MarkdownDocumentation())
	closeErr := f.Close()
	if writeErr != nil {
		return &IOError{Path: path, Err: writeErr}
	}
	if closeErr != nil {
		return &IOError{Path: path, Err: closeErr}
	}
	return nil
}

// ExecutionStatus is the service-reported outcome of invoking an endpoint.
type ExecutionStatus string

const (
	// ExecutionSuccess indicates the endpoint ran and produced a payload.
	ExecutionSuccess ExecutionStatus = "success"

	// ExecutionError indicates the endpoint ran but the action failed,
	// e.g. rejected credentials. This is business data, not a client error.
	ExecutionError ExecutionStatus = "error"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s ExecutionStatus) String() string {
	return string(s)
}

// ExecutionResult is the outcome of invoking an endpoint.
//
// A result with [ExecutionError] status is a successful call whose business
// outcome failed; it is returned as data, distinct from transport or service
// errors, which surface as Go errors.
type ExecutionResult struct {
	// Status reports whether the action succeeded. See [ExecutionStatus].
	Status ExecutionStatus `json:"status"`

	// Data is the structured payload returned by the endpoint.
	Data map[string]any `json:"data"`

	// ErrorDetail explains the failure when Status is [ExecutionError].
	ErrorDetail string `json:"detail,omitempty"`
}
