package revrseai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Endpoint describes one generated, callable endpoint: a deterministic
// action against a target Android app, produced by a generation task.
//
// Endpoints are produced by the server and are read-only on the client. An
// endpoint is reachable through exactly one of three selector forms — its ID,
// its owning task ID plus name, or its owning app plus name — and all three
// resolve to the same endpoint when the ID coincides.
type Endpoint struct {
	// ID is the unique identifier of the endpoint.
	ID string `json:"id"`

	// Name is the endpoint's name, unique within its task and app,
	// e.g. "login" or "jobs-feed".
	Name string `json:"name"`

	// Description explains what the endpoint does.
	Description string `json:"description,omitempty"`

	// App is the name of the app the endpoint acts against.
	App string `json:"app,omitempty"`

	// TaskID is the generation task that produced the endpoint.
	TaskID string `json:"task_id,omitempty"`

	// InputSchema describes the endpoint's input fields.
	InputSchema *Schema `json:"input_schema,omitempty"`

	// OutputSchema describes the endpoint's response payload.
	OutputSchema *Schema `json:"output_schema,omitempty"`

	client *Client
}

// Execute invokes the endpoint with the given input data. This is the
// convenience path for already-resolved endpoints; it issues the same single
// remote call as [Client.Execute] with [ByEndpointID] and is never retried.
//
// data may be nil for endpoints without inputs. No local schema validation
// is performed; invalid input is reported by the service through the
// returned [ExecutionResult].
func (e *Endpoint) Execute(ctx context.Context, data map[string]any) (*ExecutionResult, error) {
	if e.client == nil {
		return nil, errors.New("revrseai: endpoint is not attached to a client")
	}
	return e.client.Execute(ctx, ByEndpointID(e.ID), data)
}

// ExampleData builds example input for the endpoint from its input schema.
func (e *Endpoint) ExampleData() any {
	return e.InputSchema.ExampleData()
}

// ExampleResponse builds an example response from the output schema.
func (e *Endpoint) ExampleResponse() any {
	return e.OutputSchema.ExampleData()
}

// MarkdownDocumentation renders the endpoint as a markdown section: its
// description, input fields, a runnable code example, and the output shape.
// Output is deterministic for a given endpoint.
func (e *Endpoint) MarkdownDocumentation() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	if e.Description != "" {
		fmt.Fprintf(&b, "> %s\n\n", e.Description)
	}

	b.WriteString("## Input\n\n")
	b.WriteString(e.InputSchema.markdownTable())
	b.WriteString("\n")

	b.WriteString("\n### Code Example\n\n```go\n")
	b.WriteString(e.codeExample())
	b.WriteString("```\n\n")

	b.WriteString("## Output\n\n")
	b.WriteString(e.OutputSchema.markdownTable())
	b.WriteString("\n")

	b.WriteString("\n### Example Response\n\n```json\n")
	b.WriteString(marshalExample(e.ExampleResponse(), "  "))
	b.WriteString("\n```")

	return b.String()
}

// codeExample builds a Go snippet invoking the endpoint by ID with example
// input data.
func (e *Endpoint) codeExample() string {
	example := marshalExample(e.ExampleData(), "    ")

	var data strings.Builder
	data.WriteString("var data map[string]any\n")
	fmt.Fprintf(&data, "_ = json.Unmarshal([]byte(`%s`), &data)\n\n", example)

	return data.String() + fmt.Sprintf(`client, _ := revrseai.New()
resp, err := client.Execute(ctx, revrseai.ByEndpointID(%q), data)
if err != nil {
    log.Fatal(err)
}
fmt.Println(resp.Status, resp.Data)
`, e.ID)
}

// marshalExample renders example data as indented JSON. Map keys marshal in
// sorted order, keeping the rendered documentation deterministic.
func marshalExample(v any, indent string) string {
	encoded, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return "null"
	}
	return string(encoded)
}
