package revrseai

import "fmt"

// Selector addresses a generated endpoint. Exactly one of three forms must
// be populated:
//
//   - EndpointID alone ([ByEndpointID])
//   - TaskID plus Endpoint name ([ByTask])
//   - App plus Endpoint name ([ByApp])
//
// Any other combination is rejected with [InvalidSelectorError] before a
// network call is made. When all three forms reference the same underlying
// endpoint ID they resolve to the same endpoint.
type Selector struct {
	// EndpointID addresses an endpoint directly by its unique ID.
	EndpointID string

	// TaskID addresses an endpoint through the generation task that
	// produced it. Requires Endpoint.
	TaskID string

	// App addresses an endpoint through its owning app. Requires Endpoint.
	App string

	// Endpoint is the endpoint name, used with TaskID or App.
	Endpoint string
}

// ByEndpointID returns a [Selector] addressing an endpoint by its unique ID.
func ByEndpointID(id string) Selector {
	return Selector{EndpointID: id}
}

// ByTask returns a [Selector] addressing an endpoint by the ID of the task
// that generated it and the endpoint's name within that task.
func ByTask(taskID, endpoint string) Selector {
	return Selector{TaskID: taskID, Endpoint: endpoint}
}

// ByApp returns a [Selector] addressing an endpoint by app name and
// endpoint name.
func ByApp(app, endpoint string) Selector {
	return Selector{App: app, Endpoint: endpoint}
}

// String renders the selector for diagnostics.
func (s Selector) String() string {
	switch {
	case s.EndpointID != "":
		return fmt.Sprintf("endpoint %q", s.EndpointID)
	case s.TaskID != "" && s.Endpoint != "":
		return fmt.Sprintf("endpoint %q of task %q", s.Endpoint, s.TaskID)
	case s.TaskID != "":
		return fmt.Sprintf("task %q", s.TaskID)
	case s.App != "" && s.Endpoint != "":
		return fmt.Sprintf("endpoint %q of app %q", s.Endpoint, s.App)
	case s.App != "":
		return fmt.Sprintf("app %q", s.App)
	default:
		return "empty selector"
	}
}

// validate checks that exactly one addressing form is populated.
func (s Selector) validate() error {
	populated := 0
	if s.EndpointID != "" {
		populated++
	}
	if s.TaskID != "" {
		populated++
	}
	if s.App != "" {
		populated++
	}

	switch {
	case populated == 0:
		return &InvalidSelectorError{Reason: "one of endpoint ID, task ID, or app is required"}
	case populated > 1:
		return &InvalidSelectorError{Reason: "endpoint ID, task ID, and app are mutually exclusive"}
	case s.EndpointID != "" && s.Endpoint != "":
		return &InvalidSelectorError{Reason: "endpoint name cannot be combined with an endpoint ID"}
	case s.TaskID != "" && s.Endpoint == "":
		return &InvalidSelectorError{Reason: "endpoint name is required when selecting by task ID"}
	case s.App != "" && s.Endpoint == "":
		return &InvalidSelectorError{Reason: "endpoint name is required when selecting by app"}
	}
	return nil
}
