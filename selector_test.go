package revrseai

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestSelector_Valid(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
	}{
		{"by endpoint id", ByEndpointID("ep-1")},
		{"by task", ByTask("task-1", "login")},
		{"by app", ByApp("Job Today", "login")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sel.validate(); err != nil {
				t.Errorf("validate() error = %v, want nil", err)
			}
		})
	}
}

func TestSelector_Invalid(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
	}{
		{"empty", Selector{}},
		{"endpoint name only", Selector{Endpoint: "login"}},
		{"id and task", Selector{EndpointID: "ep-1", TaskID: "task-1", Endpoint: "login"}},
		{"id and app", Selector{EndpointID: "ep-1", App: "Job Today", Endpoint: "login"}},
		{"task and app", Selector{TaskID: "task-1", App: "Job Today", Endpoint: "login"}},
		{"all three", Selector{EndpointID: "ep-1", TaskID: "task-1", App: "Job Today", Endpoint: "login"}},
		{"id with endpoint name", Selector{EndpointID: "ep-1", Endpoint: "login"}},
		{"task without endpoint name", Selector{TaskID: "task-1"}},
		{"app without endpoint name", Selector{App: "Job Today"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.validate()
			var invalid *InvalidSelectorError
			if !errors.As(err, &invalid) {
				t.Errorf("validate() error = %v, want InvalidSelectorError", err)
			}
		})
	}
}

// An invalid selector must be rejected locally, before any request is made.
func TestResolveAndExecute_InvalidSelectorNoNetworkCall(t *testing.T) {
	var requests atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		writeJSON(t, w, http.StatusOK, map[string]any{})
	})

	client := newTestClient(t, handler)
	bad := Selector{TaskID: "task-1"} // missing endpoint name

	var invalid *InvalidSelectorError
	if _, err := client.Resolve(context.Background(), bad); !errors.As(err, &invalid) {
		t.Errorf("Resolve() error = %v, want InvalidSelectorError", err)
	}
	if _, err := client.Execute(context.Background(), bad, nil); !errors.As(err, &invalid) {
		t.Errorf("Execute() error = %v, want InvalidSelectorError", err)
	}

	if got := requests.Load(); got != 0 {
		t.Errorf("network requests = %d, want 0", got)
	}
}

func TestSelector_String(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		want string
	}{
		{"by id", ByEndpointID("ep-1"), `endpoint "ep-1"`},
		{"by task", ByTask("task-1", "login"), `endpoint "login" of task "task-1"`},
		{"by app", ByApp("Job Today", "login"), `endpoint "login" of app "Job Today"`},
		{"app only", Selector{App: "Job Today"}, `app "Job Today"`},
		{"empty", Selector{}, "empty selector"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
