package revrseai

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func docFixture() *GenerationResult {
	// deliberately unsorted endpoints
	return &GenerationResult{
		TaskID:      "task-1",
		Title:       "Job Today automation",
		Description: "Log in and read the jobs feed",
		Endpoints: []Endpoint{
			{
				ID:   "ep-2",
				Name: "jobs-feed",
				App:  "Job Today",
				InputSchema: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"auth_token": {Type: "string", Description: "Token from login"},
					},
					Required: []string{"auth_token"},
				},
				OutputSchema: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"jobs": {Type: "array", Items: &Schema{Type: "string"}},
					},
				},
			},
			{
				ID:          "ep-1",
				Name:        "login",
				App:         "Job Today",
				Description: "Authenticate against the app",
				InputSchema: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"username": {Type: "string"},
						"password": {Type: "string"},
					},
					Required: []string{"username", "password"},
				},
				OutputSchema: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"auth_token": {Type: "string", Example: "tok"},
					},
				},
			},
			{ID: "ep-0", Name: "login", App: "Another App"},
		},
	}
}

func TestMarkdownDocumentation_Deterministic(t *testing.T) {
	result := docFixture()

	first := result.MarkdownDocumentation()
	second := result.MarkdownDocumentation()
	if first != second {
		t.Error("MarkdownDocumentation() is not deterministic across calls")
	}
}

func TestMarkdownDocumentation_Ordering(t *testing.T) {
	doc := docFixture().MarkdownDocumentation()

	// sorted by endpoint name, then app: jobs-feed, login (Another App), login (Job Today)
	jobsFeed := strings.Index(doc, "# jobs-feed")
	login := strings.Index(doc, "# login")
	if jobsFeed == -1 || login == -1 {
		t.Fatalf("rendered doc is missing endpoint sections:\n%s", doc)
	}
	if jobsFeed > login {
		t.Error("endpoints are not sorted by name")
	}

	// tie on name broken by app: Another App's ep-0 before Job Today's ep-1
	ep0 := strings.Index(doc, "ep-0")
	ep1 := strings.Index(doc, "ep-1")
	if ep0 == -1 || ep1 == -1 || ep0 > ep1 {
		t.Error("endpoints with equal names are not sorted by app")
	}

	// input must not mutate: caller's slice keeps its original order
	if docFixture().Endpoints[0].Name != "jobs-feed" {
		t.Error("rendering reordered the caller's endpoint slice")
	}
}

func TestMarkdownDocumentation_Content(t *testing.T) {
	doc := docFixture().MarkdownDocumentation()

	for _, want := range []string{
		"# Job Today automation",
		"> Log in and read the jobs feed",
		"## Endpoints",
		"| username | string | Yes | - |",
		"| auth_token | string | Yes | Token from login |",
		"revrseai.ByEndpointID(\"ep-1\")",
		"\"auth_token\": \"tok\"",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("rendered doc is missing %q", want)
		}
	}
}

func TestExportMarkdownDocumentation(t *testing.T) {
	result := docFixture()
	path := filepath.Join(t.TempDir(), "docs.md")

	if err := result.ExportMarkdownDocumentation(path); err != nil {
		t.Fatalf("ExportMarkdownDocumentation() error = %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read exported file: %v", err)
	}
	if string(written) != result.MarkdownDocumentation() {
		t.Error("exported file differs from rendered documentation")
	}
}

// Exporting the same endpoint set twice must produce byte-identical files.
func TestExportMarkdownDocumentation_Idempotent(t *testing.T) {
	result := docFixture()
	dir := t.TempDir()

	pathA := filepath.Join(dir, "a.md")
	pathB := filepath.Join(dir, "b.md")
	if err := result.ExportMarkdownDocumentation(pathA); err != nil {
		t.Fatalf("first export error = %v", err)
	}
	if err := result.ExportMarkdownDocumentation(pathB); err != nil {
		t.Fatalf("second export error = %v", err)
	}

	a, _ := os.ReadFile(pathA)
	b, _ := os.ReadFile(pathB)
	if string(a) != string(b) {
		t.Error("two exports of the same endpoint set differ")
	}
}

func TestExportMarkdownDocumentation_IOFailure(t *testing.T) {
	result := docFixture()
	path := filepath.Join(t.TempDir(), "missing-dir", "docs.md")

	err := result.ExportMarkdownDocumentation(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("ExportMarkdownDocumentation() error = %v, want IOError", err)
	}
	if ioErr.Path != path {
		t.Errorf("ioErr.Path = %v, want %v", ioErr.Path, path)
	}
}

func TestGenerationResult_Endpoint(t *testing.T) {
	result := docFixture()

	if ep := result.Endpoint("jobs-feed"); ep == nil || ep.ID != "ep-2" {
		t.Errorf("Endpoint(jobs-feed) = %v, want ep-2", ep)
	}
	if ep := result.Endpoint("nope"); ep != nil {
		t.Errorf("Endpoint(nope) = %v, want nil", ep)
	}
}
