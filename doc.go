// Package revrseai is the Go client for the RevrseAI platform, which turns
// natural-language task descriptions into deterministic, callable API
// endpoints for Android apps.
//
// RevrseAI does the heavy lifting server-side: it explores the target app,
// reverse-engineers the flows needed for the described task, and publishes
// the result as a set of endpoints. This client wraps the platform's REST
// API: starting generation tasks, polling them to completion, executing
// generated endpoints, and exporting endpoint documentation.
//
// # Quick Start
//
// Create a client, generate endpoints from a prompt, and wait for the result:
//
//	client, err := revrseai.New() // reads REVRSE_AI_API_KEY
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := client.Generate(ctx,
//	    "Log into Job Today and get the jobs on my feed",
//	    map[string]string{"username": "u", "password": "p"},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := task.WaitTillDone(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.PrintMarkdownDocumentation()
//
// # Configuration
//
// The client uses the functional options pattern for configuration:
//
//	client, err := revrseai.New(
//	    revrseai.WithAPIKey("rvrs_..."),
//	    revrseai.WithLogger(logger),
//	)
//
// # Addressing Endpoints
//
// Generated endpoints are addressed with a [Selector], which must populate
// exactly one of three forms: endpoint ID, task ID plus endpoint name, or
// app name plus endpoint name:
//
//	res, err := client.Execute(ctx, revrseai.ByApp("Job Today", "login"),
//	    map[string]any{"username": "u", "password": "p"},
//	)
//
// All three forms resolve to the same endpoint when they reference the same
// underlying ID. Selector validation happens locally before any network I/O.
//
// # Errors
//
// Failures are surfaced as typed errors ([ErrMissingCredential],
// [InvalidSelectorError], [EndpointNotFoundError], [PollTimeoutError],
// [GenerationFailedError], [APIError], [TransportError], [IOError]) and
// compose with errors.Is and errors.As. A service-reported execution failure
// is not an error: it is returned as an [ExecutionResult] with
// [ExecutionError] status.
//
// The client never retries automatically. Generated endpoints act against
// live app accounts, so a repeated invocation may repeat a side effect.
package revrseai
