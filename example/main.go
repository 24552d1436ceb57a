// End-to-end example: generate endpoints for an app, wait for the task,
// export the documentation, then call one of the generated endpoints.
//
// Requires REVRSE_AI_API_KEY to be set.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/revrse-ai/revrseai-go"
)

func main() {
	// cancel the whole flow on Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := revrseai.New()
	if err != nil {
		slog.Error("failed to create client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	task, err := client.Generate(ctx,
		"Log into Job Today using my username and password and get the jobs on my feed",
		map[string]string{
			"username": os.Getenv("JOB_TODAY_USERNAME"),
			"password": os.Getenv("JOB_TODAY_PASSWORD"),
		},
	)
	if err != nil {
		slog.Error("failed to start generation", "error", err)
		os.Exit(1)
	}
	fmt.Printf("task %s started: %s\n", task.ID, task.Title)

	result, err := task.WaitTillDone(ctx,
		revrseai.WithPollInterval(10*time.Second),
		revrseai.WithWaitTimeout(30*time.Minute),
	)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if err := result.ExportMarkdownDocumentation("job_today_documentation.md"); err != nil {
		slog.Error("failed to export documentation", "error", err)
		os.Exit(1)
	}
	fmt.Println("documentation exported to job_today_documentation.md")

	// call the generated login endpoint directly
	login := result.Endpoint("login")
	if login == nil {
		slog.Error("no login endpoint was generated")
		os.Exit(1)
	}

	resp, err := login.Execute(ctx, map[string]any{
		"username": os.Getenv("JOB_TODAY_USERNAME"),
		"password": os.Getenv("JOB_TODAY_PASSWORD"),
	})
	if err != nil {
		slog.Error("execution failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("login: %s %v\n", resp.Status, resp.Data)
}
