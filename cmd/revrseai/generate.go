package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/revrse-ai/revrseai-go"
)

// generateCmd starts a generation task and, by default, waits for it.
var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate API endpoints from a natural-language prompt",
	Long: `Start a generation task from a natural-language task description.

The platform explores the target app and builds the endpoints needed to
accomplish the task. By default the command waits for the task to finish
and prints the generated endpoint documentation.

Secrets (logins, passwords) are passed through to the generated endpoints'
execution context; they are not stored locally.

Example:
  revrseai generate "Log into Job Today and get the jobs on my feed" \
      --secret username=u --secret password=p \
      --out job_today.md`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringArray("secret", nil, "secret as key=value (repeatable)")
	generateCmd.Flags().Bool("no-wait", false, "start the task and exit without waiting")
	generateCmd.Flags().Duration("poll-interval", 0, "time between status checks (default from config, 10s)")
	generateCmd.Flags().Duration("timeout", 0, "maximum time to wait for the task (default from config, none)")
	generateCmd.Flags().StringP("out", "o", "", "write endpoint documentation to this file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cmd, cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	secretPairs, _ := cmd.Flags().GetStringArray("secret")
	secrets, err := parsePairs(secretPairs, "secret")
	if err != nil {
		return err
	}

	task, err := client.Generate(cmd.Context(), args[0], secrets)
	if err != nil {
		return fmt.Errorf("failed to start generation: %w", err)
	}
	logger.Info("task started", "task_id", task.ID, "title", task.Title)

	if noWait, _ := cmd.Flags().GetBool("no-wait"); noWait {
		fmt.Println(task.ID)
		return nil
	}

	waitOpts := []revrseai.WaitOption{}
	pollInterval, _ := cmd.Flags().GetDuration("poll-interval")
	if pollInterval == 0 {
		pollInterval = cfg.PollInterval.Duration()
	}
	if pollInterval > 0 {
		waitOpts = append(waitOpts, revrseai.WithPollInterval(pollInterval))
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = cfg.WaitTimeout.Duration()
	}
	if timeout > 0 {
		waitOpts = append(waitOpts, revrseai.WithWaitTimeout(timeout))
	}

	result, err := task.WaitTillDone(cmd.Context(), waitOpts...)
	if err != nil {
		return fmt.Errorf("generation did not complete: %w", err)
	}
	logger.Info("generation finished", "task_id", task.ID, "endpoints", len(result.Endpoints))

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := result.ExportMarkdownDocumentation(out); err != nil {
			return err
		}
		logger.Info("documentation exported", "path", out)
		return nil
	}

	result.PrintMarkdownDocumentation()
	return nil
}

// parsePairs parses repeated key=value flag values into a map.
func parsePairs(pairs []string, flag string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	parsed := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --%s %q (expected key=value)", flag, pair)
		}
		parsed[key] = value
	}
	return parsed, nil
}
