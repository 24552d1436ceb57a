package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revrse-ai/revrseai-go"
)

// executeCmd invokes a generated endpoint.
var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Execute a generated endpoint",
	Long: `Execute a generated endpoint and print the result as JSON.

The endpoint is addressed in exactly one of three ways:
  --endpoint-id <id>
  --task <task-id> --endpoint <name>
  --app <app-name> --endpoint <name>

Input data can be given as a JSON object (--data) or as repeated
--field key=value pairs.

Examples:
  revrseai execute --endpoint-id abc123 --data '{"username":"u","password":"p"}'
  revrseai execute --app "Job Today" --endpoint login --field username=u --field password=p`,
	RunE: runExecute,
}

func init() {
	rootCmd.AddCommand(executeCmd)

	executeCmd.Flags().String("endpoint-id", "", "endpoint ID to execute")
	executeCmd.Flags().String("task", "", "task ID owning the endpoint")
	executeCmd.Flags().String("app", "", "app name owning the endpoint")
	executeCmd.Flags().String("endpoint", "", "endpoint name (with --task or --app)")
	executeCmd.Flags().String("data", "", "endpoint input as a JSON object")
	executeCmd.Flags().StringArray("field", nil, "endpoint input field as key=value (repeatable)")
}

func runExecute(cmd *cobra.Command, args []string) error {
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

	sel, err := selectorFromFlags(cmd)
	if err != nil {
		return err
	}

	data, err := dataFromFlags(cmd)
	if err != nil {
		return err
	}

	result, err := client.Execute(cmd.Context(), sel, data)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))

	if result.Status == revrseai.ExecutionError {
		logger.Warn("endpoint reported an error", "detail", result.ErrorDetail)
	}
	return nil
}

// selectorFromFlags builds the endpoint selector from the addressing flags.
// Validation of "exactly one form" is left to the SDK.
func selectorFromFlags(cmd *cobra.Command) (revrseai.Selector, error) {
	endpointID, _ := cmd.Flags().GetString("endpoint-id")
	taskID, _ := cmd.Flags().GetString("task")
	app, _ := cmd.Flags().GetString("app")
	endpoint, _ := cmd.Flags().GetString("endpoint")

	return revrseai.Selector{
		EndpointID: endpointID,
		TaskID:     taskID,
		App:        app,
		Endpoint:   endpoint,
	}, nil
}

// dataFromFlags merges --data JSON and --field pairs into the endpoint input.
// --field values override keys from --data.
func dataFromFlags(cmd *cobra.Command) (map[string]any, error) {
	var data map[string]any

	if raw, _ := cmd.Flags().GetString("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("invalid --data: %w", err)
		}
	}

	fieldPairs, _ := cmd.Flags().GetStringArray("field")
	fields, err := parsePairs(fieldPairs, "field")
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if data == nil {
			data = make(map[string]any, len(fields))
		}
		for k, v := range fields {
			data[k] = v
		}
	}

	return data, nil
}
