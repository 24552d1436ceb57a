package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd lists an app's existing endpoints.
var infoCmd = &cobra.Command{
	Use:   "info <app>",
	Short: "Show the existing endpoints of an app",
	Long: `Look up an app and print markdown documentation for its endpoints.

Example:
  revrseai info "Job Today"
  revrseai info "Job Today" --out job_today.md`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("out", "o", "", "write endpoint documentation to this file")
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	result, err := client.Info(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("info lookup failed: %w", err)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := result.ExportMarkdownDocumentation(out); err != nil {
			return err
		}
		logger.Info("documentation exported", "path", out, "endpoints", len(result.Endpoints))
		return nil
	}

	result.PrintMarkdownDocumentation()
	return nil
}
