// Package main is the entry point for the revrseai CLI.
//
// The RevrseAI client can be used as a library (SDK) or through this
// standalone binary, which wraps the common workflows:
//
//	revrseai generate "Log into Job Today and get my feed" --secret username=u --secret password=p
//	revrseai execute --app "Job Today" --endpoint login --field username=u --field password=p
//	revrseai info "Job Today" --out job_today.md
//	revrseai tasks
//	revrseai version
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/revrse-ai/revrseai-go"
	"github.com/revrse-ai/revrseai-go/config"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "revrseai",
	Short: "Generate and call APIs for Android apps",
	Long: `revrseai is the command-line client for the RevrseAI platform.

RevrseAI turns natural-language task descriptions into deterministic,
callable API endpoints for Android apps. The heavy lifting happens
server-side; this CLI starts generation tasks, waits for them to finish,
executes the generated endpoints, and exports their documentation.

Authentication uses an API key, read from the REVRSE_AI_API_KEY
environment variable, the --api-key flag, or a config file:

  api_key: ${REVRSE_AI_API_KEY}
  poll_interval: 10s`,
	// No Run/RunE means this just shows help when called without subcommands
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().String("api-key", "", "API key (overrides config and environment)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this revrseai binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("revrseai %s (sdk %s)\n", version, revrseai.Version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

// newLogger creates the CLI logger: colorized tint output on a terminal,
// JSON otherwise (piped output, CI).
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the config file when --config is given, otherwise
// returns defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Parse(nil)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newClient builds the SDK client from flags, config file, and environment.
func newClient(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*revrseai.Client, error) {
	opts := []revrseai.Option{revrseai.WithLogger(logger)}

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey != "" {
		opts = append(opts, revrseai.WithAPIKey(apiKey))
	}

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	if baseURL != "" {
		opts = append(opts, revrseai.WithBaseURL(baseURL))
	}

	return revrseai.New(opts...)
}

// Execute runs the root command.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}
