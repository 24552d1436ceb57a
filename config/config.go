// Package config provides YAML configuration parsing for the revrseai CLI.
//
// The CLI can run entirely off flags and the REVRSE_AI_API_KEY environment
// variable; a config file is a convenience for pinning defaults:
//
//	api_key: ${REVRSE_AI_API_KEY}
//	base_url: https://api.revrse.ai
//	poll_interval: 10s
//	wait_timeout: 15m
//
// String values support environment variable substitution with ${VAR} and
// ${VAR:-default} syntax.
package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// minPollInterval is the minimum allowed polling interval. This keeps a
// misconfigured CLI from hammering the task status route.
const minPollInterval = 1 * time.Second

// Config is the root configuration structure for the revrseai CLI.
//
// It maps directly to the YAML configuration file. Use [Load] or [Parse] to
// create a Config from YAML.
type Config struct {
	// APIKey authenticates against the RevrseAI API.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the API base URL. Empty keeps the SDK default.
	// Supports environment variable substitution.
	BaseURL string `yaml:"base_url"`

	// PollInterval is the time between task status queries while waiting
	// for generation to finish. Accepts duration strings like "10s", "1m".
	// Defaults to 10s.
	PollInterval Duration `yaml:"poll_interval"`

	// WaitTimeout bounds how long the CLI waits for a generation task.
	// Zero means no timeout.
	WaitTimeout Duration `yaml:"wait_timeout"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded before validation.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in APIKey and BaseURL. PollInterval
// defaults to 10s when absent.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = Duration(10 * time.Second)
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	expanded, err := expandEnvVars(c.APIKey)
	if err != nil {
		return fmt.Errorf("api_key: %w", err)
	}
	c.APIKey = expanded

	expanded, err = expandEnvVars(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	c.BaseURL = expanded

	if c.BaseURL != "" {
		parsed, err := url.Parse(c.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("base_url scheme must be http or https, got %q", parsed.Scheme)
		}
	}

	if c.PollInterval.Duration() < minPollInterval {
		return fmt.Errorf("poll_interval must be at least %s, got %s", minPollInterval, c.PollInterval.Duration())
	}

	if c.WaitTimeout.Duration() < 0 {
		return fmt.Errorf("wait_timeout cannot be negative, got %s", c.WaitTimeout.Duration())
	}

	return nil
}
