package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", cfg.BaseURL)
	}
	if cfg.PollInterval.Duration() != 10*time.Second {
		t.Errorf("PollInterval = %v, want 10s", cfg.PollInterval.Duration())
	}
	if cfg.WaitTimeout.Duration() != 0 {
		t.Errorf("WaitTimeout = %v, want 0", cfg.WaitTimeout.Duration())
	}
}

func TestParse_FullConfig(t *testing.T) {
	yaml := `
api_key: rvrs_secret
base_url: https://staging.revrse.ai
poll_interval: 5s
wait_timeout: 15m
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.APIKey != "rvrs_secret" {
		t.Errorf("APIKey = %q, want rvrs_secret", cfg.APIKey)
	}
	if cfg.BaseURL != "https://staging.revrse.ai" {
		t.Errorf("BaseURL = %q, want staging URL", cfg.BaseURL)
	}
	if cfg.PollInterval.Duration() != 5*time.Second {
		t.Errorf("PollInterval = %v, want 5s", cfg.PollInterval.Duration())
	}
	if cfg.WaitTimeout.Duration() != 15*time.Minute {
		t.Errorf("WaitTimeout = %v, want 15m", cfg.WaitTimeout.Duration())
	}
}

func TestParse_EnvSubstitution(t *testing.T) {
	t.Setenv("TEST_RVRS_KEY", "from-env")

	cfg, err := Parse([]byte("api_key: ${TEST_RVRS_KEY}"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want from-env", cfg.APIKey)
	}
}

func TestParse_EnvSubstitutionDefault(t *testing.T) {
	os.Unsetenv("TEST_RVRS_MISSING")

	cfg, err := Parse([]byte("base_url: ${TEST_RVRS_MISSING:-https://api.revrse.ai}"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.BaseURL != "https://api.revrse.ai" {
		t.Errorf("BaseURL = %q, want default URL", cfg.BaseURL)
	}
}

func TestParse_EnvSubstitutionMissing(t *testing.T) {
	os.Unsetenv("TEST_RVRS_MISSING")

	_, err := Parse([]byte("api_key: ${TEST_RVRS_MISSING}"))
	if err == nil || !strings.Contains(err.Error(), "TEST_RVRS_MISSING") {
		t.Errorf("Parse() error = %v, want missing env var error", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", ":\n:"},
		{"bad duration", "poll_interval: soon"},
		{"poll interval too small", "poll_interval: 100ms"},
		{"base url without scheme", "base_url: api.revrse.ai"},
		{"base url bad scheme", "base_url: ftp://api.revrse.ai"},
		{"negative wait timeout", "wait_timeout: -5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revrseai.yaml")
	content := "api_key: file-key\npoll_interval: 30s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q, want file-key", cfg.APIKey)
	}
	if cfg.PollInterval.Duration() != 30*time.Second {
		t.Errorf("PollInterval = %v, want 30s", cfg.PollInterval.Duration())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}
