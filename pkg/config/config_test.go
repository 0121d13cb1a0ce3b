package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pacing.PageDelay != 300*time.Millisecond {
		t.Errorf("Expected default page delay to be 300ms, got %v", cfg.Pacing.PageDelay)
	}

	if cfg.Pacing.PrefixDelay != 1500*time.Millisecond {
		t.Errorf("Expected default prefix delay to be 1.5s, got %v", cfg.Pacing.PrefixDelay)
	}

	if cfg.Source.BaseURL != "https://myoji.namedic.jp" {
		t.Errorf("Expected default base URL to be the namedic site, got %s", cfg.Source.BaseURL)
	}

	if cfg.Output.Directory != "./data" {
		t.Errorf("Expected default output directory to be ./data, got %s", cfg.Output.Directory)
	}

	if cfg.Retry.MaxAttempts != 1 {
		t.Errorf("Expected retries to be off by default, got max attempts %d", cfg.Retry.MaxAttempts)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("NAMEDIC_BASE_URL", "http://localhost:8080")
	os.Setenv("NAMEDIC_PAGE_DELAY", "50ms")
	os.Setenv("NAMEDIC_PREFIX_DELAY", "100ms")
	os.Setenv("NAMEDIC_OUTPUT_DIR", "/tmp/namedic-test")
	os.Setenv("NAMEDIC_MAX_ATTEMPTS", "3")
	os.Setenv("NAMEDIC_LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("NAMEDIC_BASE_URL")
		os.Unsetenv("NAMEDIC_PAGE_DELAY")
		os.Unsetenv("NAMEDIC_PREFIX_DELAY")
		os.Unsetenv("NAMEDIC_OUTPUT_DIR")
		os.Unsetenv("NAMEDIC_MAX_ATTEMPTS")
		os.Unsetenv("NAMEDIC_LOG_LEVEL")
	}()

	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("Failed to load from environment: %v", err)
	}

	if cfg.Source.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected base URL override, got %s", cfg.Source.BaseURL)
	}
	if cfg.Pacing.PageDelay != 50*time.Millisecond {
		t.Errorf("Expected page delay 50ms, got %v", cfg.Pacing.PageDelay)
	}
	if cfg.Pacing.PrefixDelay != 100*time.Millisecond {
		t.Errorf("Expected prefix delay 100ms, got %v", cfg.Pacing.PrefixDelay)
	}
	if cfg.Output.Directory != "/tmp/namedic-test" {
		t.Errorf("Expected output dir override, got %s", cfg.Output.Directory)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("Expected max attempts 3, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromEnvInvalidDuration(t *testing.T) {
	os.Setenv("NAMEDIC_PAGE_DELAY", "not-a-duration")
	defer os.Unsetenv("NAMEDIC_PAGE_DELAY")

	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err == nil {
		t.Error("Expected error for invalid duration")
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")

	content := `
source:
  base_url: http://example.test
pacing:
  page_delay: 10ms
  prefix_delay: 20ms
output:
  directory: /tmp/out
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if cfg.Source.BaseURL != "http://example.test" {
		t.Errorf("Expected base URL from file, got %s", cfg.Source.BaseURL)
	}
	if cfg.Pacing.PageDelay != 10*time.Millisecond {
		t.Errorf("Expected page delay 10ms, got %v", cfg.Pacing.PageDelay)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.Logging.Level)
	}

	// Values the file omits stay at their defaults.
	if cfg.Source.Timeout != 30*time.Second {
		t.Errorf("Expected timeout default to survive, got %v", cfg.Source.Timeout)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty base URL", func(c *Config) { c.Source.BaseURL = "" }, true},
		{"negative page delay", func(c *Config) { c.Pacing.PageDelay = -time.Second }, true},
		{"zero max attempts", func(c *Config) { c.Retry.MaxAttempts = 0 }, true},
		{"empty output dir", func(c *Config) { c.Output.Directory = "" }, true},
		{"zero delays are allowed", func(c *Config) {
			c.Pacing.PageDelay = 0
			c.Pacing.PrefixDelay = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadWithFlags(t *testing.T) {
	flags := map[string]interface{}{
		"page-delay":   42 * time.Millisecond,
		"prefix-delay": 84 * time.Millisecond,
		"output":       t.TempDir(),
		"max-attempts": 2,
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Pacing.PageDelay != 42*time.Millisecond {
		t.Errorf("Expected flag page delay, got %v", cfg.Pacing.PageDelay)
	}
	if cfg.Pacing.PrefixDelay != 84*time.Millisecond {
		t.Errorf("Expected flag prefix delay, got %v", cfg.Pacing.PrefixDelay)
	}
	if cfg.Retry.MaxAttempts != 2 {
		t.Errorf("Expected flag max attempts, got %d", cfg.Retry.MaxAttempts)
	}
}
