package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the surname collector.
type Config struct {
	// Source site settings
	Source SourceConfig `yaml:"source" json:"source"`

	// Pacing between requests
	Pacing PacingConfig `yaml:"pacing" json:"pacing"`

	// Retry behavior for page fetches
	Retry RetryConfig `yaml:"retry" json:"retry"`

	// Output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// SourceConfig holds settings for the directory site being collected.
type SourceConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url"`
	UserAgent string        `yaml:"user_agent" json:"user_agent"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
}

// PacingConfig serializes all network activity with fixed delays so the
// source server never sees more than one request at a time.
type PacingConfig struct {
	PageDelay   time.Duration `yaml:"page_delay" json:"page_delay"`
	PrefixDelay time.Duration `yaml:"prefix_delay" json:"prefix_delay"`
}

// RetryConfig holds retry settings for page fetches. MaxAttempts of 1 means
// a failed page fails the prefix immediately, which is the default.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" json:"max_attempts"`
	Delay       time.Duration `yaml:"delay" json:"delay"`
}

// OutputConfig holds output directory configuration.
type OutputConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// UnmarshalYAML decodes durations from strings like "300ms". Fields the
// file omits keep their current values.
func (s *SourceConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"`
		Timeout   string `yaml:"timeout"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if aux.BaseURL != "" {
		s.BaseURL = aux.BaseURL
	}
	if aux.UserAgent != "" {
		s.UserAgent = aux.UserAgent
	}
	if aux.Timeout != "" {
		d, err := time.ParseDuration(aux.Timeout)
		if err != nil {
			return fmt.Errorf("invalid source timeout: %w", err)
		}
		s.Timeout = d
	}
	return nil
}

func (p *PacingConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		PageDelay   string `yaml:"page_delay"`
		PrefixDelay string `yaml:"prefix_delay"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if aux.PageDelay != "" {
		d, err := time.ParseDuration(aux.PageDelay)
		if err != nil {
			return fmt.Errorf("invalid page delay: %w", err)
		}
		p.PageDelay = d
	}
	if aux.PrefixDelay != "" {
		d, err := time.ParseDuration(aux.PrefixDelay)
		if err != nil {
			return fmt.Errorf("invalid prefix delay: %w", err)
		}
		p.PrefixDelay = d
	}
	return nil
}

func (r *RetryConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		MaxAttempts int    `yaml:"max_attempts"`
		Delay       string `yaml:"delay"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if aux.MaxAttempts != 0 {
		r.MaxAttempts = aux.MaxAttempts
	}
	if aux.Delay != "" {
		d, err := time.ParseDuration(aux.Delay)
		if err != nil {
			return fmt.Errorf("invalid retry delay: %w", err)
		}
		r.Delay = d
	}
	return nil
}

// DefaultConfig returns a Config with the stock pacing and output settings.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			BaseURL:   "https://myoji.namedic.jp",
			UserAgent: "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			Timeout:   30 * time.Second,
		},
		Pacing: PacingConfig{
			PageDelay:   300 * time.Millisecond,
			PrefixDelay: 1500 * time.Millisecond,
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			Delay:       2 * time.Second,
		},
		Output: OutputConfig{
			Directory: "./data",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromEnv overrides configuration from NAMEDIC_* environment variables.
func (c *Config) LoadFromEnv() error {
	if baseURL := os.Getenv("NAMEDIC_BASE_URL"); baseURL != "" {
		c.Source.BaseURL = baseURL
	}
	if userAgent := os.Getenv("NAMEDIC_USER_AGENT"); userAgent != "" {
		c.Source.UserAgent = userAgent
	}
	if pageDelay := os.Getenv("NAMEDIC_PAGE_DELAY"); pageDelay != "" {
		d, err := time.ParseDuration(pageDelay)
		if err != nil {
			return fmt.Errorf("invalid NAMEDIC_PAGE_DELAY: %w", err)
		}
		c.Pacing.PageDelay = d
	}
	if prefixDelay := os.Getenv("NAMEDIC_PREFIX_DELAY"); prefixDelay != "" {
		d, err := time.ParseDuration(prefixDelay)
		if err != nil {
			return fmt.Errorf("invalid NAMEDIC_PREFIX_DELAY: %w", err)
		}
		c.Pacing.PrefixDelay = d
	}
	if attempts := os.Getenv("NAMEDIC_MAX_ATTEMPTS"); attempts != "" {
		val, err := strconv.Atoi(attempts)
		if err != nil || val <= 0 {
			return fmt.Errorf("invalid NAMEDIC_MAX_ATTEMPTS: %q", attempts)
		}
		c.Retry.MaxAttempts = val
	}
	if outputDir := os.Getenv("NAMEDIC_OUTPUT_DIR"); outputDir != "" {
		c.Output.Directory = outputDir
	}
	if logLevel := os.Getenv("NAMEDIC_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file. An empty path falls
// back to the standard search locations; finding none is not an error.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func (c *Config) findConfigFile() string {
	locations := []string{
		".namedic.yaml",
		".namedic.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "namedic", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".namedic.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks the configuration for values the collector cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Source.BaseURL == "" {
		errs = append(errs, errors.New("source base URL is required"))
	}
	if c.Source.Timeout <= 0 {
		errs = append(errs, errors.New("source timeout must be positive"))
	}
	if c.Pacing.PageDelay < 0 {
		errs = append(errs, errors.New("page delay must not be negative"))
	}
	if c.Pacing.PrefixDelay < 0 {
		errs = append(errs, errors.New("prefix delay must not be negative"))
	}
	if c.Retry.MaxAttempts <= 0 {
		errs = append(errs, errors.New("retry max attempts must be at least 1"))
	}
	if c.Output.Directory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Load builds the effective configuration: defaults, then the config file,
// then environment variables, then explicit flag overrides.
func Load(path string, flags map[string]interface{}) (*Config, error) {
	// A .env file next to the binary is picked up silently when present.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if err := cfg.LoadFromFile(path); err != nil {
		return nil, err
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	cfg.applyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFlags(flags map[string]interface{}) {
	for key, value := range flags {
		switch key {
		case "page-delay":
			if d, ok := value.(time.Duration); ok {
				c.Pacing.PageDelay = d
			}
		case "prefix-delay":
			if d, ok := value.(time.Duration); ok {
				c.Pacing.PrefixDelay = d
			}
		case "output":
			if s, ok := value.(string); ok && s != "" {
				c.Output.Directory = s
			}
		case "base-url":
			if s, ok := value.(string); ok && s != "" {
				c.Source.BaseURL = s
			}
		case "max-attempts":
			if n, ok := value.(int); ok && n > 0 {
				c.Retry.MaxAttempts = n
			}
		case "log-level":
			if s, ok := value.(string); ok && s != "" {
				c.Logging.Level = s
			}
		}
	}
}
