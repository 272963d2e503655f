// Package config loads hellotui settings: defaults, an optional YAML file,
// then environment overrides. Command-line flags are applied last by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hellotui/internal/user"
)

const (
	// ConfigFileEnv names an optional YAML config file.
	ConfigFileEnv = "HELLOTUI_CONFIG"
	// EndpointEnv overrides the user endpoint.
	EndpointEnv = "HELLOTUI_ENDPOINT"
	// LogFileEnv overrides the log file path.
	LogFileEnv = "HELLOTUI_LOG_FILE"
)

// Config holds all hellotui configuration.
type Config struct {
	// Endpoint is the URL of the single user resource.
	Endpoint string `yaml:"endpoint"`
	// Timeout bounds the fetch. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`

	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging; the TUI owns stdout
}

// TelemetryConfig configures OTLP tracing. Export is enabled only when
// OTEL_EXPORTER_OTLP_ENDPOINT is set.
type TelemetryConfig struct {
	ServiceName string `yaml:"service_name"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Endpoint: user.DefaultEndpoint,
		Logging: LoggingConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "hellotui",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if path is
// non-empty) and environment overrides. An empty path falls back to
// HELLOTUI_CONFIG. A named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(ConfigFileEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EndpointEnv); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(LogFileEnv); v != "" {
		c.Logging.File = v
	}
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("config: endpoint must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}
