package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration options for the task manager
type Config struct {
	Logging     LoggingConfig
	Metrics     MetricsConfig
	Application ApplicationConfig
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Debug  bool   `env:"TM_DEBUG"`
	Level  string `env:"TM_LOG_LEVEL"`
	Format string `env:"TM_LOG_FORMAT"`
}

// MetricsConfig holds command metrics configuration
type MetricsConfig struct {
	Enabled   bool   `env:"TM_METRICS_ENABLED"`
	Namespace string `env:"TM_METRICS_NAMESPACE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout         time.Duration `env:"TM_APP_TIMEOUT"`
	ContinueOnError bool          `env:"TM_CONTINUE_ON_ERROR"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Debug:  false,
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "taskmanager",
		},
		Application: ApplicationConfig{
			Timeout:         60 * time.Second,
			ContinueOnError: false,
		},
	}
}

// LoadFromEnvironment overrides fields whose environment variable is set.
// Unset variables leave the current value in place.
func (c *Config) LoadFromEnvironment() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be one of debug, info, warn, error"}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be console or json"}
	}

	if c.Metrics.Namespace == "" {
		return &ConfigError{Field: "metrics.namespace", Message: "metrics namespace cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
