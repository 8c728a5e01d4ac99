package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (see LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Nil fields are left alone.
type ConfigOverrides struct {
	// Logging overrides
	Debug     *bool
	LogLevel  *string
	LogFormat *string

	// Metrics overrides
	MetricsEnabled *bool

	// Application overrides
	Timeout         *time.Duration
	ContinueOnError *bool
}

// Apply copies every non-nil override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.Debug != nil {
		config.Logging.Debug = *o.Debug
	}
	if o.LogLevel != nil {
		config.Logging.Level = *o.LogLevel
	}
	if o.LogFormat != nil {
		config.Logging.Format = *o.LogFormat
	}

	if o.MetricsEnabled != nil {
		config.Metrics.Enabled = *o.MetricsEnabled
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.ContinueOnError != nil {
		config.Application.ContinueOnError = *o.ContinueOnError
	}
}
