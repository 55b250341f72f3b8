// Package config loads settings for the vecdemo tool.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config holds all vecdemo configuration.
type Config struct {
	Vector   VectorConfig   `yaml:"vector"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Selftest SelftestConfig `yaml:"selftest"`
}

// VectorConfig configures vectors created by the tool.
type VectorConfig struct {
	InitialCapacity int `yaml:"initial_capacity"`
	// MemoryLimit caps buffer bytes across all vectors; 0 means unlimited.
	MemoryLimit int64 `yaml:"memory_limit"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// MetricsConfig configures allocator metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// SelftestConfig configures the randomized self test.
type SelftestConfig struct {
	Seed  uint64   `yaml:"seed"`
	Tests []string `yaml:"tests"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Vector: VectorConfig{
			InitialCapacity: 2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Namespace: "govec",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv applies GOVEC_* environment overrides.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("GOVEC_INITIAL_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Vector.InitialCapacity = n
		}
	}
	if v := os.Getenv("GOVEC_MEMORY_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Vector.MemoryLimit = n
		}
	}
	if v := os.Getenv("GOVEC_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("GOVEC_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("GOVEC_METRICS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if v := os.Getenv("GOVEC_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Selftest.Seed = n
		}
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var err error
	if c.Vector.InitialCapacity < 1 {
		err = multierr.Append(err, fmt.Errorf("vector.initial_capacity must be at least 1, got %d", c.Vector.InitialCapacity))
	}
	if c.Vector.MemoryLimit < 0 {
		err = multierr.Append(err, fmt.Errorf("vector.memory_limit must not be negative, got %d", c.Vector.MemoryLimit))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.format %q is not one of json, console", c.Logging.Format))
	}
	return err
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
