// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the process-level settings. The HTTP contract itself has no
// knobs; everything here is operational.
type Config struct {
	Port            int           `env:"PORT"              envDefault:"8080"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED"   envDefault:"true"`
	MetricsAddr     string        `env:"METRICS_ADDR"      envDefault:":9090"`
	LogLevel        string        `env:"LOG_LEVEL"         envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"  envDefault:"10s"`
	RequestMaxBytes int64         `env:"REQUEST_MAX_BYTES" envDefault:"1048576"`
}

// Load reads an optional .env file from the working directory, then parses
// and validates the environment. Variables already set win over .env.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv paths. Missing files are skipped.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	if c.MetricsEnabled && c.MetricsAddr == "" {
		return errors.New("metrics address is required when metrics are enabled")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.RequestMaxBytes <= 0 {
		return fmt.Errorf("request max bytes must be positive, got %d", c.RequestMaxBytes)
	}
	return nil
}

// Addr is the listen address of the public HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
