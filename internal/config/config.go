// Package config provides runtime configuration values for the service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Inventory source kinds.
const (
	SourceMock = "mock"
	SourceHTTP = "http"
	SourceCSV  = "csv"
)

// Config holds configuration knobs for the HTTP server and inventory loading.
type Config struct {
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`

	Source       string        `envconfig:"INVENTORY_SOURCE" default:"mock"`
	URL          string        `envconfig:"INVENTORY_URL"`
	CSVPath      string        `envconfig:"INVENTORY_CSV"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	FetchRetries int           `envconfig:"FETCH_RETRIES" default:"0"`
}

// Load collects configuration from environment with defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		ShutdownTimeout: 15 * time.Second,
		LogLevel:        "info",
		Source:          SourceMock,
		FetchTimeout:    10 * time.Second,
	}
}

// Validate checks that the selected inventory source is fully specified.
func (c Config) Validate() error {
	switch c.Source {
	case SourceMock:
	case SourceHTTP:
		if c.URL == "" {
			return errors.New("INVENTORY_URL is required when INVENTORY_SOURCE=http")
		}
	case SourceCSV:
		if c.CSVPath == "" {
			return errors.New("INVENTORY_CSV is required when INVENTORY_SOURCE=csv")
		}
	default:
		return fmt.Errorf("unknown INVENTORY_SOURCE %q", c.Source)
	}
	if c.FetchRetries < 0 {
		return errors.New("FETCH_RETRIES must be >= 0")
	}
	return nil
}

// FetchBudget bounds one load including every retry attempt.
func (c Config) FetchBudget() time.Duration {
	return c.FetchTimeout*time.Duration(c.FetchRetries+1) + time.Second
}
