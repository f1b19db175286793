// Package config loads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds the server settings.
type Config struct {
	// HTTP Server
	Addr            string        `env:"EVENSPLIT_ADDR"             envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"EVENSPLIT_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// Storage
	Store        string `env:"EVENSPLIT_STORE"         envDefault:"sqlite"`
	DBPath       string `env:"EVENSPLIT_DB_PATH"       envDefault:"./data/evensplit.db"`
	SnapshotPath string `env:"EVENSPLIT_SNAPSHOT_PATH"`

	// Events (disabled when AMQPURL is empty)
	AMQPURL      string `env:"EVENSPLIT_AMQP_URL"`
	AMQPExchange string `env:"EVENSPLIT_AMQP_EXCHANGE" envDefault:"evensplit"`
}

// Load reads the optional dotenv files, then the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.Addr == "" {
		errs = append(errs, "listen address cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	switch c.Store {
	case StoreSQLite:
		if c.DBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite store")
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Sprintf("invalid store '%s': must be one of [%s %s]", c.Store, StoreSQLite, StoreMemory))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errs = append(errs, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
