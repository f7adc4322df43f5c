// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Mode selects which surface main runs.
type Mode string

const (
	ModeWalkthrough Mode = "walkthrough"
	ModeServer      Mode = "server"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_MODE=server, APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	// Mode is walkthrough (console lessons) or server (HTTP API)
	Mode Mode `envconfig:"MODE" default:"walkthrough"`

	Server ServerConfig

	Database DatabaseConfig

	Storage StorageConfig

	Log LogConfig

	Walkthrough WalkthroughConfig

	Metrics MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// Only used when Storage.Driver is "postgres".
type DatabaseConfig struct {
	Host string `envconfig:"DB_HOST" default:"localhost"`

	Port int `envconfig:"DB_PORT" default:"5432"`

	User string `envconfig:"DB_USER" default:"postgres"`

	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	Name string `envconfig:"DB_NAME" default:"lessonbox"`

	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 10)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the minimum number of idle connections kept (default: 2)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`

	// ConnectTimeout bounds pool creation and the first ping (default: 5s)
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`
}

// StorageConfig selects the repository implementation.
type StorageConfig struct {
	// Driver is memory or postgres (default: memory)
	Driver string `envconfig:"STORAGE_DRIVER" default:"memory"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: json, text, plain (default: text)
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// WalkthroughConfig controls the console lessons.
type WalkthroughConfig struct {
	// NotePath is where the note lesson writes its file (default: lessonbox-note.txt)
	NotePath string `envconfig:"NOTE_PATH" default:"lessonbox-note.txt"`

	// MissingPath is the file the not-found lesson tries to read
	MissingPath string `envconfig:"MISSING_PATH" default:"non_existent_file.txt"`

	// Interactive reads the division lesson's denominator from stdin (default: false)
	Interactive bool `envconfig:"INTERACTIVE" default:"false"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Enabled exposes /metrics on the HTTP server (default: true)
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate rejects values envconfig cannot check on its own.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWalkthrough, ModeServer:
	default:
		return fmt.Errorf("invalid APP_MODE %q: want %q or %q", c.Mode, ModeWalkthrough, ModeServer)
	}
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("invalid APP_STORAGE_DRIVER %q: want %q or %q", c.Storage.Driver, StorageMemory, StoragePostgres)
	}
	return nil
}

// Load reads configuration from environment variables.
// It returns an error if required variables are missing or invalid.
func Load() (*Config, error) {
	var cfg Config

	// Each section is processed on its own so env vars stay flat:
	// APP_PORT rather than APP_SERVER_PORT.
	if err := envconfig.Process("APP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	sections := []struct {
		name   string
		target any
	}{
		{"server", &cfg.Server},
		{"database", &cfg.Database},
		{"storage", &cfg.Storage},
		{"log", &cfg.Log},
		{"walkthrough", &cfg.Walkthrough},
		{"metrics", &cfg.Metrics},
	}
	for _, s := range sections {
		if err := envconfig.Process("APP", s.target); err != nil {
			return nil, fmt.Errorf("failed to load %s config: %w", s.name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
