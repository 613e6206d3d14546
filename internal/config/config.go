// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int `env:"PORT" envDefault:"8080"`

	// DBPath is the SQLite database file path.
	DBPath string `env:"DB_PATH" envDefault:"./data/vensoc.db"`

	// JWTSecret signs session tokens. Must be set outside local development.
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`

	// TokenDuration is how long session tokens stay valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
