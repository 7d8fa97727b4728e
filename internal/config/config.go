// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
)

// Config carries everything the server needs from the environment.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"ADDR,default=:8080"`

	// DBPath is the SQLite database file path.
	DBPath string `env:"DB_PATH,default=./data/tripsplit.db"`

	// StaticPath, when set, enables serving the static frontend from
	// this directory.
	StaticPath string `env:"STATIC_PATH"`

	// JWTSecret signs access tokens. Change it in any real deployment.
	JWTSecret string `env:"JWT_SECRET,default=a_very_secret_key_that_should_be_changed"`

	// TokenTTL is how long issued access tokens remain valid.
	TokenTTL time.Duration `env:"TOKEN_TTL,default=30m"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}
