// Package config loads the application configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"stocknotes/internal/platform/db"
)

// Config is the full application configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8080"`

	DB db.Config
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
