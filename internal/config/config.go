// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings.
type Config struct {
	Port        int           `env:"PORT"         envDefault:"8080"`
	DBPath      string        `env:"DB_PATH"      envDefault:"./data/ledger.db"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"    envDefault:"24h"`
	LogLevel    string        `env:"LOG_LEVEL"    envDefault:"info"`
	MetricsPath string        `env:"METRICS_PATH" envDefault:"/metrics"`
	CORSOrigin  string        `env:"CORS_ORIGIN"  envDefault:"*"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
