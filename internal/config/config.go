package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"calculator-api/internal/storage"
)

// Prefix is the environment variable prefix for all settings,
// e.g. CALCULATOR_SERVER_PORT, CALCULATOR_DB_HOST.
const Prefix = "CALCULATOR"

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Config is the application configuration, built once at startup and passed
// explicitly to collaborators.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Version     string `envconfig:"VERSION" default:"1.0.0"`

	Server ServerConfig   `envconfig:"SERVER"`
	DB     storage.Config `envconfig:"DB"`

	// Rate limiting, requests per second with a burst allowance.
	RateLimit      float64 `envconfig:"RATE_LIMIT" default:"100"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"200"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://localhost:8000"`
}

// Load fills the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
