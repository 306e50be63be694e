package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"unipact/internal/config/configs"
)

// Config aggregates all configuration sections. Fields are populated from
// environment variables using caarlos0/env; nested sections are parsed with
// the prefix in their envPrefix tag. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). It is attached to
	// every log line and trace.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Store selects the persistence backend.
	Store configs.Store    `envPrefix:"STORE_"`
	Psql  configs.Postgres `envPrefix:"PSQL_"`

	Auth       configs.Auth       `envPrefix:"AUTH_"`
	S3         configs.S3         `envPrefix:"S3_"`
	Kafka      configs.Kafka      `envPrefix:"KAFKA_"`
	Telemetry  configs.Telemetry  `envPrefix:"OTEL_"`
	Reputation configs.Reputation `envPrefix:"REPUTATION_"`
}

// Load reads an optional .env file from the working directory and then the
// process environment into a Config. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return Parse()
}

// Parse reads the process environment into a Config without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules env tags cannot express.
func (c Config) Validate() error {
	if !c.Store.Valid() {
		return errors.New("STORE_BACKEND must be postgres or memory")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if c.Reputation.RefreshInterval < 0 {
		return errors.New("REPUTATION_REFRESH_INTERVAL must not be negative")
	}
	return nil
}
