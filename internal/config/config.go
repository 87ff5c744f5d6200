package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `split_words:"true" default:"development"`

	// Demo API server
	APIListenAddress string        `split_words:"true" default:":8080"`
	APIAllowedOrigin string        `split_words:"true" default:"*"`
	PostgresDSN      string        `split_words:"true" default:""`
	SessionLifetime  time.Duration `split_words:"true" default:"12h"`

	// API client
	APIBaseURL      string `split_words:"true" default:"http://localhost:8080"`
	CredentialsFile string `split_words:"true" default:""`

	// Readiness orchestration
	ComposeFile               string        `split_words:"true" default:"docker-compose.test.yml"`
	ReadinessPreDelay         time.Duration `split_words:"true" default:"60s"`
	ReadinessInterval         time.Duration `split_words:"true" default:"5s"`
	ReadinessMaxAttempts      int           `split_words:"true" default:"30"`
	ReadinessExpectedServices int           `split_words:"true" default:"3"`
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "production"
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("lf", config); err != nil {
		return nil, err
	}
	return config, nil
}
