package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envBaseURL        = "REDSOCIAL_API_URL"
	envRequestTimeout = "REDSOCIAL_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is loaded first when present; real environment
// variables win over .env entries (godotenv does not override them).
// Unparseable durations are ignored, keeping the previous value.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
