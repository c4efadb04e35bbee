package config

import (
	"os"
	"strings"
	"time"
)

// Default base URLs per deployment target.
const (
	localBaseURL      = "http://localhost:3002"
	productionBaseURL = "https://api.petstore.example.com"
)

// RequestTimeout bounds every request to the Petstore API.
const RequestTimeout = 30 * time.Second

// Config carries the process-wide settings for talking to the Petstore API.
// It is built once at startup and never mutated afterwards.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// FromEnv resolves configuration from the environment. APP_ENV selects the
// deployment target: "local" (the default) reads API_BASE_URL, anything else
// reads PRODUCTION_API_URL.
func FromEnv() Config {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	var base string
	if env == "local" {
		base = envOr("API_BASE_URL", localBaseURL)
	} else {
		base = envOr("PRODUCTION_API_URL", productionBaseURL)
	}

	return Config{
		BaseURL: strings.TrimSuffix(strings.TrimSpace(base), "/"),
		Timeout: RequestTimeout,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
