package config

import (
	"os"
	"strconv"
)

// Config videometrics-profiles (sub-profile API client) configuration
type Config struct {
	API struct {
		BaseURL        string
		Token          string
		TimeoutSeconds int
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}

	cfg.API.BaseURL = getEnv("API_BASE_URL", "http://localhost:8000/api")
	cfg.API.Token = getEnv("API_TOKEN", "")
	cfg.API.TimeoutSeconds = parseInt(getEnv("API_TIMEOUT_SECONDS", "30"), 30)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
