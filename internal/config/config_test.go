package config

import (
	"os"
	"testing"
)

func TestLoad_DefaultValues(t *testing.T) {
	os.Clearenv()

	cfg := Load()

	if cfg.API.BaseURL != "http://localhost:8000/api" {
		t.Errorf("Expected API_BASE_URL default 'http://localhost:8000/api', got '%s'", cfg.API.BaseURL)
	}

	if cfg.API.Token != "" {
		t.Errorf("Expected API_TOKEN default '', got '%s'", cfg.API.Token)
	}

	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("Expected API_TIMEOUT_SECONDS default 30, got %d", cfg.API.TimeoutSeconds)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Expected LOG_FORMAT default 'json', got '%s'", cfg.Log.Format)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	os.Setenv("API_BASE_URL", "https://api.test.local/v1")
	os.Setenv("API_TOKEN", "test-token")
	os.Setenv("API_TIMEOUT_SECONDS", "5")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("API_BASE_URL")
		os.Unsetenv("API_TOKEN")
		os.Unsetenv("API_TIMEOUT_SECONDS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg := Load()

	if cfg.API.BaseURL != "https://api.test.local/v1" {
		t.Errorf("Expected API_BASE_URL 'https://api.test.local/v1', got '%s'", cfg.API.BaseURL)
	}

	if cfg.API.Token != "test-token" {
		t.Errorf("Expected API_TOKEN 'test-token', got '%s'", cfg.API.Token)
	}

	if cfg.API.TimeoutSeconds != 5 {
		t.Errorf("Expected API_TIMEOUT_SECONDS 5, got %d", cfg.API.TimeoutSeconds)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Expected LOG_LEVEL 'debug', got '%s'", cfg.Log.Level)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	os.Setenv("API_TIMEOUT_SECONDS", "not-a-number")
	defer os.Unsetenv("API_TIMEOUT_SECONDS")

	cfg := Load()

	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("Expected fallback timeout 30, got %d", cfg.API.TimeoutSeconds)
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	value := getEnv("TEST_VAR", "default")
	if value != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", value)
	}

	value = getEnv("NON_EXISTENT_VAR", "default-value")
	if value != "default-value" {
		t.Errorf("Expected 'default-value', got '%s'", value)
	}
}
