// Package config loads service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
)

// Config holds the full runtime configuration. The API key is the only
// secret; an empty key disables remote generation and routes every request
// to the fallback templates.
type Config struct {
	Env       string
	Port      int
	APIKey    string
	Model     string
	MaxTokens int
	DBPath    string
}

// Load reads configuration from environment variables, applying defaults.
// The caller is expected to have loaded any .env file first.
func Load() Config {
	return Config{
		Env:       getEnv("APP_ENV", "dev"),
		Port:      getEnvInt("PORT", 8080),
		APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		Model:     getEnv("EVENTGEN_MODEL", ""),
		MaxTokens: getEnvInt("EVENTGEN_MAX_TOKENS", 2000),
		DBPath:    getEnv("EVENTGEN_DB", "data/eventgen.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer in environment", "key", key, "value", v)
			return fallback
		}
		return num
	}
	return fallback
}
