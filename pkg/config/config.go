package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterReferer  string
	OpenRouterAppTitle string
	MaxUploadBytes     int64
}

// Load reads environment variables, optionally from a .env file if present.
// The OpenRouter key is resolved once here; an empty key is a valid state
// (the service degrades to the default model catalog).
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		OpenRouterAPIKey:   ResolveAPIKey(getEnv("SECRETS_FILE", "secrets.env")),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterReferer:  getEnv("OPENROUTER_REFERER", "https://kirax.ia"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "Kirax IA"),
		MaxUploadBytes:     getEnvInt64("MAX_UPLOAD_BYTES", 15<<20),
	}
	return cfg
}

// ResolveAPIKey looks the OpenRouter key up in the secrets file first, then
// in the process environment. Missing on both sides yields an empty string;
// resolution never fails.
func ResolveAPIKey(secretsFile string) string {
	if secrets, err := godotenv.Read(secretsFile); err == nil {
		if v := secrets["OPENROUTER_API_KEY"]; v != "" {
			return v
		}
	}
	return os.Getenv("OPENROUTER_API_KEY")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
