package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all server configuration, loaded from the environment
// with .env overrides for local development.
type Config struct {
	Port               string
	DataFile           string
	AdminUsername      string
	AdminPassword      string
	SessionSecret      string
	GeminiAPIKey       string
	CorsAllowedOrigins []string
	SerializeWrites    bool
}

// Load reads configuration from the environment.
//
// ADMIN_USERNAME/ADMIN_PASSWORD default to a fixed pair and the session
// secret has a dev default. That is a prototype-only mechanism kept for
// parity with the original deployment; a real installation must set all
// three.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		DataFile:           getEnv("DATA_FILE", ""),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "password"),
		SessionSecret:      getEnv("SESSION_SECRET", "inkwell-dev-session-secret-change-me"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SerializeWrites:    getBoolEnv("SERIALIZE_WRITES", false),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getBoolEnv(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
