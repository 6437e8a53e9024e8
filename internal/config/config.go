package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // "sqlite", "postgres" or "mysql"
	DatabasePath   string // sqlite only
	DatabaseURL    string // postgres/mysql
	MigrationsPath string

	JWTSecret      string
	TokenDuration  time.Duration

	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AdminEmails  []string
	AppBaseURL   string

	MicrosoftClientID     string
	MicrosoftClientSecret string
	MicrosoftTenant       string
}

// Load reads configuration from the environment with sensible defaults.
// A local .env file is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./saferide.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-only-secret"),
		TokenDuration: 24 * time.Hour,

		AWSRegion:    getEnv("AWS_REGION", "ap-southeast-2"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "SafeRide"),
		AdminEmails:  splitList(getEnv("ADMIN_EMAILS", "")),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),

		MicrosoftClientID:     getEnv("MS_CLIENT_ID", ""),
		MicrosoftClientSecret: getEnv("MS_CLIENT_SECRET", ""),
		MicrosoftTenant:       getEnv("MS_TENANT", "common"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma-separated env value into a trimmed slice
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
