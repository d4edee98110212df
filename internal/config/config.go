package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultDisposableDomains is the built-in denylist; override or extend it
// with the DISPOSABLE_EMAIL_DOMAINS env var (comma-separated).
var defaultDisposableDomains = []string{
	"tempmail.com",
	"throwaway.email",
	"10minutemail.com",
	"guerrillamail.com",
	"mailinator.com",
	"trashmail.com",
}

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string

	DisposableEmailDomains []string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		DisposableEmailDomains: defaultDisposableDomains,
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASS"),
			getEnv("DB_NAME", "student_records"),
			getEnv("DB_PORT", "5432"),
		)
	}

	if domains := os.Getenv("DISPOSABLE_EMAIL_DOMAINS"); domains != "" {
		cfg.DisposableEmailDomains = splitAndTrim(domains)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
