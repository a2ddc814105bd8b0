package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Database
	DatabaseURL string

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// Storage
	StoragePath string

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Email (Resend)
	EnableEmailNotifications bool
	ResendAPIKey             string
	FromEmail                string
	AppURL                   string

	// Sentry
	SentryDSN string

	// Floor generation defaults applied to auto-generated floor rows
	FloorDefaultArea     string
	FloorDefaultQuantity string

	// Registration wizard drafts
	DraftTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTExpirationHours:       getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		StoragePath:              getEnv("STORAGE_PATH", "./storage"),
		WorkerCount:              getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:           getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		EnableEmailNotifications: getEnvAsBool("ENABLE_EMAIL_NOTIFICATIONS", false),
		ResendAPIKey:             getEnv("RESEND_API_KEY", ""),
		FromEmail:                getEnv("FROM_EMAIL", "noreply@propease.in"),
		AppURL:                   getEnv("APP_URL", "http://localhost:5173"),
		SentryDSN:                getEnv("SENTRY_DSN", ""),
		FloorDefaultArea:         getEnv("FLOOR_DEFAULT_AREA", "0"),
		FloorDefaultQuantity:     getEnv("FLOOR_DEFAULT_QUANTITY", "0"),
		DraftTTL:                 time.Duration(getEnvAsInt("DRAFT_TTL_HOURS", 24)) * time.Hour,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	if cfg.DraftTTL <= 0 {
		return nil, fmt.Errorf("DRAFT_TTL_HOURS must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool reads an environment variable as boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
