package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// Database
	DatabaseURL string

	// Admin
	AdminAPIKey string // Shared secret checked against the X-Admin-Key header

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RedisAddr     string // When set, the rate limiter keeps its counters in Redis
	RedisPassword string

	// Features
	SeedDemoData bool // Insert demo events into an empty database at startup
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3001"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/rideboard?sslmode=disable"),
		AdminAPIKey:   getEnv("ADMIN_API_KEY", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SeedDemoData:  getEnv("SEED_DEMO_DATA", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDevelopment returns true when running in a development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
