// Package config loads application configuration from the environment and
// an optional .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"budgetcast/internal/logger"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string
	Port string

	// Projection defaults
	DefaultCurrency     string
	ProjectionMonths    int
	AffordabilityMonths int

	// Pipeline
	PipelineAPIKey   string
	SnapshotSchedule string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		// Projection defaults
		DefaultCurrency:     getEnv("DEFAULT_CURRENCY", "USD"),
		ProjectionMonths:    getEnvInt("PROJECTION_MONTHS", 12, 1, 120),
		AffordabilityMonths: getEnvInt("AFFORDABILITY_MONTHS", 24, 1, 120),

		// Pipeline
		PipelineAPIKey:   getEnv("PIPELINE_API_KEY", ""),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", ""),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			logger.Get().Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an integer within [min, max]. Anything else logs a
// warning and falls back to the default.
func getEnvInt(key string, defaultValue, min, max int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		logger.Get().Warnf("invalid %s value '%s', falling back to %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}
