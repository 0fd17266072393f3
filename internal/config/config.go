package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string
	Port    string
	Seed    bool
	Borrow  BorrowConfig
	Stats   StatsConfig
}

// BorrowConfig holds borrow lifecycle configuration
type BorrowConfig struct {
	// HoldOnRequest controls whether creating a borrow request marks the
	// item unavailable until the request is cancelled or rejected. The
	// legacy behavior (false) leaves items requestable any number of times.
	HoldOnRequest bool
}

// StatsConfig holds the stats heartbeat configuration
type StatsConfig struct {
	// LogSchedule is a cron expression for the periodic platform-stats
	// log line. Empty disables the heartbeat.
	LogSchedule string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	seed, _ := strconv.ParseBool(getEnv("SEED_DEMO_DATA", strconv.FormatBool(appMode == "dev")))
	hold, _ := strconv.ParseBool(getEnv("BORROW_HOLD_ON_REQUEST", "true"))

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "5000"),
		Seed:    seed,
		Borrow: BorrowConfig{
			HoldOnRequest: hold,
		},
		Stats: StatsConfig{
			LogSchedule: getEnv("STATS_LOG_SCHEDULE", "0 * * * *"),
		},
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		return "*"
	}
	return origins
}
