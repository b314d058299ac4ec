// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kamalneel/agrawal-estate-sub000/internal/projection"
)

// Config holds application configuration
type Config struct {
	LogLevel      string
	Port          int
	DevMode       bool
	ReferenceDate time.Time // anchor for snapshots and historical CAGR
	ScanWorkers   int       // worker pool size for batch scoring
	BandsFile     string    // optional YAML banding-policy override
}

// Load reads configuration from environment variables, loading a .env file
// first if one exists.
func Load() (*Config, error) {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("NRANK_LOG_LEVEL", "info"),
		DevMode:       getEnv("NRANK_DEV_MODE", "") == "true",
		ReferenceDate: projection.DefaultReferenceDate,
		BandsFile:     getEnv("NRANK_BANDS_FILE", ""),
	}

	port, err := strconv.Atoi(getEnv("NRANK_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid NRANK_PORT: %w", err)
	}
	cfg.Port = port

	workers, err := strconv.Atoi(getEnv("NRANK_SCAN_WORKERS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid NRANK_SCAN_WORKERS: %w", err)
	}
	cfg.ScanWorkers = workers

	if raw := os.Getenv("NRANK_REFERENCE_DATE"); raw != "" {
		ref, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid NRANK_REFERENCE_DATE %q: %w", raw, err)
		}
		cfg.ReferenceDate = ref
	}

	return cfg, nil
}

// getEnv retrieves an environment variable value, returning a fallback if
// the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
