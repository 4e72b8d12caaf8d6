// Package cli provides common process initialization utilities for
// cmd/tracker.
package cli

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	bolt "go.etcd.io/bbolt"

	"tracker/internal/config"
	"tracker/internal/log"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitBolt opens the bbolt database file holding the ledger slot.
// Returns the database or exits the process on failure.
func InitBolt(logger *log.Logger, path string) *bolt.DB {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		logger.Error("Failed to open ledger database", log.FieldError, err, "path", path)
		os.Exit(1)
	}
	return db
}
