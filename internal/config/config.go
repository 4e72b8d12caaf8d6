package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tracker/internal/core"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	BoltDBPath string

	// Monthly income figure used by the savings-rate insight. A fixed
	// placeholder rather than a value derived from recorded income.
	IncomeBaselineCents int64
}

func Load() *Config {
	cfg := &Config{
		Port:                getEnv("PORT", "8081"),
		BoltDBPath:          getEnv("BOLT_DB_PATH", "./data/tracker.db"),
		IncomeBaselineCents: getEnvCents("INCOME_BASELINE", 520000),
	}
	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.BoltDBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.BoltDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.IncomeBaselineCents <= 0 {
		errors = append(errors, fmt.Sprintf("invalid income baseline %d: must be positive", c.IncomeBaselineCents))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvCents reads a decimal dollar amount from the environment.
func getEnvCents(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if cents, err := core.ParseCents(value); err == nil && cents > 0 {
			return cents
		}
	}
	return defaultValue
}
