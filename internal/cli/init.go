// Package cli provides the console presentation layer: command
// bootstrap, user input parsing, the interactive menu and the cobra
// commands for scripted use.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"expenses/internal/config"
	"expenses/internal/log"
)

// SetupLogger initializes structured logging at the configured level
// and sets it as the default logger.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(log.Config{
		Level:     cfg.SlogLevel(),
		Component: log.ComponentApp,
	})
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
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger := log.New(log.DefaultConfig())
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}
