// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/countdown-timer/countdown/internal/infrastructure/logger"
	"github.com/countdown-timer/countdown/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Countdown CountdownConfig
	Logging   LoggingConfig
	App       AppConfig
}

// CountdownConfig holds countdown engine settings.
type CountdownConfig struct {
	// Target is the initial target timestamp. Empty means it must be given on the command line.
	Target string `env:"COUNTDOWN_TARGET"`

	// Interval is the period between recomputations.
	Interval time.Duration `env:"COUNTDOWN_INTERVAL" envDefault:"1s"`

	// Timezone is the location used for timestamps without zone information.
	Timezone string `env:"COUNTDOWN_TIMEZONE" envDefault:"Local"`

	// StartPaused creates the engine in the paused state.
	StartPaused bool `env:"COUNTDOWN_START_PAUSED" envDefault:"false"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is json or console. Empty picks console in development, json elsewhere.
	Format string `env:"LOG_FORMAT"`
	Caller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Countdown.Interval <= 0 {
		return fmt.Errorf("COUNTDOWN_INTERVAL must be positive")
	}

	if _, err := timeutil.GetLocation(cfg.Countdown.Timezone); err != nil {
		return fmt.Errorf("COUNTDOWN_TIMEZONE is not a known location: %w", err)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"": true, logger.FormatJSON: true, logger.FormatConsole: true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// Location returns the configured location for zone-less timestamps.
// It falls back to time.Local if the name cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := timeutil.GetLocation(c.Countdown.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// LogFormat returns the explicit LOG_FORMAT, or the environment's default:
// console output while developing, JSON lines otherwise.
func (c *Config) LogFormat() string {
	if c.Logging.Format != "" {
		return c.Logging.Format
	}
	if c.IsDevelopment() {
		return logger.FormatConsole
	}
	return logger.FormatJSON
}
