package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/eugenenazirov/read-config/internal/lookup"
)

const (
	defaultLogLevel = "warn"

	envConfigFile = "READ_CONFIG_FILE"
	envLogLevel   = "READ_CONFIG_LOG_LEVEL"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI arguments > Environment variables > Defaults
type Config struct {
	ConfigFile string
	LogLevel   string
}

// CLIOverrides holds command-line overrides. Nil or empty values are ignored.
type CLIOverrides struct {
	ConfigFile *string
	LogLevel   *string
}

// Load resolves configuration with precedence:
// CLI arguments > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		ConfigFile: lookup.DefaultConfigFile,
		LogLevel:   defaultLogLevel,
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if path := strings.TrimSpace(os.Getenv(envConfigFile)); path != "" {
		cfg.ConfigFile = path
	}

	if level := strings.TrimSpace(os.Getenv(envLogLevel)); level != "" {
		cfg.LogLevel = level
	}
}

// applyCLIOverrides applies command-line overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ConfigFile != nil && *overrides.ConfigFile != "" {
		cfg.ConfigFile = *overrides.ConfigFile
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.ConfigFile == "" {
		return fmt.Errorf("config file path cannot be empty")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return nil
}
