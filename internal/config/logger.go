package config

import (
	"fmt"
	"strings"
)

// Levels and formats accepted by LoggerConfig.Validate.
var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is the minimum logging level.
	Level string
	// Format selects the zap encoder (json or console).
	Format string
	// Output is the log destination (stdout, stderr, or a file path).
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment
// variables. Level and format are normalized to lower case so LOG_LEVEL=INFO
// and LOG_LEVEL=info configure the same logger.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  strings.ToLower(strings.TrimSpace(GetEnv("LOG_LEVEL", "info"))),
		Format: strings.ToLower(strings.TrimSpace(GetEnv("LOG_FORMAT", "json"))),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate checks that the level and format are supported.
func (c LoggerConfig) Validate() error {
	if !containsString(logLevels, c.Level) {
		return fmt.Errorf("invalid log level %q (must be one of: %s)", c.Level, strings.Join(logLevels, ", "))
	}
	if !containsString(logFormats, c.Format) {
		return fmt.Errorf("invalid log format %q (must be one of: %s)", c.Format, strings.Join(logFormats, ", "))
	}
	return nil
}

// IsProduction returns true if logger is configured for production.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}

func containsString(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
