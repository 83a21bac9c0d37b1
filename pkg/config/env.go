// Package config provides environment variable helpers shared by configuration loaders.
package config

import (
	"log/slog"
	"os"
	"slices"
	"strings"
)

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted true values: "1", "t", "T", "true", "TRUE", "True"
// Accepted false values: "0", "f", "F", "false", "FALSE", "False"
//
// If the environment variable is not set, empty, or has an invalid value,
// this function returns the default value and logs a warning.
//
// Example:
//
//	enabled := GetEnvBool("CATALOG_METRICS_ENABLED", true)
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
}

// GetEnvOneOf returns the lower-cased value of an environment variable when it
// is one of allowed (compared case-insensitively).
//
// If the environment variable is not set, empty, or not allowed, this function
// returns the default value and logs a warning for the invalid case.
//
// Example:
//
//	level := GetEnvOneOf("LOG_LEVEL", "info", "debug", "info", "warn", "error")
func GetEnvOneOf(key, defaultValue string, allowed ...string) string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := strings.ToLower(valueStr)
	if slices.Contains(allowed, value) {
		return value
	}

	slog.Warn("unsupported value for environment variable, using default",
		slog.String("key", key),
		slog.String("value", valueStr),
		slog.String("default", defaultValue))
	return defaultValue
}

// GetEnvMatching returns the value of an environment variable when it satisfies
// valid, and the default value otherwise. An invalid value logs a warning.
func GetEnvMatching(key, defaultValue string, valid func(string) bool) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if !valid(value) {
		slog.Warn("invalid value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", value),
			slog.String("default", defaultValue))
		return defaultValue
	}
	return value
}
