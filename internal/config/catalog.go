// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	envconfig "masthead/pkg/config"
)

// Supported values for CatalogConfig.Logging.
var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

var metricNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// CatalogConfig holds configuration for a catalog instance.
type CatalogConfig struct {
	Logging LoggingConfig
	Metrics MetricsConfig
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Default: "info"
	Level string
	// Format is json or text. Default: "json"
	Format string
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	// Enabled controls whether Prometheus collectors are created. Default: true
	Enabled bool
	// Namespace prefixes every metric name. Default: "masthead"
	Namespace string
}

// DefaultCatalogConfig returns the configuration used when no environment is set.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true, Namespace: "masthead"},
	}
}

// LoadCatalogConfig loads catalog configuration from environment variables.
// Unset variables take their defaults; invalid values fall back to the default
// with a warning.
func LoadCatalogConfig() (*CatalogConfig, error) {
	def := DefaultCatalogConfig()
	config := &CatalogConfig{
		Logging: LoggingConfig{
			Level:  envconfig.GetEnvOneOf("LOG_LEVEL", def.Logging.Level, logLevels...),
			Format: envconfig.GetEnvOneOf("LOG_FORMAT", def.Logging.Format, logFormats...),
		},
		Metrics: MetricsConfig{
			Enabled:   envconfig.GetEnvBool("CATALOG_METRICS_ENABLED", def.Metrics.Enabled),
			Namespace: envconfig.GetEnvMatching("CATALOG_METRICS_NAMESPACE", def.Metrics.Namespace, metricNamespacePattern.MatchString),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness. Level and format names are
// case-insensitive.
func (c *CatalogConfig) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	if !slices.Contains(logFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("LOG_FORMAT must be json or text; got %q", c.Logging.Format)
	}

	if c.Metrics.Enabled && !metricNamespacePattern.MatchString(c.Metrics.Namespace) {
		return fmt.Errorf("CATALOG_METRICS_NAMESPACE %q is not a valid metric name prefix", c.Metrics.Namespace)
	}

	return nil
}
