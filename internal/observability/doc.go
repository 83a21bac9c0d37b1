// Package observability groups the logging and metrics support used by the
// catalog services.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus collectors for catalog activity
package observability
