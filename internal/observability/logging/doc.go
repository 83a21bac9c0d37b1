// Package logging builds structured slog loggers.
//
// Level and format come from configuration; the catalog tags each service's
// logger with a component attribute.
//
// Example usage:
//
//	import "masthead/internal/observability/logging"
//
//	func main() {
//	    logger := logging.New(os.Stderr, "debug", "text")
//	    logger.Info("catalog ready", slog.Int("magazines", 3))
//	}
package logging
