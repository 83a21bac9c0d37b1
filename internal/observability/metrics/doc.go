// Package metrics provides Prometheus collectors for catalog activity.
//
// Collectors are registered on an explicit prometheus.Registerer rather than
// the global default registry, so every catalog can own an isolated registry.
//
// Example usage:
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.NewPrometheusMetrics(reg, "masthead")
//	if err != nil {
//	    return err
//	}
//	m.RecordReassignment("author")
package metrics
