package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics records registry activity of one catalog.
type CatalogMetrics interface {
	// SetAuthors records the current number of authors.
	SetAuthors(count int)
	// SetMagazines records the current number of magazines.
	SetMagazines(count int)
	// SetArticles records the current number of articles.
	SetArticles(count int)
	// RecordReassignment counts an article endpoint change. Field is "author" or "magazine".
	RecordReassignment(field string)
	// RecordValidationFailure counts a rejected construction or update.
	RecordValidationFailure(entity, field, kind string)
}

// PrometheusMetrics implements CatalogMetrics using Prometheus.
//
// Collectors are registered on the registerer passed to NewPrometheusMetrics,
// so two catalogs with separate registries never share counters.
type PrometheusMetrics struct {
	authorsTotal   prometheus.Gauge
	magazinesTotal prometheus.Gauge
	articlesTotal  prometheus.Gauge

	// reassignmentsTotal tracks article endpoint changes.
	// Labels:
	//   - field: "author" or "magazine"
	reassignmentsTotal *prometheus.CounterVec

	// validationFailuresTotal tracks rejected inputs.
	// Labels:
	//   - entity: "author", "magazine" or "article"
	//   - field: the offending field
	//   - kind: "type" or "range"
	validationFailuresTotal *prometheus.CounterVec
}

// NewPrometheusMetrics creates the catalog collectors under namespace and registers
// them on reg. It returns an error if any collector is already registered.
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		authorsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "authors_total",
			Help:      "Current number of authors in the catalog",
		}),
		magazinesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "magazines_total",
			Help:      "Current number of magazines in the catalog",
		}),
		articlesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "articles_total",
			Help:      "Current number of articles in the catalog",
		}),
		reassignmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "article_reassignments_total",
				Help:      "Total article author/magazine reassignments",
			},
			[]string{"field"},
		),
		validationFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Total rejected inputs by entity, field and kind",
			},
			[]string{"entity", "field", "kind"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.authorsTotal,
		m.magazinesTotal,
		m.articlesTotal,
		m.reassignmentsTotal,
		m.validationFailuresTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) SetAuthors(count int)   { m.authorsTotal.Set(float64(count)) }
func (m *PrometheusMetrics) SetMagazines(count int) { m.magazinesTotal.Set(float64(count)) }
func (m *PrometheusMetrics) SetArticles(count int)  { m.articlesTotal.Set(float64(count)) }

func (m *PrometheusMetrics) RecordReassignment(field string) {
	m.reassignmentsTotal.WithLabelValues(field).Inc()
}

func (m *PrometheusMetrics) RecordValidationFailure(entity, field, kind string) {
	m.validationFailuresTotal.WithLabelValues(entity, field, kind).Inc()
}

// NoOpMetrics implements CatalogMetrics with no-op methods.
// Used when metrics are disabled and as the default in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) SetAuthors(int)                                 {}
func (NoOpMetrics) SetMagazines(int)                               {}
func (NoOpMetrics) SetArticles(int)                                {}
func (NoOpMetrics) RecordReassignment(string)                      {}
func (NoOpMetrics) RecordValidationFailure(string, string, string) {}
