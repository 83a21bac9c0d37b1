// Package catalog wires one self-contained registry of authors, magazines and
// articles: the in-memory store, the three use case services, logging and
// metrics. Catalogs share nothing, so independent scenarios never observe each
// other's entities.
package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"masthead/internal/config"
	"masthead/internal/infra/adapter/persistence/memory"
	"masthead/internal/observability/logging"
	"masthead/internal/observability/metrics"
	"masthead/internal/usecase/article"
	"masthead/internal/usecase/author"
	"masthead/internal/usecase/magazine"
)

// Catalog is the top-level context holding one registry.
type Catalog struct {
	Authors   *author.Service
	Magazines *magazine.Service
	Articles  *article.Service

	store    *memory.Store
	registry *prometheus.Registry
	logger   *slog.Logger
}

// Stats summarizes the size of a catalog.
type Stats struct {
	Authors   int
	Magazines int
	Articles  int
}

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
}

// Option customizes New.
type Option func(*options)

// WithLogger makes the catalog log through logger instead of building one from config.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRegisterer registers the catalog metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// New builds an empty catalog. A nil cfg means DefaultConfig().
func New(cfg *Config, opts ...Option) (*Catalog, error) {
	if cfg == nil {
		cfg = config.DefaultCatalogConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{store: memory.NewStore(), logger: o.logger}
	if c.logger == nil {
		c.logger = logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
	}

	var m metrics.CatalogMetrics = metrics.NoOpMetrics{}
	if cfg.Metrics.Enabled {
		reg := o.registerer
		if reg == nil {
			c.registry = prometheus.NewRegistry()
			reg = c.registry
		}
		pm, err := metrics.NewPrometheusMetrics(reg, cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		m = pm
	}

	c.Articles = &article.Service{
		Repo:         c.store.Articles(),
		AuthorRepo:   c.store.Authors(),
		MagazineRepo: c.store.Magazines(),
		Metrics:      m,
		Logger:       c.logger.With(slog.String("component", "article")),
	}
	c.Authors = &author.Service{
		Repo:         c.store.Authors(),
		MagazineRepo: c.store.Magazines(),
		ArticleRepo:  c.store.Articles(),
		Creator:      c.Articles,
		Metrics:      m,
		Logger:       c.logger.With(slog.String("component", "author")),
	}
	c.Magazines = &magazine.Service{
		Repo:        c.store.Magazines(),
		AuthorRepo:  c.store.Authors(),
		ArticleRepo: c.store.Articles(),
		Metrics:     m,
		Logger:      c.logger.With(slog.String("component", "magazine")),
	}

	c.logger.Debug("catalog initialized",
		slog.Bool("metrics_enabled", cfg.Metrics.Enabled),
		slog.String("metrics_namespace", cfg.Metrics.Namespace))
	return c, nil
}

// NewFromEnv loads configuration from the environment and builds a catalog.
func NewFromEnv(opts ...Option) (*Catalog, error) {
	cfg, err := config.LoadCatalogConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return New(cfg, opts...)
}

// Registry returns the private Prometheus registry, or nil when metrics are
// disabled or registered on a caller-supplied registerer.
func (c *Catalog) Registry() *prometheus.Registry {
	return c.registry
}

// Stats returns the current number of authors, magazines and articles.
func (c *Catalog) Stats() (Stats, error) {
	authors, err := c.store.Authors().Count()
	if err != nil {
		return Stats{}, fmt.Errorf("count authors: %w", err)
	}
	magazines, err := c.store.Magazines().Count()
	if err != nil {
		return Stats{}, fmt.Errorf("count magazines: %w", err)
	}
	articles, err := c.store.Articles().Count()
	if err != nil {
		return Stats{}, fmt.Errorf("count articles: %w", err)
	}
	return Stats{Authors: authors, Magazines: magazines, Articles: articles}, nil
}
