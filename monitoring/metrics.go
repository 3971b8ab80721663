package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for page serving.
type Metrics struct {
	PageRenders    *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	TokensRejected prometheus.Counter
	RateLimited    prometheus.Counter
	registry       *prometheus.Registry
}

// NewMetrics creates the collectors and registers them in registry.
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		PageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "testmaster_page_renders_total",
			Help: "Landing page renders by variant (anonymous or authenticated) and format",
		}, []string{"variant", "format"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "testmaster_page_render_seconds",
			Help:    "Time spent building and encoding the landing page",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "testmaster_page_cache_hits_total",
			Help: "Anonymous page renders served from cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "testmaster_page_cache_misses_total",
			Help: "Anonymous page renders that had to be built",
		}),
		TokensRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "testmaster_tokens_rejected_total",
			Help: "Requests that presented an invalid token and were served anonymously",
		}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "testmaster_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}),
		registry: registry,
	}

	for _, c := range []prometheus.Collector{
		m.PageRenders, m.RenderDuration, m.CacheHits, m.CacheMisses, m.TokensRejected, m.RateLimited,
	} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register page metrics: %w", err)
		}
	}
	return m, nil
}

// ObserveRender records one render of the given variant and format.
func (m *Metrics) ObserveRender(variant, format string, started time.Time) {
	m.PageRenders.WithLabelValues(variant, format).Inc()
	m.RenderDuration.Observe(time.Since(started).Seconds())
}

// healthGaugeMaxAge bounds how often a scrape re-runs the health checks.
const healthGaugeMaxAge = 30 * time.Second

// RegisterHealth exposes the monitor's overall status as a gauge
// (0=unhealthy, 1=degraded, 2=healthy). Scrapes reuse a result from the last
// healthGaugeMaxAge, including one produced by /health.
func (m *Metrics) RegisterHealth(hm *HealthMonitor) error {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "testmaster_health_status",
		Help:        "Overall health status (0=unhealthy, 1=degraded, 2=healthy)",
		ConstLabels: prometheus.Labels{"version": hm.version},
	}, func() float64 {
		return float64(healthStatusToInt(hm.RecentHealthStatus(healthGaugeMaxAge).Status))
	})
	if err := m.registry.Register(g); err != nil {
		return fmt.Errorf("failed to register health gauge: %w", err)
	}
	return nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return echo.WrapHandler(http.Handler(h))
}
