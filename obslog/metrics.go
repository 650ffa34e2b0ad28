package obslog

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the compiler's small set of Prometheus instruments,
// threaded explicitly through build.Options rather than registered
// against prometheus' package-level default registry, so a process
// hosting more than one compiler instance (or a test) never double
// registers.
type Metrics struct {
	CacheHits       *prometheus.CounterVec
	CacheMisses     *prometheus.CounterVec
	BuildDuration   *prometheus.HistogramVec
	SessionsActive  prometheus.Gauge
}

// NewMetrics builds a fresh Metrics and registers every instrument
// against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trueform_cache_hits_total",
			Help: "Artifact cache hits by kind (part_build, mesh, export_step, export_stl).",
		}, []string{"kind"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trueform_cache_misses_total",
			Help: "Artifact cache misses by kind.",
		}, []string{"kind"}),
		BuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trueform_build_duration_seconds",
			Help:    "Wall-clock time spent evaluating a part, by outcome (full, partial).",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trueform_sessions_active",
			Help: "Live incremental build sessions.",
		}),
	}
	reg.MustRegister(m.CacheHits, m.CacheMisses, m.BuildDuration, m.SessionsActive)
	return m
}

// ObserveCache records a cache lookup of the given kind
// ("part_build", "mesh", "export_step", "export_stl") as a hit or miss.
// Safe to call on a nil *Metrics.
func (m *Metrics) ObserveCache(kind string, hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.WithLabelValues(kind).Inc()
	} else {
		m.CacheMisses.WithLabelValues(kind).Inc()
	}
}

// ObserveBuildDuration records seconds spent on a build of the given
// outcome ("full", "partial"). Safe to call on a nil *Metrics.
func (m *Metrics) ObserveBuildDuration(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.BuildDuration.WithLabelValues(outcome).Observe(seconds)
}

// SetSessionsActive records the current live session count. Safe to
// call on a nil *Metrics.
func (m *Metrics) SetSessionsActive(n int) {
	if m == nil {
		return
	}
	m.SessionsActive.Set(float64(n))
}
