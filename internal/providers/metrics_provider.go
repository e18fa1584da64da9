package providers

import (
	"fauna/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	IncStoreFailures(op string)
	IncViewsTracked()
	IncQuizzesCompleted()
	IncSessionsGenerated(mode string)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	storeFailures       *prometheus.CounterVec
	viewsTracked        prometheus.Counter
	quizzesCompleted    prometheus.Counter
	sessionsGenerated   *prometheus.CounterVec
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncStoreFailures(op string) {
	m.storeFailures.WithLabelValues(op).Inc()
}

func (m *MetricsProvider) IncViewsTracked() {
	m.viewsTracked.Inc()
}

func (m *MetricsProvider) IncQuizzesCompleted() {
	m.quizzesCompleted.Inc()
}

func (m *MetricsProvider) IncSessionsGenerated(mode string) {
	m.sessionsGenerated.WithLabelValues(mode).Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fauna_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fauna_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fauna_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fauna_cache_misses_total",
			Help: "Total number of cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fauna_persistence_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		storeFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fauna_store_failures_total",
			Help: "Total number of failed store operations",
		}, []string{"op"}),

		viewsTracked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fauna_views_tracked_total",
			Help: "Total number of tracked animal views",
		}),

		quizzesCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fauna_quizzes_completed_total",
			Help: "Total number of completed quiz sessions",
		}),

		sessionsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fauna_quiz_sessions_generated_total",
			Help: "Total number of generated quiz sessions",
		}, []string{"mode"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) IncStoreFailures(_ string)                        {}
func (n *noopMetrics) IncViewsTracked()                                 {}
func (n *noopMetrics) IncQuizzesCompleted()                             {}
func (n *noopMetrics) IncSessionsGenerated(_ string)                    {}
