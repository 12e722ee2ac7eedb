package monitoring

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	contentQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_queries_total",
			Help: "Content source queries by named query and outcome",
		},
		[]string{"query", "status"},
	)

	contentQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "content_query_duration_seconds",
			Help:    "Duration of content source queries",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"query"},
	)

	cacheOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_ops_total",
			Help: "Content cache lookups by result",
		},
		[]string{"result"},
	)

	skippedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "normalizer_skipped_records_total",
			Help: "Event records dropped during normalization",
		},
		[]string{"reason"},
	)

	formSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Form submissions by form and outcome",
		},
		[]string{"form", "status"},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_goroutines_total",
			Help: "Current number of active goroutines",
		},
	)
)

func RecordContentQuery(query, status string, duration time.Duration) {
	contentQueries.WithLabelValues(query, status).Inc()
	contentQueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

func RecordCacheHit() {
	cacheOps.WithLabelValues("hit").Inc()
}

func RecordCacheMiss() {
	cacheOps.WithLabelValues("miss").Inc()
}

func RecordSkippedRecord(reason string) {
	skippedRecords.WithLabelValues(reason).Inc()
}

func RecordFormSubmission(form, status string) {
	formSubmissions.WithLabelValues(form, status).Inc()
}

type Monitor struct {
	interval time.Duration
}

func NewMonitor() *Monitor {
	monitor := &Monitor{interval: 30 * time.Second}

	// Start metrics collection
	go monitor.collectMetrics()

	return monitor
}

func (m *Monitor) collectMetrics() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for range ticker.C {
		goroutineCount.Set(float64(runtime.NumGoroutine()))
	}
}
