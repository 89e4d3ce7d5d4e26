package metrics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// API metrics
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vlures_api_request_duration_seconds",
			Help:    "API request duration in seconds by endpoint",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 0.1s to ~100s
		},
		[]string{"endpoint", "status"}, // endpoint: "vlm"/"judge"
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vlures_retries_total",
			Help: "Total retry attempts by pipeline",
		},
		[]string{"pipeline"},
	)

	// Pipeline metrics
	itemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vlures_items_total",
			Help: "Total items processed by pipeline and outcome",
		},
		[]string{"pipeline", "status"}, // status: "success"/"error"/"skipped"/"defaulted"
	)

	checkpointFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vlures_checkpoint_flushes_total",
			Help: "Total checkpoint flushes by pipeline",
		},
		[]string{"pipeline"},
	)

	downloadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vlures_download_bytes_total",
			Help: "Total bytes downloaded",
		},
	)

	activeWorkers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "vlures_active_workers",
			Help: "Number of active workers by pipeline",
		},
		[]string{"pipeline"},
	)
)

// Collector provides convenience methods for recording metrics
type Collector struct {
	logger *slog.Logger
}

// NewCollector creates a new metrics collector
func NewCollector(logger *slog.Logger) *Collector {
	return &Collector{logger: logger}
}

// RecordAPIRequest records an API request duration
func (c *Collector) RecordAPIRequest(endpoint string, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	apiRequestDuration.WithLabelValues(endpoint, status).Observe(duration.Seconds())
}

// IncrementRetry counts one retry attempt
func (c *Collector) IncrementRetry(pipeline string) {
	retriesTotal.WithLabelValues(pipeline).Inc()
}

// IncrementItem counts one processed item
func (c *Collector) IncrementItem(pipeline, status string) {
	itemsTotal.WithLabelValues(pipeline, status).Inc()
}

// IncrementCheckpointFlush counts one checkpoint flush
func (c *Collector) IncrementCheckpointFlush(pipeline string) {
	checkpointFlushes.WithLabelValues(pipeline).Inc()
}

// AddDownloadBytes counts downloaded payload bytes
func (c *Collector) AddDownloadBytes(n int64) {
	downloadBytes.Add(float64(n))
}

// SetActiveWorkers sets the number of active workers
func (c *Collector) SetActiveWorkers(pipeline string, count int) {
	activeWorkers.WithLabelValues(pipeline).Set(float64(count))
}

// Serve exposes the metrics endpoint on addr in a background goroutine.
// Failures are logged, never fatal; a benchmark run works fine without its
// metrics endpoint.
func (c *Collector) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			c.logger.Warn("Metrics endpoint stopped", "addr", addr, "error", err)
		}
	}()
}
