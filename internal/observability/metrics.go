// Package observability holds the service-wide Prometheus instruments.
package observability

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"method", "route", "status"},
	)

	coverDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_duration_seconds",
			Help:    "Duration of geometry covering computations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"kind", "resolution"},
	)

	coverCells = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cover_cells",
			Help:    "Number of cells produced per covering computation.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"kind", "resolution"},
	)

	cacheOpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Duration of cache operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op", "status"},
	)

	cacheResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_results_total",
			Help: "Cache lookups by outcome.",
		},
		[]string{"tier", "outcome"},
	)
)

var registerOnce sync.Once

// Init registers the instruments. Safe to call more than once; only the
// first registration wins.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		reg.MustRegister(
			httpRequestsTotal,
			httpRequestDurationSeconds,
			coverDurationSeconds,
			coverCells,
			cacheOpDurationSeconds,
			cacheResults,
		)
	})
}

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func ObserveCover(kind string, res int, cells int, durationSeconds float64) {
	r := strconv.Itoa(res)
	coverDurationSeconds.WithLabelValues(kind, r).Observe(durationSeconds)
	coverCells.WithLabelValues(kind, r).Observe(float64(cells))
}

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	cacheOpDurationSeconds.WithLabelValues(op, status).Observe(durationSeconds)
}

func IncCacheHit(tier string)  { cacheResults.WithLabelValues(tier, "hit").Inc() }
func IncCacheMiss(tier string) { cacheResults.WithLabelValues(tier, "miss").Inc() }
