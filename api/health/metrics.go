package health

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "api",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "api",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	CatalogFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "api",
			Subsystem: "catalog",
			Name:      "fetches_total",
			Help:      "Catalog fetch attempts by outcome",
		},
		[]string{"outcome"},
	)

	CatalogProducts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "api",
			Subsystem: "catalog",
			Name:      "products_per_fetch",
			Help:      "Products returned per successful catalog fetch",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	ExportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "api",
			Subsystem: "export",
			Name:      "generated_total",
			Help:      "Exports generated by format",
		},
		[]string{"format"},
	)
)
