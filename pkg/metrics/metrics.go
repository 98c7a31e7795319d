package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lobbynetz_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lobbynetz_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	DatasetNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lobbynetz_dataset_nodes",
		Help: "Number of nodes in the loaded dataset",
	})

	DatasetLinks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lobbynetz_dataset_links",
		Help: "Number of links in the loaded dataset",
	})

	// PathSearches counts shortest path queries by outcome: found or none.
	PathSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lobbynetz_path_searches_total",
			Help: "Shortest path queries by outcome",
		},
		[]string{"outcome"},
	)
)
