package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OUTCOME_OK                    = "ok"
	OUTCOME_START_NOT_FOUND       = "start_not_found"
	OUTCOME_DESTINATION_NOT_FOUND = "destination_not_found"
	OUTCOME_UNREACHABLE           = "unreachable"
	OUTCOME_ERROR                 = "error"
)

var (
	navigationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusnav_navigation_total",
		Help: "Total navigation queries by outcome",
	}, []string{"outcome"})

	navigationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "campusnav_navigation_duration_seconds",
		Help:    "Navigation query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	})

	settledVertices = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "campusnav_dijkstra_settled_vertices",
		Help:    "Number of vertices finalised per dijkstra run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)

func ObserveNavigation(outcome string, elapsed time.Duration) {
	navigationTotal.WithLabelValues(outcome).Inc()
	navigationDuration.Observe(elapsed.Seconds())
}

func ObserveSettledVertices(n int) {
	settledVertices.Observe(float64(n))
}
