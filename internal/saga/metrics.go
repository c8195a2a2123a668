package saga

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "saga",
			Name:      "orders_submitted_total",
			Help:      "Total number of submitted orders",
		},
	)

	stagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "saga",
			Name:      "stages_total",
			Help:      "Total number of saga stages by outcome",
		},
		[]string{"stage", "outcome"},
	)

	stageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orders",
			Subsystem: "saga",
			Name:      "stage_duration_seconds",
			Help:      "Histogram of saga stage durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	duplicatesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "saga",
			Name:      "duplicates_skipped_total",
			Help:      "Total number of redelivered changes whose stage was already claimed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersSubmitted,
		stagesTotal,
		stageDuration,
		duplicatesSkipped,
	)
}
