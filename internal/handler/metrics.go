package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "http",
			Name:      "submissions_total",
			Help:      "Total number of order submissions by outcome",
		},
		[]string{"outcome"},
	)

	orderValue = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "orders",
			Subsystem: "http",
			Name:      "order_value",
			Help:      "Histogram of accepted order totals",
			Buckets:   []float64{10, 25, 50, 75, 100, 150, 250, 500},
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		submissionsTotal,
		orderValue,
	)
}
