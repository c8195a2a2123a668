package feed

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	changesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "change_feed",
			Name:      "changes_processed_total",
			Help:      "Total number of order changes delivered to every handler",
		},
	)

	changesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "change_feed",
			Name:      "changes_failed_total",
			Help:      "Total number of order changes a handler failed on",
		},
	)

	changesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "change_feed",
			Name:      "changes_dlq_total",
			Help:      "Total number of order changes written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "change_feed",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	changeProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "orders",
			Subsystem: "change_feed",
			Name:      "change_processing_duration_seconds",
			Help:      "Histogram of order change dispatch durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	changesInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "orders",
			Subsystem: "change_feed",
			Name:      "changes_in_progress",
			Help:      "Number of order changes currently being dispatched",
		},
	)
)

var (
	outboxPublished = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "outbox",
			Name:      "changes_published_total",
			Help:      "Total number of outbox rows published to Kafka",
		},
	)

	outboxErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "orders",
			Subsystem: "outbox",
			Name:      "relay_errors_total",
			Help:      "Total number of failed outbox relay batches",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		changesProcessed,
		changesFailed,
		changesDLQ,
		commitErrors,
		changeProcessingDuration,
		changesInProgress,

		outboxPublished,
		outboxErrors,
	)
}
