package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	kitchenProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kitchen_consumer",
		Name:      "events_processed_total",
		Help:      "Total number of successfully applied kitchen events",
	})

	kitchenFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kitchen_consumer",
		Name:      "events_failed_total",
		Help:      "Total number of kitchen events that could not be applied",
	})

	kitchenDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kitchen_consumer",
		Name:      "events_dlq_total",
		Help:      "Total number of kitchen events written to DLQ",
	})

	commitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "kitchen_consumer",
		Name:      "commit_errors_total",
		Help:      "Total number of Kafka commit errors",
	})

	kitchenProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "order_service",
		Subsystem: "kitchen_consumer",
		Name:      "event_processing_duration_seconds",
		Help:      "Histogram of kitchen event processing durations in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	kitchenInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "order_service",
		Subsystem: "kitchen_consumer",
		Name:      "events_in_progress",
		Help:      "Number of kitchen events currently being processed",
	})
)
