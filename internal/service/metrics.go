package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "lifecycle",
		Name:      "transitions_total",
		Help:      "Total number of committed order transitions by audit action.",
	}, []string{"action"})

	codeRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "lifecycle",
		Name:      "code_allocation_retries_total",
		Help:      "Total number of order code allocations retried after a duplicate code.",
	})

	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total number of order events published.",
	})

	eventsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "events",
		Name:      "failed_total",
		Help:      "Total number of order events that could not be published.",
	})

	catalogCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "catalog_cache",
		Name:      "hits_total",
		Help:      "Total number of menu item lookups served from cache.",
	})

	catalogCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "catalog_cache",
		Name:      "misses_total",
		Help:      "Total number of menu item lookups that went to the store.",
	})

	catalogCacheInvalidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "order_service",
		Subsystem: "catalog_cache",
		Name:      "invalidations_total",
		Help:      "Total number of catalog cache invalidations by scope.",
	}, []string{"scope"})
)
