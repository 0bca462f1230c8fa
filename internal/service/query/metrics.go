package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Total number of cache hits per resource key",
		},
		[]string{"key"},
	)

	MissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Total number of cache misses per resource key",
		},
		[]string{"key"},
	)

	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_retries_total",
			Help: "Total number of fetch retry attempts per resource key",
		},
		[]string{"key"},
	)
)
