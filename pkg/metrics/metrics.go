// Package metrics defines the prometheus collectors for the database layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Connection pool metrics, labelled by logical database and pool role.
var (
	DBPoolTotalConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "paycore_db_pool_total_conns",
			Help: "Total number of connections in the pool",
		},
		[]string{"database", "role"},
	)

	DBPoolIdleConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "paycore_db_pool_idle_conns",
			Help: "Number of idle connections in the pool",
		},
		[]string{"database", "role"},
	)

	DBPoolInUseConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "paycore_db_pool_in_use_conns",
			Help: "Number of connections currently acquired from the pool",
		},
		[]string{"database", "role"},
	)
)

// Query metrics.
var (
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paycore_db_queries_total",
			Help: "Total number of database queries executed",
		},
		[]string{"operation", "role", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paycore_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "role"},
	)
)
