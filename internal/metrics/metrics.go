// Package metrics defines Prometheus metrics for the retrieval engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ExplorationsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "memoria_explorations_started_total",
			Help: "Total per-seed explorations started",
		},
	)

	ExplorationsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memoria_explorations_completed_total",
			Help: "Total per-seed explorations completed, by termination reason",
		},
		[]string{"reason"},
	)

	ExplorationsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "memoria_explorations_failed_total",
			Help: "Total per-seed explorations that exhausted retries and failed",
		},
	)

	ExplorationRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "memoria_exploration_retries_total",
			Help: "Total retry attempts across all explorations",
		},
	)

	ExplorationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "memoria_exploration_duration_seconds",
			Help:    "Wall-clock duration of a single seed's BFS exploration",
			Buckets: prometheus.DefBuckets,
		},
	)

	FrontierCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "memoria_frontier_candidates",
			Help:    "Number of candidate neighbors returned per frontier expansion, before branch capping",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		},
	)

	SeedRetrievalDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "memoria_seed_retrieval_duration_seconds",
			Help:    "Duration of the hybrid seed retrieval step, from query to scored seed list",
			Buckets: prometheus.DefBuckets,
		},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memoria_graph_query_duration_seconds",
			Help:    "Neo4j query duration by operation name",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	ActiveExplorations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "memoria_active_explorations",
			Help: "Currently running per-seed explorations",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ExplorationsStarted, ExplorationsCompleted, ExplorationsFailed,
		ExplorationRetries, ExplorationDuration, FrontierCandidates,
		SeedRetrievalDuration, QueryDuration, ActiveExplorations,
	)
}
