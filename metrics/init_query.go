package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.PathQueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "meshroute_path_queries_total",
			Help: "Total number of shortest-path queries",
		},
		[]string{"result"},
	)

	r.PathQueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meshroute_path_query_duration_seconds",
			Help:    "Shortest-path query duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"result"},
	)

	r.PathNodesExpanded = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshroute_path_nodes_expanded",
			Help:    "Queue dequeues performed per query",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
	)

	r.PathLengthNodes = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "meshroute_path_length_nodes",
			Help:    "Node count of successful routes",
			Buckets: []float64{2, 5, 10, 25, 50, 100, 250, 1000},
		},
	)
}
