// Package metrics exposes build and query instrumentation as Prometheus
// collectors. A *Registry satisfies both builder.Recorder and
// dijkstra.Recorder, so one instance can be passed to WithRecorder on
// either side.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/meshroute/builder"
	"github.com/katalvlaran/meshroute/dijkstra"
)

var (
	_ builder.Recorder  = (*Registry)(nil)
	_ dijkstra.Recorder = (*Registry)(nil)
)

// Registry holds all metrics for the library
type Registry struct {
	// Graph build metrics
	GraphBuildsTotal   *prometheus.CounterVec
	GraphBuildDuration prometheus.Histogram
	GraphNodes         prometheus.Gauge
	GraphEdges         prometheus.Gauge

	// Path query metrics
	PathQueriesTotal  *prometheus.CounterVec
	PathQueryDuration *prometheus.HistogramVec
	PathNodesExpanded prometheus.Histogram
	PathLengthNodes   prometheus.Histogram

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initBuildMetrics()
	r.initQueryMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
