// SPDX-License-Identifier: MIT

package metrics

import (
	"time"

	"github.com/katalvlaran/meshroute/builder"
	"github.com/katalvlaran/meshroute/dijkstra"
)

// RecordBuild records one graph build. Node and edge gauges only move on
// successful builds.
func (r *Registry) RecordBuild(status string, elapsed time.Duration, nodes, edges int) {
	r.GraphBuildsTotal.WithLabelValues(status).Inc()
	r.GraphBuildDuration.Observe(elapsed.Seconds())

	if status == builder.StatusOK {
		r.GraphNodes.Set(float64(nodes))
		r.GraphEdges.Set(float64(edges))
	}
}

// RecordQuery records one shortest-path query. Route length is only
// observed for found routes.
func (r *Registry) RecordQuery(result string, elapsed time.Duration, expanded, length int) {
	r.PathQueriesTotal.WithLabelValues(result).Inc()
	r.PathQueryDuration.WithLabelValues(result).Observe(elapsed.Seconds())
	r.PathNodesExpanded.Observe(float64(expanded))

	if result == dijkstra.ResultFound {
		r.PathLengthNodes.Observe(float64(length))
	}
}
