// SPDX-License-Identifier: MIT

// Package meshroute turns triangle meshes into weighted graphs and finds
// shortest paths across them.
//
// 🚀 What is meshroute?
//
//	A small, thread-safe toolkit for walking over 3D surfaces:
//		• Mesh model: positions, world transform and triangle indices
//		• Builder: one node per vertex, one edge per unique triangle side
//		• Shortest paths: Dijkstra with lazy deletion and path assembly
//		• Spatial lookup: snap arbitrary world points to the nearest vertex
//		• Selection: a two-click session that routes between picked vertices
//		• Metrics: Prometheus counters and histograms for builds and queries
//
// Packages:
//
//	mesh/      - Mesh type, validation and world-space transforms
//	core/      - dense Graph, Node and Edge types guarded by an RWMutex
//	pqueue/    - min-priority queue keyed by float64 priority
//	builder/   - FromMesh and Rebuild, pluggable WeightFn
//	bfs/       - connected components (islands)
//	dijkstra/  - ShortestPath between two vertices, single-source Dijkstra
//	spatial/   - R-tree index over node positions
//	selection/ - pick/route session state
//	metrics/   - Prometheus registry implementing the build and query recorders
//
// Quick start:
//
//	g, err := builder.FromMesh(m)
//	if err != nil {
//		return err
//	}
//	path, err := dijkstra.ShortestPath(g, 0, 42)
//	if errors.Is(err, dijkstra.ErrPathNotFound) {
//		// vertices lie on different islands
//	}
//
// Installation:
//
//	go get github.com/katalvlaran/meshroute
package meshroute
