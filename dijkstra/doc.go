// Package dijkstra implements the shortest-path engine over a core.Graph.
//
// ShortestPath answers point-to-point queries: given two node indices it
// returns the minimum-cost Path (node sequence, cost, and the number of
// queue dequeues performed) or one of two distinguishable failures:
//
//   - ErrNodeNotFound: an endpoint is not a node of the graph
//     (errors.Is also matches core.ErrNodeNotFound).
//   - ErrPathNotFound: both endpoints exist but lie on different islands.
//
// Dijkstra answers single-source queries, returning distance and predecessor
// maps for every node; PathTo turns the predecessor map into a route.
//
// Implementation choices:
//
//   - Lazy decrease-key: an improved distance enqueues a fresh entry and the
//     outdated one stays in the queue. Relaxation compares against the
//     separately tracked distance, so stale entries cannot corrupt results.
//   - ShortestPath keeps no settled set by default and stops as soon as the
//     target is dequeued. WithSettledSet skips re-expansion of stale entries.
//   - Weights are non-negative by construction (core.Graph rejects others).
//   - WithInfEdgeThreshold treats heavy edges as walls; WithMaxDistance
//     bounds the explored cost.
//
// All search state is local to a call; concurrent queries on one graph are
// safe while nobody mutates it.
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Example:
//
//	g, _ := builder.FromMesh(m)
//	path, err := dijkstra.ShortestPath(g, 0, 42)
//	switch {
//	case errors.Is(err, dijkstra.ErrPathNotFound):
//	    // endpoints on different islands
//	case err != nil:
//	    // bad indices
//	default:
//	    draw(path.Positions())
//	}
package dijkstra
