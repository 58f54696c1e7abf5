// Package bfs splits a core.Graph into connected components ("islands")
// with a breadth-first flood from each unvisited node.
//
// A mesh made of separate parts builds into a graph with one island per
// part. The builder logs the island count after every build, and callers
// use Components to explain why a path query between two parts found no
// route.
//
// Edge weights are ignored; use package dijkstra for weighted distances.
//
// Determinism
//
//	Roots are taken in ascending index order and every component is sorted,
//	so the result is reproducible for a given graph.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V log V + E)
//   - Memory: O(V + E) for the adjacency snapshot and the visited set
package bfs
