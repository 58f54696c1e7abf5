// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (ForEachIncident, IncidentEdges, Neighbors, Adjacency).
// Determinism:
//   - IncidentEdges() keeps insertion order.
//   - Neighbors() and Adjacency() return indices sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// ForEachIncident calls fn for every edge incident to node index, in
// insertion order, while holding the read lock. fn must not call mutating
// methods on g. Iteration stops early if fn returns false.
//
// This is the allocation-free path used by shortest-path search.
// Returns ErrNodeNotFound if index is absent.
func (g *Graph) ForEachIncident(index int, fn func(e Edge) bool) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(index) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}
	for _, id := range g.nodes[index].Edges {
		if !fn(g.edges[id]) {
			return nil
		}
	}

	return nil
}

// IncidentEdges returns copies of the edges incident to node index.
// Complexity: O(d).
func (g *Graph) IncidentEdges(index int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(index) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}
	ids := g.nodes[index].Edges
	out := make([]Edge, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id])
	}

	return out, nil
}

// Neighbors returns the unique neighbor indices of node index, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) Neighbors(index int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(index) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}

	return sortedKeys(g.adjacency[index]), nil
}

// Adjacency returns a snapshot of the adjacency mapping: node index → sorted
// neighbor indices. Every present node has an entry, possibly empty.
// Complexity: O(V + E log d).
func (g *Graph) Adjacency() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for idx, set := range g.adjacency {
		out[idx] = sortedKeys(set)
	}

	return out
}

// AdjacencyCount returns the number of entries in the adjacency mapping.
// It always equals NodeCount().
func (g *Graph) AdjacencyCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// HasEdgeBetween reports whether some edge connects i and j.
// Complexity: O(1).
func (g *Graph) HasEdgeBetween(i, j int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[i][j]

	return ok
}

// Degree returns the number of edges incident to node index
// (a self-loop counts once).
func (g *Graph) Degree(index int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(index) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}

	return len(g.nodes[index].Edges), nil
}

// sortedKeys returns the keys of set in ascending order (never nil).
func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
