// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUnitEdge/Edge/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edge IDs are dense and assigned in insertion order (0, 1, 2, ...).
//   - Edges() returns edges sorted by ID.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge creates one undirected edge between existing nodes i and j.
//
// Steps:
//  1. Validate weight (ErrBadWeight for negative or NaN).
//  2. Lock; both endpoints must be present (ErrNodeNotFound, no mutation).
//  3. Append the Edge to the arena; its ID is the arena slot.
//  4. Append the ID to both endpoints' edge lists (once for a self-loop).
//  5. Add i↔j to the adjacency sets.
//
// AddEdge does not deduplicate: a second call with the same pair creates a
// second edge. The builder calls it at most once per undirected pair.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(i, j int, weight float64) (int, error) {
	if weight < 0 || math.IsNaN(weight) {
		return -1, fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNode(i) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, i)
	}
	if !g.hasNode(j) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, j)
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: i, To: j, Weight: weight})

	g.nodes[i].Edges = append(g.nodes[i].Edges, id)
	if i != j {
		g.nodes[j].Edges = append(g.nodes[j].Edges, id)
	}

	g.adjacency[i][j] = struct{}{}
	g.adjacency[j][i] = struct{}{}

	return id, nil
}

// AddUnitEdge is AddEdge with DefaultEdgeWeight.
func (g *Graph) AddUnitEdge(i, j int) (int, error) {
	return g.AddEdge(i, j, DefaultEdgeWeight)
}

// Edge returns the edge with the given ID.
// Returns ErrEdgeNotFound (wrapped with the ID) if id is outside the arena.
func (g *Graph) Edge(id int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns a copy of the edge arena, sorted by ID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of all edge weights.
// Summation runs in ID order, so equal graphs give bit-identical totals.
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum float64
	for _, e := range g.edges {
		sum += e.Weight
	}

	return sum
}
