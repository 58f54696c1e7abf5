// SPDX-License-Identifier: MIT

// File: methods_nodes.go
// Role: Node lifecycle & queries, plus Clear.
// Determinism:
//   - Nodes() returns nodes in index order (= mesh vertex order).
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import (
	"fmt"
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// AddNode inserts a node if index is not already present (idempotent).
//
// Steps:
//  1. Reject negative index (ErrNegativeIndex).
//  2. Reject index ≥ max(len, cap) + MaxIndexGap (ErrIndexTooLarge).
//  3. Grow the arena once so slot index exists; gaps stay marked absent.
//  4. If the slot is already present ⇒ no-op (the first position wins).
//  5. Store the node and ensure an empty adjacency entry.
//
// Complexity: O(1) amortized; O(index-len) when growing over a gap.
func (g *Graph) AddNode(index int, pos vec3.T) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndex, index)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if limit := max(len(g.nodes), cap(g.nodes)) + MaxIndexGap; index >= limit {
		return fmt.Errorf("%w: %d (limit %d)", ErrIndexTooLarge, index, limit)
	}
	if n := len(g.nodes); index >= n {
		g.nodes = slices.Grow(g.nodes, index+1-n)
		g.present = slices.Grow(g.present, index+1-n)
		for i := n; i <= index; i++ {
			g.nodes = append(g.nodes, Node{Index: i})
			g.present = append(g.present, false)
		}
	}
	if g.present[index] {
		return nil
	}

	g.nodes[index] = Node{Index: index, Position: pos}
	g.present[index] = true
	g.nodeCount++
	if _, ok := g.adjacency[index]; !ok {
		g.adjacency[index] = make(map[int]struct{})
	}

	return nil
}

// HasNode reports whether a node with the given index exists.
// Complexity: O(1).
func (g *Graph) HasNode(index int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNode(index)
}

// hasNode is HasNode without locking; callers hold g.mu.
func (g *Graph) hasNode(index int) bool {
	return index >= 0 && index < len(g.present) && g.present[index]
}

// Node returns a copy of the node at index.
// The returned Edges slice is independent of the graph's storage.
// Returns ErrNodeNotFound (wrapped with the index) if absent.
func (g *Graph) Node(index int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(index) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}

	return cloneNode(g.nodes[index]), nil
}

// Position returns the world-space position of node index.
func (g *Graph) Position(index int) (vec3.T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNode(index) {
		return vec3.T{}, fmt.Errorf("%w: %d", ErrNodeNotFound, index)
	}

	return g.nodes[index].Position, nil
}

// Nodes returns copies of all present nodes in index order.
// Complexity: O(V + E).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, g.nodeCount)
	for i := range g.nodes {
		if g.present[i] {
			out = append(out, cloneNode(g.nodes[i]))
		}
	}

	return out
}

// NodeCount returns the number of present nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeCount
}

// Clear removes every node, edge and adjacency entry.
// Post-condition: NodeCount() == EdgeCount() == AdjacencyCount() == 0.
// Complexity: O(1) (old storage is released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = nil
	g.present = nil
	g.nodeCount = 0
	g.edges = nil
	g.adjacency = make(map[int]map[int]struct{})
}

// cloneNode copies n so the caller cannot alias the arena's edge list.
func cloneNode(n Node) Node {
	if n.Edges != nil {
		ids := make([]int, len(n.Edges))
		copy(ids, n.Edges)
		n.Edges = ids
	}

	return n
}
