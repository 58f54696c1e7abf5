// SPDX-License-Identifier: MIT

// File: api.go
// Role: Read-only summary (Stats) on top of the core types.

package core

import "math"

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount     int     // present nodes
	EdgeCount     int     // edges in the arena
	IsolatedCount int     // present nodes with no incident edge
	TotalWeight   float64 // sum of edge weights
	MinWeight     float64 // 0 when EdgeCount == 0
	MaxWeight     float64 // 0 when EdgeCount == 0
	MaxDegree     int     // largest incident-edge count
}

// Stats produces a deterministic snapshot of counts and weight bounds.
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		NodeCount: g.nodeCount,
		EdgeCount: len(g.edges),
	}
	for i := range g.nodes {
		if !g.present[i] {
			continue
		}
		d := len(g.nodes[i].Edges)
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	if len(g.edges) == 0 {
		return &s
	}
	s.MinWeight = math.Inf(1)
	for _, e := range g.edges {
		s.TotalWeight += e.Weight
		s.MinWeight = math.Min(s.MinWeight, e.Weight)
		s.MaxWeight = math.Max(s.MaxWeight, e.Weight)
	}

	return &s
}
