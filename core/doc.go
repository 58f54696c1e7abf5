// Package core defines the Graph data model built from a triangle mesh:
// Node, Edge and Graph, stored as a dense arena.
//
// Storage layout:
//
//	nodes[i]       Node with Index == i (slot may be empty until AddNode(i, ...))
//	edges[id]      Edge with ID == id; From/To are node indices, never pointers
//	node.Edges     edge IDs incident to the node (order = insertion order)
//	adjacency[i]   set of neighbor indices (derived cache, rebuilt with edges)
//
// An undirected mesh edge is stored exactly once in the edge arena and
// referenced by ID from both endpoints. Nothing holds a pointer to another
// node, so there are no reference cycles and no identity-keyed maps.
//
// Invariants:
//
//   - every edge endpoint is a present node;
//   - j ∈ adjacency[i] ⇔ some edge connects i and j (symmetric);
//   - every present node has an adjacency entry (possibly empty);
//   - Edge.Weight ≥ 0 and is never recomputed after insertion.
//
// Lifecycle:
//
// A Graph is populated once (see package builder) and then queried many
// times. Clear is the only destructive operation; there is no node or edge
// removal. All methods are safe for concurrent use: mutators take the write
// lock, queries take the read lock, so any number of shortest-path queries can
// share one built Graph.
//
// Core methods:
//
//	AddNode(index int, pos vec3.T) error                // O(1) amortized, idempotent
//	AddEdge(i, j int, weight float64) (int, error)      // O(1) amortized
//	AddUnitEdge(i, j int) (int, error)                  // weight = 1
//	Clear()                                             // O(1)
//	Node(i) / Nodes() / NodeCount() / HasNode(i)
//	Edge(id) / Edges() / EdgeCount() / TotalWeight()
//	ForEachIncident(i, fn) / IncidentEdges(i) / Neighbors(i)
//	Adjacency() / AdjacencyCount() / Stats()
//
// Errors:
//
//	ErrNegativeIndex  – node index < 0
//	ErrNodeNotFound   – an operation referenced an absent node
//	ErrEdgeNotFound   – an edge ID outside the arena
//	ErrBadWeight      – negative or NaN edge weight
package core
