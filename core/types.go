// SPDX-License-Identifier: MIT

// File: types.go
// Role: Node, Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - A single sync.RWMutex guards node arena, edge arena and adjacency together,
//     so readers always observe a consistent triple.

package core

import (
	"errors"
	"sync"

	"github.com/ungerik/go3d/float64/vec3"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeIndex indicates a node index below zero.
	ErrNegativeIndex = errors.New("core: node index is negative")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrIndexTooLarge indicates a node index more than MaxIndexGap slots
	// beyond the arena's current end.
	ErrIndexTooLarge = errors.New("core: node index too far beyond the arena")
)

// MaxIndexGap bounds how far past the arena's end a single AddNode may
// reach. Gap slots cost memory, so a stray huge index is rejected instead
// of allocating up to it.
const MaxIndexGap = 1 << 16

// DefaultEdgeWeight is the weight AddUnitEdge assigns.
const DefaultEdgeWeight = 1.0

// Node is a graph vertex corresponding 1:1 to a mesh vertex.
type Node struct {
	// Index equals the originating mesh vertex index.
	Index int

	// Position is the world-space position of the vertex.
	Position vec3.T

	// Edges lists the IDs of incident edges in the owning Graph's edge arena.
	Edges []int
}

// Edge is an undirected, weighted connection between two nodes.
type Edge struct {
	// ID is the edge's slot in the Graph's edge arena.
	ID int

	// From and To are the endpoint node indices (order carries no meaning).
	From, To int

	// Weight is the non-negative traversal cost, fixed at insertion.
	Weight float64
}

// Other returns the endpoint of e that is not index.
// For a self-loop both endpoints are index.
func (e Edge) Other(index int) int {
	if e.From == index {
		return e.To
	}

	return e.From
}

// Connects reports whether e joins i and j in either order.
func (e Edge) Connects(i, j int) bool {
	return (e.From == i && e.To == j) || (e.From == j && e.To == i)
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node and edge arenas.
// Useful when the vertex and triangle counts are known up front.
// Panics on negative values.
func WithCapacity(nodes, edges int) GraphOption {
	if nodes < 0 || edges < 0 {
		panic("core: WithCapacity requires non-negative sizes")
	}

	return func(g *Graph) {
		g.nodes = make([]Node, 0, nodes)
		g.present = make([]bool, 0, nodes)
		g.edges = make([]Edge, 0, edges)
		g.adjacency = make(map[int]map[int]struct{}, nodes)
	}
}

// Graph is the node/edge/adjacency structure built once per mesh.
//
// nodes and present are parallel slices indexed by node index; present[i]
// distinguishes a real node from a gap left by a sparse AddNode call.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes     []Node
	present   []bool
	nodeCount int

	edges []Edge

	// adjacency[i] = set of neighbor indices of node i.
	adjacency map[int]map[int]struct{}
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus any capacity requested via WithCapacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
