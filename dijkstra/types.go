// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for the shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/core"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates the start or end index is not a node of the
	// graph. errors.Is also matches core.ErrNodeNotFound.
	ErrNodeNotFound = fmt.Errorf("dijkstra: %w", core.ErrNodeNotFound)

	// ErrPathNotFound indicates both endpoints exist but no sequence of edges
	// connects them. This is an ordinary outcome, not a fault.
	ErrPathNotFound = errors.New("dijkstra: no path between nodes")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Query outcome labels passed to Recorder.RecordQuery.
const (
	ResultFound    = "found"
	ResultNoPath   = "no_path"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// Recorder receives one observation per ShortestPath call.
// metrics.Registry implements it.
type Recorder interface {
	RecordQuery(result string, elapsed time.Duration, expanded, length int)
}

type nopRecorder struct{}

func (nopRecorder) RecordQuery(string, time.Duration, int, int) {}

// Options configures the behavior of ShortestPath and Dijkstra.
//
//   - SettledSet: skip nodes already expanded. Off by default; stale queue
//     entries are otherwise re-relaxed harmlessly.
//   - MaxDistance: do not relax beyond this cost. Default +Inf.
//   - InfEdgeThreshold: edges with weight ≥ this value are impassable.
//     Default +Inf.
//   - Logger, Recorder: diagnostics sinks.
type Options struct {
	SettledSet       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Logger           *slog.Logger
	Recorder         Recorder
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithSettledSet enables the settled-set optimisation: a node is expanded at
// most once. Costs are unchanged; Path.Expanded usually drops.
func WithSettledSet() Option {
	return func(o *Options) {
		o.SettledSet = true
	}
}

// WithMaxDistance caps the explored cost. Nodes farther than max are never
// reached. Panics on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable.
// Panics on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes query diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithRecorder reports query outcomes to r. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("dijkstra: WithRecorder(nil)")
	}
	return func(o *Options) {
		o.Recorder = r
	}
}

// DefaultOptions returns Options initialized with defaults:
//   - SettledSet:       false
//   - MaxDistance:      +Inf (no limit)
//   - InfEdgeThreshold: +Inf (every edge passable)
//   - Logger:           slog.Default()
//   - Recorder:         no-op
func DefaultOptions() Options {
	return Options{
		SettledSet:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           slog.Default(),
		Recorder:         nopRecorder{},
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Path is the result of a successful ShortestPath query.
type Path struct {
	// Nodes runs from start to end inclusive. A query with start == end
	// yields exactly one node.
	Nodes []core.Node

	// Cost is the sum of edge weights along Nodes.
	Cost float64

	// Expanded counts queue dequeues performed by the search.
	Expanded int
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Indices returns the node indices along the path.
func (p Path) Indices() []int {
	out := make([]int, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n.Index
	}

	return out
}

// Positions returns the world-space positions along the path, ready to be
// drawn as a polyline.
func (p Path) Positions() []vec3.T {
	out := make([]vec3.T, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n.Position
	}

	return out
}

// Reversed returns the same route from end to start. The receiver is left
// untouched.
func (p Path) Reversed() Path {
	nodes := make([]core.Node, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[len(p.Nodes)-1-i] = n
	}

	return Path{Nodes: nodes, Cost: p.Cost, Expanded: p.Expanded}
}
