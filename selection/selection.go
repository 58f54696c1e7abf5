// Package selection models the two-pick route selection a viewer performs:
// the first pick marks the start, the second marks the end and triggers a
// shortest-path query, and a third pick discards both markers and the route
// and becomes the new start.
//
// A Session is safe for concurrent use.
package selection

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/core"
	"github.com/katalvlaran/meshroute/dijkstra"
	"github.com/katalvlaran/meshroute/spatial"
)

// ErrNilGraph indicates NewSession received a nil graph.
var ErrNilGraph = errors.New("selection: graph is nil")

// ErrNilIndex indicates PickNear received a nil spatial index.
var ErrNilIndex = errors.New("selection: index is nil")

// Result is the session state after a pick.
type Result struct {
	// Points holds the current markers: zero, one or two nodes.
	Points []core.Node

	// Path is the route between the two markers. It is empty unless Routed.
	Path dijkstra.Path

	// Routed reports whether Path holds a successful query result.
	Routed bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("selection: WithLogger(nil)")
	}
	return func(s *Session) {
		s.logger = l
	}
}

// WithQueryOptions forwards opts to every dijkstra.ShortestPath call.
func WithQueryOptions(opts ...dijkstra.Option) Option {
	return func(s *Session) {
		s.query = append(s.query, opts...)
	}
}

// Session accumulates picks against one graph.
type Session struct {
	mu     sync.Mutex
	g      *core.Graph
	logger *slog.Logger
	query  []dijkstra.Option

	points []core.Node
	path   dijkstra.Path
	routed bool
}

// NewSession starts an empty selection over g.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Session{g: g, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Pick adds node index as the next marker.
//
//   - Unknown index: returns an error matching core.ErrNodeNotFound and
//     leaves the session untouched.
//   - First marker: recorded, no query.
//   - Second marker: runs ShortestPath(first, second). On failure both
//     markers stay, the route stays empty and the query error is returned
//     alongside the Result.
//   - Third marker: clears both markers and the route, then records the
//     new pick as the first marker.
func (s *Session) Pick(index int) (Result, error) {
	n, err := s.g.Node(index)
	if err != nil {
		return s.Snapshot(), fmt.Errorf("selection: pick %d: %w", index, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.points) >= 2 {
		s.clearLocked()
	}
	s.points = append(s.points, n)
	if len(s.points) < 2 {
		return s.resultLocked(), nil
	}

	start, end := s.points[0].Index, s.points[1].Index
	p, err := dijkstra.ShortestPath(s.g, start, end, s.query...)
	if err != nil {
		s.logger.Debug("selection: route failed", "start", start, "end", end, "error", err)
		return s.resultLocked(), err
	}
	s.path, s.routed = p, true
	s.logger.Debug("selection: routed", "start", start, "end", end, "nodes", p.Len(), "cost", p.Cost)

	return s.resultLocked(), nil
}

// PickNear snaps p to its nearest indexed node and picks it.
func (s *Session) PickNear(ix *spatial.Index, p vec3.T) (Result, error) {
	if ix == nil {
		return s.Snapshot(), ErrNilIndex
	}
	index, err := ix.Nearest(p)
	if err != nil {
		return s.Snapshot(), err
	}

	return s.Pick(index)
}

// Reset clears markers and route.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// Points returns copies of the current markers.
func (s *Session) Points() []core.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneNodes(s.points)
}

// Path returns a copy of the current route and whether one exists.
func (s *Session) Path() (dijkstra.Path, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clonePath(s.path), s.routed
}

// Snapshot returns the full session state.
func (s *Session) Snapshot() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resultLocked()
}

func (s *Session) clearLocked() {
	s.points = s.points[:0]
	s.path = dijkstra.Path{}
	s.routed = false
}

func (s *Session) resultLocked() Result {
	return Result{
		Points: cloneNodes(s.points),
		Path:   clonePath(s.path),
		Routed: s.routed,
	}
}

// cloneNodes copies nodes and their edge lists so callers never share
// storage with the session.
func cloneNodes(nodes []core.Node) []core.Node {
	out := make([]core.Node, len(nodes))
	for i, n := range nodes {
		n.Edges = slices.Clone(n.Edges)
		out[i] = n
	}

	return out
}

func clonePath(p dijkstra.Path) dijkstra.Path {
	if p.Nodes != nil {
		p.Nodes = cloneNodes(p.Nodes)
	}

	return p
}
