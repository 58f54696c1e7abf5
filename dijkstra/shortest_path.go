// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/meshroute/core"
	"github.com/katalvlaran/meshroute/pqueue"
)

// ShortestPath returns the minimum-cost route from start to end.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be nodes of g (ErrNodeNotFound).
//
// If the queue drains before end is dequeued, ErrPathNotFound is returned.
// start == end yields a one-node path of cost 0.
//
// The search state (distances, predecessors, queue) is local to the call, so
// concurrent queries on the same graph are safe.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with lazy decrease-key.
//   - Space: O(V + E).
func ShortestPath(g *core.Graph, start, end int, opts ...Option) (Path, error) {
	cfg := resolve(opts)
	began := time.Now()

	path, err := shortestPath(g, start, end, cfg)

	result := ResultFound
	switch {
	case err == nil:
	case errors.Is(err, ErrPathNotFound):
		result = ResultNoPath
		cfg.Logger.Debug("dijkstra: no path", "start", start, "end", end, "expanded", path.Expanded)
	case errors.Is(err, ErrNodeNotFound):
		result = ResultNotFound
		cfg.Logger.Debug("dijkstra: node not found", "start", start, "end", end, "error", err)
	default:
		result = ResultError
		cfg.Logger.Debug("dijkstra: query failed", "start", start, "end", end, "error", err)
	}
	cfg.Recorder.RecordQuery(result, time.Since(began), path.Expanded, path.Len())

	if err != nil {
		return Path{Expanded: path.Expanded}, err
	}

	return path, nil
}

// search is the query-local state of one ShortestPath call.
type search struct {
	g       *core.Graph
	cfg     Options
	dist    map[int]float64 // absent ⇒ +Inf
	prev    map[int]int
	settled map[int]bool // nil unless SettledSet
	pq      *pqueue.Queue[int]
}

func shortestPath(g *core.Graph, start, end int, cfg Options) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasNode(start) {
		return Path{}, fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return Path{}, fmt.Errorf("%w: end %d", ErrNodeNotFound, end)
	}

	s := &search{
		g:    g,
		cfg:  cfg,
		dist: map[int]float64{start: 0},
		prev: make(map[int]int),
		pq:   pqueue.New[int](64),
	}
	if cfg.SettledSet {
		s.settled = make(map[int]bool)
	}
	s.pq.Enqueue(start, 0)

	expanded := 0
	for {
		u, _, ok := s.pq.Dequeue()
		if !ok {
			return Path{Expanded: expanded}, fmt.Errorf("%w: %d → %d", ErrPathNotFound, start, end)
		}
		expanded++

		if s.settled != nil {
			if s.settled[u] {
				continue
			}
			s.settled[u] = true
		}

		if u == end {
			path, err := s.assemble(start, end)
			path.Expanded = expanded

			return path, err
		}

		if err := s.relax(u); err != nil {
			return Path{Expanded: expanded}, err
		}
	}
}

// relax tries to improve every neighbor of u through u. A neighbor is
// updated when it has no distance yet or the candidate is strictly smaller.
func (s *search) relax(u int) error {
	du := s.dist[u]

	return s.g.ForEachIncident(u, func(e core.Edge) bool {
		if e.Weight >= s.cfg.InfEdgeThreshold {
			return true
		}
		v := e.Other(u)
		cand := du + e.Weight
		if cand > s.cfg.MaxDistance {
			return true
		}
		if old, seen := s.dist[v]; seen && cand >= old {
			return true
		}
		s.dist[v] = cand
		s.prev[v] = u
		s.pq.Enqueue(v, cand)

		return true
	})
}

// assemble walks prev from end back to start and resolves node copies.
func (s *search) assemble(start, end int) (Path, error) {
	indices, err := PathTo(s.prev, start, end)
	if err != nil {
		return Path{}, err
	}
	nodes := make([]core.Node, len(indices))
	for i, idx := range indices {
		n, err := s.g.Node(idx)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %d", ErrNodeNotFound, idx)
		}
		nodes[i] = n
	}

	return Path{Nodes: nodes, Cost: s.dist[end]}, nil
}
