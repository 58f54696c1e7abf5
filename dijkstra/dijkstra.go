// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/meshroute/core"
	"github.com/katalvlaran/meshroute/pqueue"
)

// Dijkstra computes shortest distances from source to every node of g.
//
// Returns:
//
//   - dist: node index → minimum cost (+Inf if unreachable or beyond
//     MaxDistance). Every node of g has an entry.
//   - prev: predecessor map for reached nodes other than source;
//     prev[v] == u means the shortest route to v arrives from u.
//     Feed it to PathTo to reconstruct routes.
//   - err:  ErrNilGraph or ErrNodeNotFound.
//
// Unlike ShortestPath this variant always keeps a settled set, because it
// has no early exit and a node's distance is final once it is dequeued.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	cfg := resolve(opts)

	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}

	nodes := g.Nodes()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, len(nodes)),
		prev:    make(map[int]int, len(nodes)),
		visited: make(map[int]bool, len(nodes)),
		pq:      pqueue.New[int](len(nodes)),
	}
	r.init(nodes, source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph        // read-only within Dijkstra
	options Options            // thresholds and sinks
	dist    map[int]float64    // node → best known distance from source
	prev    map[int]int        // node → predecessor on the shortest route
	visited map[int]bool       // node distance is final
	pq      *pqueue.Queue[int] // lazy decrease-key queue
}

// init sets every distance to +Inf, the source to zero and seeds the queue.
func (r *runner) init(nodes []core.Node, source int) {
	for _, n := range nodes {
		r.dist[n.Index] = math.Inf(1)
	}
	r.dist[source] = 0
	r.pq.Enqueue(source, 0)
}

// process pops nodes in cost order until the queue drains or the next
// cost exceeds MaxDistance.
func (r *runner) process() error {
	for {
		u, d, ok := r.pq.Dequeue()
		if !ok {
			return nil
		}
		if r.visited[u] {
			continue // stale entry
		}
		if d > r.options.MaxDistance {
			return nil
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax improves distances of u's neighbors, skipping impassable edges and
// candidates beyond MaxDistance.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	err := r.g.ForEachIncident(u, func(e core.Edge) bool {
		if e.Weight >= r.options.InfEdgeThreshold {
			return true
		}
		v := e.Other(u)
		cand := du + e.Weight
		if cand > r.options.MaxDistance || cand >= r.dist[v] {
			return true
		}
		r.dist[v] = cand
		r.prev[v] = u
		r.pq.Enqueue(v, cand)

		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to walk edges of %d: %w", u, err)
	}

	return nil
}

// PathTo reconstructs the node sequence source → dest from a predecessor
// map produced by Dijkstra. dest == source yields [source]. A dest with no
// predecessor chain back to source yields ErrPathNotFound.
//
// Complexity: O(L) for a path of L nodes.
func PathTo(prev map[int]int, source, dest int) ([]int, error) {
	path := []int{dest}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || len(path) > len(prev)+1 {
			return nil, fmt.Errorf("%w: %d → %d", ErrPathNotFound, source, dest)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
