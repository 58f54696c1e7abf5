// SPDX-License-Identifier: MIT

package spatial

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/core"
)

// Sentinel errors for index construction and queries.
var (
	// ErrNilGraph indicates NewIndex received a nil graph.
	ErrNilGraph = errors.New("spatial: graph is nil")

	// ErrEmptyIndex indicates the graph has no nodes to index.
	ErrEmptyIndex = errors.New("spatial: graph has no nodes")

	// ErrBadCount indicates a non-positive k for KNearest.
	ErrBadCount = errors.New("spatial: k must be positive")
)

// R-tree fan-out, matching the values used for polygon indexes.
const (
	minChildren = 25
	maxChildren = 50
)

// pointTolerance is the half-extent of each node's bounding box.
// rtreego expects boxes, so every point is stored as a tiny cube.
const pointTolerance = 1e-9

// extraCandidates widens R-tree candidate pools so the exact re-ranking
// below can resolve near-ties the box distance cannot.
const extraCandidates = 8

// nodeEntry is one indexed node.
type nodeEntry struct {
	index  int
	pos    vec3.T
	bounds rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.bounds
}

// Index is an R-tree over node positions.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// Hit is one query result.
type Hit struct {
	Index    int
	Position vec3.T
	Distance float64
}

// NewIndex bulk-loads the positions of every node of g.
// Returns ErrNilGraph or ErrEmptyIndex.
//
// Complexity: O(V log V).
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyIndex
	}

	objs := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		objs = append(objs, &nodeEntry{
			index:  n.Index,
			pos:    n.Position,
			bounds: toPoint(n.Position).ToRect(pointTolerance),
		})
	}

	return &Index{
		tree: rtreego.NewTree(3, minChildren, maxChildren, objs...),
		size: len(objs),
	}, nil
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the index of the node closest to p. Equidistant nodes
// resolve to the smallest index.
func (ix *Index) Nearest(p vec3.T) (int, error) {
	hits, err := ix.KNearest(p, 1)
	if err != nil {
		return 0, err
	}

	return hits[0].Index, nil
}

// KNearest returns up to k nodes ordered by distance to p, then by index.
// Returns ErrBadCount for k ≤ 0.
func (ix *Index) KNearest(p vec3.T, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, k)
	}
	found := ix.tree.NearestNeighbors(min(k+extraCandidates, ix.size), toPoint(p))
	hits := rank(p, found)
	if len(hits) > k {
		hits = hits[:k]
	}

	return hits, nil
}

// Within returns every node whose distance to p is at most radius, ordered
// by distance then index. A negative radius yields nil.
func (ix *Index) Within(p vec3.T, radius float64) []Hit {
	if radius < 0 {
		return nil
	}
	box := toPoint(p).ToRect(radius + pointTolerance)
	hits := rank(p, ix.tree.SearchIntersect(box))

	out := hits[:0]
	for _, h := range hits {
		if h.Distance <= radius {
			out = append(out, h)
		}
	}

	return out
}

// rank converts R-tree results into exact-distance hits sorted by
// (distance, index).
func rank(p vec3.T, found []rtreego.Spatial) []Hit {
	hits := make([]Hit, 0, len(found))
	for _, s := range found {
		e := s.(*nodeEntry)
		hits = append(hits, Hit{
			Index:    e.index,
			Position: e.pos,
			Distance: vec3.Distance(&p, &e.pos),
		})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].Index < hits[j].Index
	})

	return hits
}

func toPoint(v vec3.T) rtreego.Point {
	return rtreego.Point{v[0], v[1], v[2]}
}
