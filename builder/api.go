// SPDX-License-Identifier: MIT
// Package: meshroute/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - FromMesh creates a graph; Rebuild reuses one. Both run the same populate step.
//   - Functional options resolve into a builderConfig (no global state).
//   - Determinism: same mesh and options ⇒ identical graphs.
//   - Safety: never panic; return errors wrapped with the entry point name.

package builder

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/bfs"
	"github.com/katalvlaran/meshroute/core"
	"github.com/katalvlaran/meshroute/mesh"
)

// FromMesh validates m and builds a new graph from it.
//
// Errors:
//   - ErrNilMesh when m is nil.
//   - mesh.ErrNotIndexed, mesh.ErrIndexCount, mesh.ErrIndexOutOfRange
//     (all matching mesh.ErrGeometry) for malformed geometry.
//   - ErrBadWeight when the WeightFn yields a negative or NaN weight.
//   - core.ErrNodeNotFound if an edge references a node that was not added.
//
// On error the returned graph is nil.
func FromMesh(m *mesh.Mesh, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	start := time.Now()

	if m == nil {
		cfg.finish(methodFromMesh, start, nil, ErrNilMesh)
		return nil, builderErrorf(methodFromMesh, ErrNilMesh)
	}

	g := core.NewGraph(core.WithCapacity(m.VertexCount(), len(m.Indices)/2))
	if err := populate(g, m, cfg); err != nil {
		cfg.finish(methodFromMesh, start, nil, err)
		return nil, builderErrorf(methodFromMesh, err)
	}
	cfg.finish(methodFromMesh, start, g, nil)

	return g, nil
}

// Rebuild clears g and builds m into it.
//
// The rebuild is all-or-nothing: if any step fails, g is left empty (never
// partially populated) and the error is returned. Errors are those of
// FromMesh plus ErrNilGraph.
//
// The caller must not run queries on g while Rebuild is in progress.
func Rebuild(g *core.Graph, m *mesh.Mesh, opts ...BuilderOption) error {
	cfg := newBuilderConfig(opts...)
	start := time.Now()

	if g == nil {
		cfg.finish(methodRebuild, start, nil, ErrNilGraph)
		return builderErrorf(methodRebuild, ErrNilGraph)
	}
	g.Clear()
	if m == nil {
		cfg.finish(methodRebuild, start, nil, ErrNilMesh)
		return builderErrorf(methodRebuild, ErrNilMesh)
	}

	if err := populate(g, m, cfg); err != nil {
		g.Clear()
		cfg.finish(methodRebuild, start, nil, err)
		return builderErrorf(methodRebuild, err)
	}
	cfg.finish(methodRebuild, start, g, nil)

	return nil
}

// edgeKey identifies an undirected vertex pair with lo ≤ hi.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// populate inserts every vertex and every unique triangle edge of m into g.
//
// Steps:
//  1. Validate the mesh (indexed, len%3 == 0, indices in range).
//  2. For each vertex i: world-transform its position and AddNode(i, p).
//  3. For each triangle (a,b,c) visit (a,b), (b,c), (c,a): skip a == b,
//     skip pairs already seen, otherwise weigh and AddEdge.
func populate(g *core.Graph, m *mesh.Mesh, cfg builderConfig) error {
	if err := m.Validate(); err != nil {
		return err
	}

	n := m.VertexCount()
	world := make([]vec3.T, n)
	for i := 0; i < n; i++ {
		world[i] = m.WorldPosition(i)
		if err := g.AddNode(i, world[i]); err != nil {
			return err
		}
	}

	tris := m.TriangleCount()
	seen := make(map[edgeKey]struct{}, len(m.Indices)/2)
	for t := 0; t < tris; t++ {
		tri := m.Triangle(t)
		pairs := [3][2]int{
			{tri[0], tri[1]},
			{tri[1], tri[2]},
			{tri[2], tri[0]},
		}
		for _, p := range pairs {
			a, b := p[0], p[1]
			if a == b {
				continue
			}
			key := makeEdgeKey(a, b)
			if _, dup := seen[key]; dup {
				continue
			}

			w := cfg.weightFn(world[a], world[b])
			if w < 0 || math.IsNaN(w) {
				return fmt.Errorf("%w: edge %d-%d weight=%g", ErrBadWeight, a, b, w)
			}
			if _, err := g.AddEdge(a, b, w); err != nil {
				return err
			}
			seen[key] = struct{}{}
		}
	}

	return nil
}

// finish reports one build attempt to the recorder and the logger.
func (c builderConfig) finish(method string, start time.Time, g *core.Graph, err error) {
	elapsed := time.Since(start)
	if err != nil {
		c.recorder.RecordBuild(StatusError, elapsed, 0, 0)
		c.logger.Debug("builder: build failed", "method", method, "error", err, "elapsed", elapsed)
		return
	}

	nodes, edges := g.NodeCount(), g.EdgeCount()
	c.recorder.RecordBuild(StatusOK, elapsed, nodes, edges)

	ctx := context.Background()
	if !c.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	c.logger.DebugContext(ctx, "builder: graph built",
		"method", method,
		"nodes", nodes,
		"edges", edges,
		"islands", len(bfs.Components(g)),
		"elapsed", elapsed,
	)
}
