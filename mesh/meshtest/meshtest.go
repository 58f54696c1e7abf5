// Package meshtest provides small deterministic meshes for tests, examples
// and benchmarks. Nothing here is meant for production terrain.
package meshtest

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/mesh"
)

// HeightFn returns the elevation (Y) at planar coordinates (x, z).
type HeightFn func(x, z float64) float64

// Flat is a HeightFn that always returns 0.
func Flat(_, _ float64) float64 { return 0 }

// Grid builds a (cols+1)×(rows+1) vertex grid of the given world size centred
// on the origin, two counter-clockwise triangles per cell:
//
//	a───c      a = i*(rows+1)+j
//	│ ╱ │      b = a+rows+1
//	b───d      c = a+1, d = b+1
//
// Triangles are (a,b,c) and (c,b,d). A nil height uses Flat.
// Vertex count: (cols+1)(rows+1); unique edges: 3·cols·rows + cols + rows.
func Grid(cols, rows int, size float64, height HeightFn) *mesh.Mesh {
	if height == nil {
		height = Flat
	}
	positions := make([]vec3.T, 0, (cols+1)*(rows+1))
	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			x := float64(i)/float64(cols)*size - size/2
			z := float64(j)/float64(rows)*size - size/2
			positions = append(positions, vec3.T{x, height(x, z), z})
		}
	}

	indices := make([]uint32, 0, cols*rows*6)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			a := uint32(i*(rows+1) + j)
			b := a + uint32(rows) + 1
			c := a + 1
			d := b + 1
			indices = append(indices, a, b, c, c, b, d)
		}
	}

	return &mesh.Mesh{Positions: positions, Indices: indices}
}

// GridEdgeCount returns the number of unique edges Grid(cols, rows, ...) has.
func GridEdgeCount(cols, rows int) int {
	return 3*cols*rows + cols + rows
}

// Triangle returns a single right triangle with legs of length 3 and 4.
func Triangle() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: []vec3.T{{0, 0, 0}, {3, 0, 0}, {0, 4, 0}},
		Indices:   []uint32{0, 1, 2},
	}
}

// Join concatenates meshes into one, offsetting indices so the parts stay
// disconnected. World transforms are baked into the positions.
func Join(parts ...*mesh.Mesh) *mesh.Mesh {
	out := &mesh.Mesh{Indices: []uint32{}}
	for _, p := range parts {
		offset := uint32(len(out.Positions))
		for i := range p.Positions {
			out.Positions = append(out.Positions, p.WorldPosition(i))
		}
		for _, idx := range p.Indices {
			out.Indices = append(out.Indices, idx+offset)
		}
	}

	return out
}

// Scatter appends isolated vertices (referenced by no triangle) to m and
// returns their indices.
func Scatter(m *mesh.Mesh, points ...vec3.T) []int {
	out := make([]int, 0, len(points))
	for _, p := range points {
		out = append(out, len(m.Positions))
		m.Positions = append(m.Positions, p)
	}

	return out
}
