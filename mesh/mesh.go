// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// VertexCount returns the number of vertices in the position buffer.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of complete triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Indexed reports whether the mesh carries a triangle index buffer.
// An empty, non-nil buffer counts as indexed (zero triangles).
func (m *Mesh) Indexed() bool {
	return m.Indices != nil
}

// Triangle returns the i-th triangle. The caller must keep i < TriangleCount().
func (m *Mesh) Triangle(i int) Triangle {
	base := i * 3

	return Triangle{int(m.Indices[base]), int(m.Indices[base+1]), int(m.Indices[base+2])}
}

// WorldPosition returns vertex i after applying the world transform.
// A nil World leaves the position untouched.
func (m *Mesh) WorldPosition(i int) vec3.T {
	p := m.Positions[i]
	if m.World == nil {
		return p
	}

	return m.World.MulVec3(&p)
}

// Validate checks the mesh can be converted into a graph.
//
// Order of checks:
//  1. Index buffer present (ErrNotIndexed).
//  2. Index count multiple of 3 (ErrIndexCount).
//  3. Every index < VertexCount() (ErrIndexOutOfRange).
//
// Complexity: O(len(Indices)).
func (m *Mesh) Validate() error {
	if !m.Indexed() {
		return &GeometryError{Op: "Validate", Err: ErrNotIndexed}
	}
	if len(m.Indices)%3 != 0 {
		return &GeometryError{
			Op:     "Validate",
			Err:    ErrIndexCount,
			Detail: fmt.Sprintf("len=%d", len(m.Indices)),
		}
	}
	n := len(m.Positions)
	for pos, idx := range m.Indices {
		if int(idx) >= n {
			return &GeometryError{
				Op:     "Validate",
				Err:    ErrIndexOutOfRange,
				Detail: fmt.Sprintf("indices[%d]=%d, vertices=%d", pos, idx, n),
			}
		}
	}

	return nil
}
