// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Sentinel errors for mesh validation.
var (
	// ErrGeometry is matched (errors.Is) by every *GeometryError.
	ErrGeometry = errors.New("mesh: invalid geometry")

	// ErrNotIndexed indicates the mesh carries no triangle index buffer.
	ErrNotIndexed = errors.New("mesh: geometry is not indexed")

	// ErrIndexCount indicates the index buffer length is not a multiple of 3.
	ErrIndexCount = errors.New("mesh: index count is not a multiple of 3")

	// ErrIndexOutOfRange indicates a triangle references a missing vertex.
	ErrIndexOutOfRange = errors.New("mesh: vertex index out of range")
)

// GeometryError reports why a mesh cannot be turned into a graph.
// It unwraps to one of the specific sentinels above and also matches ErrGeometry.
type GeometryError struct {
	// Op names the check that failed, e.g. "Validate".
	Op string
	// Err is the specific sentinel (ErrNotIndexed, ErrIndexCount, ...).
	Err error
	// Detail carries optional context such as the offending position.
	Detail string
}

// Error implements error.
func (e *GeometryError) Error() string {
	msg := e.Op + ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}

	return msg
}

// Unwrap exposes the specific sentinel.
func (e *GeometryError) Unwrap() error { return e.Err }

// Is makes every GeometryError match ErrGeometry.
func (e *GeometryError) Is(target error) bool { return target == ErrGeometry }

// Mesh is an indexed triangle mesh.
//
// Positions are in object space; World (if non-nil) maps them to world space.
// Indices holds counter-clockwise triangles as consecutive triples.
type Mesh struct {
	Positions []vec3.T
	World     *mat4.T
	Indices   []uint32
}

// Triangle is one face of the mesh as three vertex indices.
type Triangle [3]int
