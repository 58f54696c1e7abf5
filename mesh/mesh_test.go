package mesh_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/katalvlaran/meshroute/mesh"
	"github.com/katalvlaran/meshroute/mesh/meshtest"
)

// TestValidate_Errors verifies every rejection class and its sentinel.
func TestValidate_Errors(t *testing.T) {
	pos := []vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	cases := []struct {
		name string
		m    *mesh.Mesh
		err  error
	}{
		{"NotIndexed", &mesh.Mesh{Positions: pos}, mesh.ErrNotIndexed},
		{"IndexCount", &mesh.Mesh{Positions: pos, Indices: []uint32{0, 1}}, mesh.ErrIndexCount},
		{"OutOfRange", &mesh.Mesh{Positions: pos, Indices: []uint32{0, 1, 3}}, mesh.ErrIndexOutOfRange},
		{"MaxUint32", &mesh.Mesh{Positions: pos, Indices: []uint32{0, 1, math.MaxUint32}}, mesh.ErrIndexOutOfRange},
		{"NoPositions", &mesh.Mesh{Indices: []uint32{0, 0, 0}}, mesh.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, mesh.ErrGeometry)

			var ge *mesh.GeometryError
			require.True(t, errors.As(err, &ge))
			assert.Equal(t, "Validate", ge.Op)
		})
	}
}

// TestValidate_EmptyIndexedIsValid: a non-nil empty buffer means zero triangles.
func TestValidate_EmptyIndexedIsValid(t *testing.T) {
	m := &mesh.Mesh{Positions: []vec3.T{{1, 2, 3}}, Indices: []uint32{}}
	require.NoError(t, m.Validate())
	assert.True(t, m.Indexed())
	assert.Equal(t, 0, m.TriangleCount())
	assert.Equal(t, 1, m.VertexCount())
}

func TestTriangle(t *testing.T) {
	m := meshtest.Grid(1, 1, 2, nil)
	require.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, mesh.Triangle{0, 2, 1}, m.Triangle(0))
	assert.Equal(t, mesh.Triangle{1, 2, 3}, m.Triangle(1))
}

// TestWorldPosition checks identity, scale and translation handling.
func TestWorldPosition(t *testing.T) {
	m := &mesh.Mesh{Positions: []vec3.T{{1, 2, 3}}, Indices: []uint32{}}
	assert.Equal(t, vec3.T{1, 2, 3}, m.WorldPosition(0), "nil World is identity")

	world := mat4.Ident
	world[0][0], world[1][1], world[2][2] = 2, 2, 2
	world[3][0], world[3][1], world[3][2] = 10, 0, -1 // translation column
	m.World = &world

	got := m.WorldPosition(0)
	assert.InDelta(t, 12, got[0], 1e-12)
	assert.InDelta(t, 4, got[1], 1e-12)
	assert.InDelta(t, 5, got[2], 1e-12)
	assert.Equal(t, vec3.T{1, 2, 3}, m.Positions[0], "source buffer must not be mutated")
}

func TestGridShape(t *testing.T) {
	m := meshtest.Grid(4, 3, 8, nil)
	require.NoError(t, m.Validate())
	assert.Equal(t, 5*4, m.VertexCount())
	assert.Equal(t, 4*3*2, m.TriangleCount())
}

func TestJoinKeepsPartsDisjoint(t *testing.T) {
	a := meshtest.Triangle()
	b := meshtest.Triangle()
	j := meshtest.Join(a, b)
	require.NoError(t, j.Validate())
	assert.Equal(t, 6, j.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, j.Indices)
}
