// Package mesh describes the indexed triangle mesh consumed by the graph
// builder: a shared vertex position buffer, an optional world transform and a
// triangle index buffer whose consecutive triples name one triangle each.
//
// The package only models and validates geometry; it never generates it.
// Terrain producers fill a Mesh and hand it to builder.FromMesh.
//
// Layout:
//
//	Positions: []vec3.T   index = vertex id (local/object space)
//	World:     *mat4.T    nil means identity
//	Indices:   []uint32   len%3 == 0; nil means "not indexed"
//
// Errors:
//
//	ErrGeometry         – umbrella sentinel matched by every *GeometryError
//	ErrNotIndexed       – Indices is nil (unindexed geometry is unsupported)
//	ErrIndexCount       – len(Indices) is not a multiple of 3
//	ErrIndexOutOfRange  – an index refers past the end of Positions
//
// Connectivity is never inferred from an implicit triangle list: a mesh
// without an index buffer is rejected.
package mesh
