// Package builder turns an indexed triangle mesh into a core.Graph.
//
// Every mesh vertex becomes one node whose index equals the vertex index and
// whose position is the vertex transformed by the mesh's world matrix. Every
// unique undirected triangle edge becomes exactly one graph edge, weighted by
// the Euclidean distance between its transformed endpoints (or by a custom
// WeightFn).
//
// The package offers:
//
//   - FromMesh:  build a fresh graph.
//   - Rebuild:   clear an existing graph and build into it, all-or-nothing.
//   - Options:   WithLogger, WithRecorder, WithWeightFn.
//   - WeightFns: EuclideanWeightFn (default), ScaledWeightFn, ClimbWeightFn.
//
// Guarantees:
//
//   - Deterministic: the same mesh and options yield identical node order,
//     edge IDs and weights.
//   - A shared triangle edge is inserted once; degenerate pairs (a == b) are
//     skipped.
//   - A failed build never publishes a partial graph.
//   - Option constructors panic on meaningless inputs; builds return errors.
//
// Complexity: O(V + T) time and space for V vertices and T triangles.
package builder
