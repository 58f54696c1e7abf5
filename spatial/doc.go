// Package spatial snaps world-space points to graph nodes.
//
// An Index is a 3-D R-tree (github.com/dhconnelly/rtreego) over the node
// positions of a core.Graph. It answers "which node did the user click?":
// Nearest, KNearest and Within all return node indices ready for
// dijkstra.ShortestPath.
//
// An Index is a snapshot: rebuilding the graph requires a new Index.
// Queries are read-only and safe for concurrent use.
package spatial
