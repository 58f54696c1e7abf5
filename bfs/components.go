package bfs

import (
	"slices"

	"github.com/katalvlaran/meshroute/core"
)

// Components partitions g into connected components ("islands").
//
// Each component lists its node indices in ascending order; components are
// ordered by their smallest index. Isolated nodes form singleton components.
// A nil or empty graph yields nil.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	adj := g.Adjacency() // one read-locked snapshot; keys include every node
	if len(adj) == 0 {
		return nil
	}
	roots := make([]int, 0, len(adj))
	for idx := range adj {
		roots = append(roots, idx)
	}
	slices.Sort(roots)

	seen := make(map[int]bool, len(adj))
	var out [][]int
	for _, root := range roots {
		if seen[root] {
			continue
		}
		comp := []int{}
		queue := []int{root}
		seen[root] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, v := range adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}
