package kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/minspan/mst"
)

// Kruskal computes a minimum spanning tree of the complete graph over points.
//
// Steps:
//  1. N < 2 → trivial tree (empty, weight 0).
//  2. Enumerate pairs (i, j), i < j, with int64 squared distances.
//  3. Stable-sort pairs by weight; ties keep scan order.
//  4. Accept pairs joining different DSU roots until N-1 edges are taken.
//
// Complexity: O(N² log N) time, O(N²) space.
func Kruskal(points []mst.Point) ([]mst.Edge, int64, error) {
	n := len(points)
	// 1. No tree to build.
	if n < 2 {
		return []mst.Edge{}, 0, nil
	}

	// 2. Complete graph, self-pairs excluded.
	pairs := make([]pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, pair{from: i, to: j, weight: weight(points[i], points[j])})
		}
	}

	// 3. Deterministic order for equal weights.
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].weight < pairs[b].weight
	})

	// Disjoint-set forest.
	//    parent[i] links point i towards its set root; initially every point is a root.
	//    rank bounds the height of each root's tree.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	// Iterative find, no recursion on long chains.
	find := func(u int) int {
		// Walk up until the root (parent[u] == u).
		for parent[u] != u {
			// Path halving: point u at its grandparent, then step there.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	// Union by rank; false when u and v already share a set.
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			// Same set: the pair would close a cycle.
			return false
		}
		// Hang the lower-rank root under the higher one.
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		// Equal ranks grow the merged tree by one level.
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	// 4. Take edges until the tree is complete.
	var (
		tree  = make([]mst.Edge, 0, n-1) // accepted edges, lightest first
		total int64                      // sum of accepted weights
	)
	for _, p := range pairs {
		// Skip pairs whose endpoints are already connected.
		if !union(p.from, p.to) {
			continue
		}
		tree = append(tree, mst.Edge{From: p.from, To: p.to})
		total += p.weight
		// N-1 edges connect N points; the rest can only form cycles.
		if len(tree) == n-1 {
			break
		}
	}

	// The complete graph is always connected; a short tree means a wiring bug.
	if len(tree) != n-1 {
		return nil, 0, fmt.Errorf("%w: %d of %d edges", ErrNotSpanning, len(tree), n-1)
	}

	return tree, total, nil
}

func weight(a, b mst.Point) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)

	return dx*dx + dy*dy
}
