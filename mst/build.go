package mst

import "fmt"

// Build computes the minimum spanning tree of the complete graph over points.
//
// Returns:
//
//	[]Edge — exactly len(points)-1 edges in selection order, or an empty
//	         slice when len(points) < 2.
//	error  — ErrResourceExhausted (wrapped) when the input is too large.
//
// Tie-break: among equal distances the pair met first in scan order
// (i ascending, then j ascending) wins.
//
// Complexity: O(N³) time, O(N) auxiliary space.
func Build(points []Point, opts ...Option) ([]Edge, error) {
	o := buildOptions(opts)
	n := len(points)
	if n < 2 {
		return []Edge{}, nil
	}
	if err := reserve(n, o); err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, n-1)
	grow(points, func(a, b int) {
		edges = append(edges, Edge{From: a, To: b})
	})

	return edges, nil
}

// grow runs the N-1 selection rounds and hands every chosen pair to emit.
// len(points) must be at least 2.
func grow(points []Point, emit func(a, b int)) {
	n := len(points)

	// 1. Every point starts in its own group.
	//    group[i] is the label of the component holding point i.
	group := make([]int, n)
	for i := range group {
		group[i] = i
	}

	// 2. One edge per round.
	for e := 0; e < n-1; e++ {
		var (
			best   int32 = -1 // -1: no candidate yet
			first  int        // endpoint met in the outer loop
			second int        // endpoint met in the inner loop
		)
		// (a) Scan pairs; i == j is visited and rejected by the group test.
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				d := SquaredDistance(points[i], points[j])
				// Strict comparison keeps the first minimum found.
				if (best == -1 || d < best) && group[i] != group[j] {
					best = d
					first, second = i, j
				}
			}
		}

		// (b) Record the edge.
		emit(first, second)

		// (c) Merge: relabel the second group into the first.
		//     Labels are read once up front; group[second] itself changes during the loop.
		keep, drop := group[first], group[second]
		for i := range group {
			// Every member of the dropped component joins the kept one.
			if group[i] == drop {
				group[i] = keep
			}
		}
	}
}

// SquaredDistance returns dx*dx + dy*dy computed in int32 with wrapping
// arithmetic, the same width as the coordinates.
func SquaredDistance(a, b Point) int32 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// Weight returns the total squared length of edges, accumulated in int64
// from int64 deltas so that it does not wrap for any int32 input.
// Edges referring to indices outside points are skipped.
func Weight(points []Point, edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		if e.From < 0 || e.From >= len(points) || e.To < 0 || e.To >= len(points) {
			continue
		}
		dx := int64(points[e.From].X) - int64(points[e.To].X)
		dy := int64(points[e.From].Y) - int64(points[e.To].Y)
		total += dx*dx + dy*dy
	}

	return total
}

func errExhausted(n, limit int) error {
	return fmt.Errorf("%w: %d points (limit %d)", ErrResourceExhausted, n, limit)
}
