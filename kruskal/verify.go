package kruskal

import (
	"fmt"

	"github.com/katalvlaran/minspan/mst"
)

// Spans reports whether edges form a spanning tree of n points: exactly n-1
// edges, all endpoints in range, and a single group left after merging every
// edge by relabeling. Zero or one point is spanned by an empty edge list.
func Spans(n int, edges []mst.Edge) bool {
	if n < 2 {
		return len(edges) == 0
	}
	if len(edges) != n-1 {
		return false
	}
	group := make([]int, n)
	for i := range group {
		group[i] = i
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return false
		}
		keep, drop := group[e.From], group[e.To]
		if keep == drop {
			// n-1 edges with a cycle cannot connect n points.
			return false
		}
		for i := range group {
			if group[i] == drop {
				group[i] = keep
			}
		}
	}

	return true
}

// Verify checks that edges form a minimum spanning tree of points.
// The weight comparison uses int64 arithmetic, so it is exact for any int32 input.
//
// Errors: ErrEdgeCount, ErrEdgeOutOfRange, ErrSelfLoop, ErrNotSpanning, ErrNotMinimal.
func Verify(points []mst.Point, edges []mst.Edge) error {
	n := len(points)
	want := n - 1
	if want < 0 {
		want = 0
	}
	if len(edges) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrEdgeCount, len(edges), want)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d,%d)", ErrEdgeOutOfRange, i, e.From, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: edge %d at %d", ErrSelfLoop, i, e.From)
		}
	}
	if !Spans(n, edges) {
		return ErrNotSpanning
	}

	_, best, err := Kruskal(points)
	if err != nil {
		return err
	}
	if got := mst.Weight(points, edges); got > best {
		return fmt.Errorf("%w: weight %d, minimum %d", ErrNotMinimal, got, best)
	}

	return nil
}
