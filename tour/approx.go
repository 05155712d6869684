package tour

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/minspan/mst"
)

// Approximate computes a closed route visiting every distinct point.
//
// Fewer than three distinct points are returned as they are (in input order).
// Coordinates are compared after scaling, so points closer than 1/Scale may
// collapse into one.
//
// Errors: ErrBadScale, ErrNonFinite, ErrOutOfRange, ErrWalkStalled and
// mst.ErrResourceExhausted (wrapped).
func Approximate(points []Vec, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Scale <= 0 || math.IsInf(o.Scale, 0) || math.IsNaN(o.Scale) {
		return Result{}, ErrBadScale
	}

	// 1–2. Snap to the grid and drop duplicates.
	grid, order, err := snap(points, o.Scale)
	if err != nil {
		return Result{}, err
	}
	if len(grid) < 3 {
		return Result{Path: unscale(grid, o.Scale), Order: order}, nil
	}

	// 3. Tree and perimeter walk.
	var mopts []mst.Option
	if o.MaxPoints > 0 {
		mopts = append(mopts, mst.WithMaxPoints(o.MaxPoints))
	}
	edges, err := mst.Build(grid, mopts...)
	if err != nil {
		return Result{}, fmt.Errorf("tour: %w", err)
	}
	visit, err := walk(grid, adjacency(len(grid), edges))
	if err != nil {
		return Result{}, err
	}

	// 4. Back to caller units, then uncross.
	path := make([]Vec, len(visit))
	ids := make([]int, len(visit))
	for k, v := range visit {
		p := grid[v]
		path[k] = Vec{X: float64(p.X) / o.Scale, Y: float64(p.Y) / o.Scale}
		ids[k] = order[v]
	}
	Uncross(path, ids)

	return Result{Path: path, Order: ids}, nil
}

// snap scales and truncates points, keeping the first of each duplicate.
// order[k] is the input index of grid[k].
func snap(points []Vec, scale float64) ([]mst.Point, []int, error) {
	grid := make([]mst.Point, 0, len(points))
	order := make([]int, 0, len(points))
	seen := make(map[mst.Point]struct{}, len(points))
	for i, p := range points {
		x, err := toGrid(p.X, scale)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: point %d", err, i)
		}
		y, err := toGrid(p.Y, scale)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: point %d", err, i)
		}
		q := mst.Point{X: x, Y: y}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		grid = append(grid, q)
		order = append(order, i)
	}

	return grid, order, nil
}

func toGrid(v, scale float64) (int32, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}
	s := math.Trunc(v * scale)
	if s > math.MaxInt32 || s < math.MinInt32 {
		return 0, ErrOutOfRange
	}

	return int32(s), nil
}

func unscale(grid []mst.Point, scale float64) []Vec {
	out := make([]Vec, len(grid))
	for i, p := range grid {
		out[i] = Vec{X: float64(p.X) / scale, Y: float64(p.Y) / scale}
	}

	return out
}

// adjacency turns the edge list into neighbour lists, in edge order.
func adjacency(n int, edges []mst.Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	return adj
}

// walk follows the tree perimeter from its first leaf and returns the points
// in order of first visit. A perimeter walk crosses every edge twice, so
// 2(N-1) steps suffice; the budget is doubled before giving up.
func walk(grid []mst.Point, adj [][]int) ([]int, error) {
	n := len(grid)
	pos := func(i int) Vec {
		return Vec{X: float64(grid[i].X), Y: float64(grid[i].Y)}
	}

	start := 0
	for len(adj[start]) > 1 {
		start++
	}

	visited := roaring.New()
	visited.Add(uint32(start))
	path := make([]int, 1, n)
	path[0] = start

	previous, walker := start, adj[start][0]
	for steps := 0; len(path) < n; steps++ {
		if steps > 4*n {
			return nil, fmt.Errorf("%w: %d of %d points after %d steps", ErrWalkStalled, len(path), n, steps)
		}
		incoming := Direction(pos(walker), pos(previous))
		next := adj[walker][0]
		for _, cand := range adj[walker] {
			out := Direction(pos(cand), pos(walker))
			best := Direction(pos(next), pos(walker))
			if Angle(incoming, out) > Angle(incoming, best) {
				next = cand
			}
		}
		if visited.CheckedAdd(uint32(walker)) {
			path = append(path, walker)
		}
		previous, walker = walker, next
	}

	return path, nil
}

// Uncross repeatedly swaps the inner endpoints of crossing segments
// (path[i], path[i+1]) and (path[j], path[j+1 mod n]) for i ≥ 1, j ≥ i+2.
// It stops after a pass without swaps or after len(path) passes.
// order, when non-nil, is permuted alongside path.
func Uncross(path []Vec, order []int) {
	n := len(path)
	for pass := 0; pass < n; pass++ {
		clean := true
		for i := 1; i < n; i++ {
			for j := i + 2; j < n; j++ {
				b := i + 1
				if !SegmentsIntersect(path[i], path[b], path[j], path[(j+1)%n]) {
					continue
				}
				path[b], path[j] = path[j], path[b]
				if order != nil {
					order[b], order[j] = order[j], order[b]
				}
				clean = false
			}
		}
		if clean {
			return
		}
	}
}
