package mst

import (
	"math"
	"sync"
)

// flatPool recycles the backing arrays of released EdgeBuffers.
var flatPool = sync.Pool{
	New: func() interface{} {
		s := make([]int32, 0, 64)
		return &s
	},
}

// EdgeBuffer owns a flat edge array produced by BuildFlat.
// Edge i occupies Values()[2i] and Values()[2i+1].
//
// The owner calls Release exactly once when it no longer needs the data;
// the array is then recycled and must not be read through stale slices.
type EdgeBuffer struct {
	vals     *[]int32
	released bool
}

// BuildFlat runs Build over a flat coordinate slice where point i is
// (pointvals[2i], pointvals[2i+1]), and returns the edges as a pooled flat
// buffer of 2*(N-1) indices.
//
// Errors: ErrMalformedInput for an odd-length slice, ErrResourceExhausted as in Build.
func BuildFlat(pointvals []int32, opts ...Option) (*EdgeBuffer, error) {
	if len(pointvals)%2 != 0 {
		return nil, ErrMalformedInput
	}
	o := buildOptions(opts)
	n := len(pointvals) / 2
	if n < 2 {
		return acquire(0), nil
	}
	if err := reserve(n, o); err != nil {
		return nil, err
	}
	// Indices travel as int32.
	if n-1 > math.MaxInt32 {
		return nil, errExhausted(n, math.MaxInt32)
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: pointvals[2*i], Y: pointvals[2*i+1]}
	}

	buf := acquire(2 * (n - 1))
	out := (*buf.vals)[:0]
	grow(points, func(a, b int) {
		out = append(out, int32(a), int32(b))
	})
	*buf.vals = out

	return buf, nil
}

func acquire(size int) *EdgeBuffer {
	vals := flatPool.Get().(*[]int32)
	if cap(*vals) < size {
		s := make([]int32, 0, size)
		vals = &s
	}
	*vals = (*vals)[:0]

	return &EdgeBuffer{vals: vals}
}

// Len returns the number of edges, zero after Release.
func (b *EdgeBuffer) Len() int {
	if b == nil || b.released {
		return 0
	}

	return len(*b.vals) / 2
}

// Values returns the flat index array. The slice aliases pooled memory and
// is valid only until Release.
func (b *EdgeBuffer) Values() []int32 {
	if b == nil || b.released {
		return nil
	}

	return *b.vals
}

// Edge returns the endpoints of edge i. It returns (-1, -1) after Release,
// on a nil buffer, or when i is outside [0, Len()).
func (b *EdgeBuffer) Edge(i int) (int32, int32) {
	// Released and nil buffers hold no edges.
	if i < 0 || i >= b.Len() {
		return -1, -1
	}
	v := *b.vals

	return v[2*i], v[2*i+1]
}

// Edges copies the buffer into a freshly allocated []Edge that survives Release.
func (b *EdgeBuffer) Edges() []Edge {
	n := b.Len()
	edges := make([]Edge, n)
	for i := 0; i < n; i++ {
		a, c := b.Edge(i)
		edges[i] = Edge{From: int(a), To: int(c)}
	}

	return edges
}

// Release hands the backing array back to the pool. Calls after the first are no-ops.
func (b *EdgeBuffer) Release() {
	if b == nil || b.released {
		return
	}
	b.released = true
	*b.vals = (*b.vals)[:0]
	flatPool.Put(b.vals)
	b.vals = nil
}
