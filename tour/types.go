package tour

import "errors"

// ErrNonFinite indicates a NaN or infinite coordinate.
var ErrNonFinite = errors.New("tour: non-finite coordinate")

// ErrOutOfRange indicates a coordinate that does not fit int32 once scaled.
var ErrOutOfRange = errors.New("tour: scaled coordinate out of range")

// ErrBadScale indicates a non-positive or non-finite Options.Scale.
var ErrBadScale = errors.New("tour: scale must be positive and finite")

// ErrWalkStalled indicates that the tree walk did not reach every point
// within its step budget.
var ErrWalkStalled = errors.New("tour: tree walk stalled")

// ErrInvalidOrder indicates an order slice that is not a set of distinct in-range indices.
var ErrInvalidOrder = errors.New("tour: invalid visit order")

// DefaultScale keeps two decimal digits of each coordinate.
const DefaultScale = 100

// reverseEps treats turn angles within this distance of 2π as a reversal.
const reverseEps = 1e-7

// Vec is a point or a direction in the plane.
type Vec struct {
	X, Y float64
}

// Result is an approximate route.
type Result struct {
	// Path lists the unique points in visit order; the route closes from the
	// last point back to the first.
	Path []Vec

	// Order[k] is the index, in the caller's input, of Path[k].
	Order []int
}

// Options configures Approximate.
type Options struct {
	// Scale multiplies coordinates before truncation to the integer grid.
	Scale float64

	// MaxPoints is forwarded to mst.WithMaxPoints; zero keeps the mst default.
	MaxPoints int
}

// Option mutates Options.
type Option func(*Options)

// WithScale sets the grid scale.
func WithScale(s float64) Option {
	return func(o *Options) {
		o.Scale = s
	}
}

// WithMaxPoints caps the number of unique points handed to mst.Build.
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		o.MaxPoints = n
	}
}

// DefaultOptions returns Options{Scale: DefaultScale}.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale}
}
