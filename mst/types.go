package mst

import (
	"errors"
	"math"
)

// ErrResourceExhausted indicates that the buffers required for the tree could not be
// reserved: the point count is above Options.MaxPoints or the size overflows int.
var ErrResourceExhausted = errors.New("mst: resource exhausted")

// ErrMalformedInput indicates that a flat coordinate slice does not hold whole points.
var ErrMalformedInput = errors.New("mst: malformed flat input")

// DefaultMaxPoints bounds the number of points accepted by Build.
// At this size the O(N³) scan is already far beyond any practical budget.
const DefaultMaxPoints = 1 << 20

// Point is a 2D point with integer coordinates. Points carry no identity
// beyond their index in the input slice.
type Point struct {
	X, Y int32
}

// Edge joins two point indices. From is the index met first by the scan,
// To the second one; From != To always holds for edges returned by Build.
type Edge struct {
	From, To int
}

// Options configures Build and BuildFlat.
//
// Fields:
//
//	MaxPoints int — inputs with more points fail with ErrResourceExhausted.
//	                Zero or negative means DefaultMaxPoints.
type Options struct {
	MaxPoints int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxPoints sets the largest accepted point count.
func WithMaxPoints(n int) Option {
	return func(o *Options) {
		o.MaxPoints = n
	}
}

// DefaultOptions returns Options with MaxPoints = DefaultMaxPoints.
func DefaultOptions() Options {
	return Options{MaxPoints: DefaultMaxPoints}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxPoints <= 0 {
		o.MaxPoints = DefaultMaxPoints
	}

	return o
}

// reserve checks that n points fit under the ceiling and that the flat edge
// buffer, 2*(n-1) ints, is representable.
func reserve(n int, o Options) error {
	if n > o.MaxPoints {
		return errExhausted(n, o.MaxPoints)
	}
	if n-1 > math.MaxInt/2 {
		return errExhausted(n, math.MaxInt/2)
	}

	return nil
}
