package kruskal

import "errors"

// ErrEdgeCount indicates a tree whose edge count is not len(points)-1.
var ErrEdgeCount = errors.New("kruskal: wrong number of edges")

// ErrEdgeOutOfRange indicates an edge endpoint outside [0, len(points)).
var ErrEdgeOutOfRange = errors.New("kruskal: edge endpoint out of range")

// ErrSelfLoop indicates an edge whose endpoints coincide.
var ErrSelfLoop = errors.New("kruskal: self-loop edge")

// ErrNotSpanning indicates that the edges do not connect every point.
var ErrNotSpanning = errors.New("kruskal: edges do not span the point set")

// ErrNotMinimal indicates that a strictly lighter spanning tree exists.
var ErrNotMinimal = errors.New("kruskal: tree is not minimal")

// pair is a candidate edge of the complete graph with its int64 weight.
type pair struct {
	from, to int
	weight   int64
}
