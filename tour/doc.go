// Package tour approximates a closed route through a set of 2D points by
// walking the perimeter of their minimum spanning tree.
//
// Pipeline (Approximate):
//
//  1. Scale coordinates by Options.Scale and truncate them to integers, so the
//     tree is built by package mst on an integer grid.
//  2. Drop duplicates produced by the rounding, first occurrence wins.
//  3. Build the tree, then walk it from a leaf, always taking the neighbour
//     with the widest turn from the incoming direction. Every point is
//     recorded the first time the walk reaches it.
//  4. Scale back and remove crossings by swapping the endpoints of crossing
//     segments, for at most one pass per point.
//
// The walk visits points in a depth-first order of the tree, which is the
// classic tree-doubling construction: for metric instances the route is at
// most twice the optimal length before uncrossing.
//
// Complexity: dominated by mst.Build, O(N³).
package tour
