// Package mst builds a minimum spanning tree over the complete graph induced
// by a set of 2D integer points, where the weight of an edge is the squared
// Euclidean distance between its endpoints.
//
// What & Why
//
//   - Every pair of points is a candidate edge; there is no adjacency input.
//   - The tree is grown by repeatedly adding the cheapest edge that crosses
//     the partition boundary, N-1 times. Partitions are tracked with a flat
//     group label per point and merged by relabeling.
//   - The exact edge sequence is part of the contract: ties are broken by
//     scan order, so two calls on the same input always agree, and any other
//     implementation following the same scan agrees edge-for-edge.
//
// Algorithm
//
//  1. group[i] = i for every point.
//  2. Repeat N-1 times:
//     – scan pairs (i, j) with i ascending and j from i to N-1;
//     – keep the first pair with the strictly smallest distance whose
//     endpoints sit in different groups (an equal distance never replaces it);
//     – append (i, j), then relabel every point of group[j] to group[i].
//  3. Return the edges in selection order.
//
// Complexity
//
//   - Time:  O(N³), N-1 iterations of an O(N²) scan.
//   - Space: O(N) for the group labels, plus the N-1 output edges.
//
// Distances are computed in the coordinate width (int32) with wrapping
// arithmetic. Callers keep |coordinate| small enough that dx²+dy² fits.
//
// Errors
//
//   - N < 2 is not an error: Build returns an empty slice.
//   - ErrResourceExhausted: the input exceeds Options.MaxPoints or the edge
//     buffer size would overflow int. No partial result is returned.
//   - ErrMalformedInput (BuildFlat only): the flat coordinate slice has an odd length.
//
// # Flat interface
//
// BuildFlat and EdgeBuffer mirror a foreign-call boundary: coordinates come in
// as one []int32 (x0, y0, x1, y1, …) and edges go out as one pooled []int32
// (a0, b0, a1, b1, …). The owner calls Release exactly once when done.
package mst
