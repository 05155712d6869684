// Package kruskal is an independent minimum spanning tree reference for
// point sets, used to cross-check trees produced by package mst.
//
// Kruskal enumerates every pair i<j of the complete graph, sorts the pairs by
// squared distance with a stable sort (equal weights keep their (i, j) scan
// order), and accepts pairs through a disjoint-set forest with path
// compression and union by rank.
//
// Verify checks a candidate tree: edge count, index range, self-loops,
// connectivity (Spans) and total weight against Kruskal.
//
// Complexity: O(N² log N) time and O(N²) space for the pair list, which
// keeps it a test and verification tool rather than a production builder.
package kruskal
