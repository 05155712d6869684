// Package minspan builds minimum spanning trees over integer points in the
// plane and serves them, with a tree-walk route approximation, over HTTP.
//
// What is in the module?
//
//	mst/          — the tree builder (O(N³) cheapest crossing edge) and its flat, releasable form
//	kruskal/      — an independent Kruskal implementation used to verify trees
//	tour/         — closed routes from a perimeter walk of the tree, then uncrossed
//	render/       — PNG drawings of trees and routes
//	store/        — SQLite cache of built trees, blobs compressed with LZ4 or zstd
//	server/       — the HTTP API: /ping, /min_span, /min_span.png, /traveling_salesman
//	config/       — defaults, MINSPAN_* environment and flags
//	logging/      — slog wrapper with domain helpers
//	cmd/minspan/  — serve, build, tour and render from the command line
//	examples/     — a fibre backbone and drone survey walk-through
//
// Weights are squared Euclidean distances computed in int32, so coordinates
// must stay within ±2^15 per axis for the weights to be exact.
//
// Quick example:
//
//	   0────2────1        points (0,0) (10,0) (5,0)
//	                      edges  (0,2) (1,2), both of weight 25
//
//	edges, err := mst.Build([]mst.Point{{0, 0}, {10, 0}, {5, 0}})
//
// Ties are broken by scan order, so equal inputs always give equal trees.
package minspan
