// Package store caches computed trees in SQLite so that repeated requests for
// the same point set skip the cubic build.
//
// Rows are keyed by Key(points), a SHA-256 over the coordinates in order.
// Edges are stored as a blob:
//
//	[codec:1][raw length:uint32 LE][payload]
//
// where the raw bytes are the uvarint-packed edge endpoints and the payload is
// those bytes compressed with the row's codec (none, LZ4 block or ZSTD).
// Each row records its own codec, so changing Options.Codec never invalidates
// existing rows.
//
// The driver is modernc.org/sqlite (pure Go, registered as "sqlite").
package store
