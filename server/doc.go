// Package server exposes tree construction and route approximation over HTTP.
//
// Endpoints (GET or POST, JSON body {"points": [[x, y], ...]}):
//
//	/ping                → 200, empty body
//	/min_span            → {"edges": [[i, j], ...]}
//	/traveling_salesman  → {"path": [[x, y], ...]}
//	/min_span.png        → image/png drawing of the tree (?width=&height=)
//
// Status codes:
//
//	400 — missing or malformed JSON body
//	413 — body too large, or more points than the configured ceiling
//	422 — body without points, or points that are not [number, number] pairs
//	      (/min_span and /min_span.png also require int32 integers)
//	429 — rate limit exceeded
//	503 — request cancelled while waiting for a build slot
//
// Errors are reported as {"error": "<message>"}.
//
// Every handler runs behind request logging, panic recovery, CORS, gzip and a
// token-bucket rate limiter. Builds are gated by a weighted semaphore so that
// at most MaxConcurrentBuilds cubic scans run at once, and an optional Cache
// short-circuits repeated point sets.
package server
