package server

import (
	"context"
	"errors"

	"github.com/katalvlaran/minspan/logging"
	"github.com/katalvlaran/minspan/mst"
)

// ValidationError is a well-formed JSON body whose content is rejected (422).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation failures, worded as they are reported to clients.
var (
	ErrPointsNotFound = &ValidationError{Msg: "points not found"}
	ErrNotList        = &ValidationError{Msg: "data is not a list"}
	ErrNonListPoint   = &ValidationError{Msg: "found non-list point"}
	ErrNon2DPoint     = &ValidationError{Msg: "found non-2d point"}
	ErrNonNumeric     = &ValidationError{Msg: "found non-numeric point"}
	ErrNonInteger     = &ValidationError{Msg: "found non-integer point"}
	ErrOutOfRange     = &ValidationError{Msg: "found out-of-range point"}
)

// ErrBadBody indicates a missing or malformed JSON body (400).
var ErrBadBody = errors.New("server: request body is not valid JSON")

// ErrBadQuery indicates an unusable query parameter (400).
var ErrBadQuery = errors.New("server: invalid query parameter")

// ErrBusy indicates that the request gave up waiting for a build slot (503).
var ErrBusy = errors.New("server: no build slot available")

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 8 << 20

// Cache stores trees by point-set key. *store.Store implements it.
type Cache interface {
	Get(ctx context.Context, key string) ([]mst.Edge, bool, error)
	Put(ctx context.Context, key string, n int, edges []mst.Edge) error
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCache enables the tree cache.
func WithCache(c Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}
