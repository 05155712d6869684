package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/minspan/mst"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// ErrCorrupt indicates a stored blob that cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt entry")

// ErrClosed indicates use of a closed Store.
var ErrClosed = errors.New("store: closed")

const schema = `CREATE TABLE IF NOT EXISTS trees (
	key        TEXT PRIMARY KEY,
	n          INTEGER NOT NULL,
	codec      INTEGER NOT NULL,
	edges      BLOB NOT NULL,
	created_at INTEGER NOT NULL
)`

// Options configures a Store.
type Options struct {
	// Codec compresses new rows.
	Codec Codec

	// Now stamps created_at; defaults to time.Now.
	Now func() time.Time
}

// Option mutates Options.
type Option func(*Options)

// WithCodec selects the compression of new rows.
func WithCodec(c Codec) Option {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// Store is a SQLite-backed tree cache. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	opts Options
}

// Open opens (or creates) the cache at dsn and ensures the schema exists.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	o := Options{Codec: CodecZSTD, Now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", dsn, err)
	}
	// SQLite serialises writers; one connection also keeps ":memory:" databases coherent.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db, opts: o}, nil
}

// Key identifies a point set: hex SHA-256 over little-endian (x, y) pairs, in order.
func Key(points []mst.Point) string {
	h := sha256.New()
	var buf [8]byte
	for _, p := range points {
		binary.LittleEndian.PutUint32(buf[0:], uint32(p.X))
		binary.LittleEndian.PutUint32(buf[4:], uint32(p.Y))
		h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached edges for key. ok is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (edges []mst.Edge, ok bool, err error) {
	if s == nil || s.db == nil {
		return nil, false, ErrClosed
	}
	var (
		n    int
		blob []byte
	)
	err = s.db.QueryRowContext(ctx, `SELECT n, edges FROM trees WHERE key = ?`, key).Scan(&n, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: get %s: %w", key, err)
	}

	want := n - 1
	if want < 0 {
		want = 0
	}
	edges, err = decodeBlob(blob, want)
	if err != nil {
		return nil, false, err
	}

	return edges, true, nil
}

// Put stores the tree of an n-point set under key, replacing any previous row.
func (s *Store) Put(ctx context.Context, key string, n int, edges []mst.Edge) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	blob, err := encodeBlob(edges, s.opts.Codec)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO trees (key, n, codec, edges, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET n = excluded.n, codec = excluded.codec,
		 edges = excluded.edges, created_at = excluded.created_at`,
		key, n, int(blob[0]), blob, s.opts.Now().Unix())
	if err != nil {
		return fmt.Errorf("store: put %s: %w", key, err)
	}

	return nil
}

// Len returns the number of cached trees.
func (s *Store) Len(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}

	return n, nil
}

// Close releases the database handle. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil

	return err
}
