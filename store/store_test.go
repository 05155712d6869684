package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "trees.db")
	s, err := store.Open(context.Background(), dsn, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestKey(t *testing.T) {
	a := []mst.Point{{X: 0, Y: 0}, {X: 1, Y: 2}}
	b := []mst.Point{{X: 1, Y: 2}, {X: 0, Y: 0}}

	assert.Equal(t, store.Key(a), store.Key([]mst.Point{{X: 0, Y: 0}, {X: 1, Y: 2}}))
	assert.NotEqual(t, store.Key(a), store.Key(b), "order is part of the key")
	assert.Len(t, store.Key(nil), 64)
}

// TestStore_GetPut exercises every codec on a tree large enough to compress.
func TestStore_GetPut(t *testing.T) {
	points := make([]mst.Point, 200)
	for i := range points {
		points[i] = mst.Point{X: int32(i % 17), Y: int32(i / 17)}
	}
	edges, err := mst.Build(points)
	require.NoError(t, err)
	key := store.Key(points)

	for _, codec := range []store.Codec{store.CodecNone, store.CodecLZ4, store.CodecZSTD} {
		t.Run(codec.String(), func(t *testing.T) {
			ctx := context.Background()
			s := openTemp(t, store.WithCodec(codec))

			_, ok, err := s.Get(ctx, key)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Put(ctx, key, len(points), edges))
			got, ok, err := s.Get(ctx, key)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, edges, got)

			n, err := s.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

// TestStore_Degenerate caches the empty tree of a single point.
func TestStore_Degenerate(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	key := store.Key([]mst.Point{{X: 5, Y: 5}})
	require.NoError(t, s.Put(ctx, key, 1, []mst.Edge{}))
	got, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

// TestStore_Upsert: a second Put on the same key replaces the row, whatever the codec.
func TestStore_Upsert(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "trees.db")
	clock := func() time.Time { return time.Unix(1700000000, 0) }

	s, err := store.Open(ctx, dsn, store.WithCodec(store.CodecLZ4), store.WithClock(clock))
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "k", 2, []mst.Edge{{From: 0, To: 1}}))
	require.NoError(t, s.Close())

	// Reopen with another codec; the old row stays readable, then gets replaced.
	s, err = store.Open(ctx, dsn, store.WithCodec(store.CodecZSTD))
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []mst.Edge{{From: 0, To: 1}}, got)

	require.NoError(t, s.Put(ctx, "k", 3, []mst.Edge{{From: 0, To: 2}, {From: 1, To: 2}}))
	got, _, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []mst.Edge{{From: 0, To: 2}, {From: 1, To: 2}}, got)

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "trees.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Close(), store.ErrClosed)
	_, _, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrClosed)
	assert.ErrorIs(t, s.Put(ctx, "k", 1, nil), store.ErrClosed)
	_, err = s.Len(ctx)
	assert.ErrorIs(t, err, store.ErrClosed)
}

func TestParseCodec(t *testing.T) {
	for in, want := range map[string]store.Codec{"": store.CodecNone, "none": store.CodecNone, "LZ4": store.CodecLZ4, "zstd": store.CodecZSTD} {
		got, err := store.ParseCodec(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := store.ParseCodec("brotli")
	assert.Error(t, err)
}
