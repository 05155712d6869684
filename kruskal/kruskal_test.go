package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/minspan/kruskal"
	"github.com/katalvlaran/minspan/mst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line is (0,0), (10,0), (5,0): both short edges weigh 25, the long one 100.
var line = []mst.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 0}}

func TestKruskal_Trivial(t *testing.T) {
	for _, pts := range [][]mst.Point{nil, {{X: 3, Y: 3}}} {
		edges, total, err := kruskal.Kruskal(pts)
		require.NoError(t, err)
		assert.Empty(t, edges)
		assert.NotNil(t, edges)
		assert.Zero(t, total)
	}
}

func TestKruskal_Line(t *testing.T) {
	edges, total, err := kruskal.Kruskal(line)
	require.NoError(t, err)
	assert.Equal(t, []mst.Edge{{From: 0, To: 2}, {From: 1, To: 2}}, edges)
	assert.EqualValues(t, 50, total)
}

// TestKruskal_WideCoordinates: weights beyond int32 are summed exactly.
func TestKruskal_WideCoordinates(t *testing.T) {
	pts := []mst.Point{{X: -1 << 30, Y: 0}, {X: 1 << 30, Y: 0}}
	_, total, err := kruskal.Kruskal(pts)
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, total)
}

func TestSpans(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []mst.Edge
		want  bool
	}{
		{"Empty", 0, nil, true},
		{"Single", 1, nil, true},
		{"SingleWithEdge", 1, []mst.Edge{{From: 0, To: 0}}, false},
		{"Path", 3, []mst.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, true},
		{"Star", 4, []mst.Edge{{From: 3, To: 0}, {From: 3, To: 1}, {From: 3, To: 2}}, true},
		{"Cycle", 3, []mst.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, false},
		{"Short", 3, []mst.Edge{{From: 0, To: 1}}, false},
		{"OutOfRange", 3, []mst.Edge{{From: 0, To: 1}, {From: 1, To: 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, kruskal.Spans(tc.n, tc.edges))
		})
	}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name  string
		edges []mst.Edge
		want  error
	}{
		{"Minimal", []mst.Edge{{From: 0, To: 2}, {From: 1, To: 2}}, nil},
		{"MinimalReversed", []mst.Edge{{From: 2, To: 1}, {From: 2, To: 0}}, nil},
		{"Count", []mst.Edge{{From: 0, To: 2}}, kruskal.ErrEdgeCount},
		{"OutOfRange", []mst.Edge{{From: 0, To: 5}, {From: 1, To: 2}}, kruskal.ErrEdgeOutOfRange},
		{"Negative", []mst.Edge{{From: -1, To: 0}, {From: 1, To: 2}}, kruskal.ErrEdgeOutOfRange},
		{"SelfLoop", []mst.Edge{{From: 0, To: 0}, {From: 1, To: 2}}, kruskal.ErrSelfLoop},
		{"Cycle", []mst.Edge{{From: 0, To: 2}, {From: 2, To: 0}}, kruskal.ErrNotSpanning},
		{"Heavy", []mst.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, kruskal.ErrNotMinimal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := kruskal.Verify(line, tc.edges)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_Trivial(t *testing.T) {
	assert.NoError(t, kruskal.Verify(nil, nil))
	assert.NoError(t, kruskal.Verify([]mst.Point{{X: 1, Y: 1}}, []mst.Edge{}))
	assert.ErrorIs(t, kruskal.Verify([]mst.Point{{X: 1, Y: 1}}, []mst.Edge{{From: 0, To: 0}}), kruskal.ErrEdgeCount)
}

// TestKruskal_MatchesBuild: both algorithms agree on total weight for random inputs.
func TestKruskal_MatchesBuild(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 2; n <= 30; n++ {
		pts := make([]mst.Point, n)
		for i := range pts {
			pts[i] = mst.Point{X: int32(r.Intn(200) - 100), Y: int32(r.Intn(200) - 100)}
		}

		edges, total, err := kruskal.Kruskal(pts)
		require.NoError(t, err)
		require.NoError(t, kruskal.Verify(pts, edges))

		built, err := mst.Build(pts)
		require.NoError(t, err)
		assert.Equal(t, total, mst.Weight(pts, built), "n=%d", n)
	}
}
