package tour_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApproximate_Small: fewer than three distinct points come back unchanged.
func TestApproximate_Small(t *testing.T) {
	res, err := tour.Approximate(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.Order)

	res, err = tour.Approximate([]tour.Vec{{X: 1, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, []tour.Vec{{X: 1, Y: 2}}, res.Path)
	assert.Equal(t, []int{0}, res.Order)

	res, err = tour.Approximate([]tour.Vec{{0, 0}, {1, 1}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []tour.Vec{{0, 0}, {1, 1}}, res.Path)
}

// TestApproximate_Duplicates: repeated points, exact or after scaling, collapse to the first.
func TestApproximate_Duplicates(t *testing.T) {
	res, err := tour.Approximate([]tour.Vec{{0, 0}, {0, 0}, {1, 1}, {1.001, 1.004}})
	require.NoError(t, err)
	assert.Equal(t, []tour.Vec{{0, 0}, {1, 1}}, res.Path)
	assert.Equal(t, []int{0, 2}, res.Order)
}

// TestApproximate_Square traces the walk on a unit square.
//
// The tree is (0,1), (0,3), (1,2); the walk starts at leaf 2 and goes 2→1→0→3.
func TestApproximate_Square(t *testing.T) {
	points := []tour.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	res, err := tour.Approximate(points)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0, 3}, res.Order)
	assert.Equal(t, []tour.Vec{{1, 1}, {1, 0}, {0, 0}, {0, 1}}, res.Path)
	assert.InDelta(t, 4.0, tour.Length(res.Path), 1e-9)
}

// TestApproximate_VisitsEveryPoint checks the route invariants on random inputs.
func TestApproximate_VisitsEveryPoint(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 3; n <= 30; n++ {
		points := make([]tour.Vec, n)
		for i := range points {
			points[i] = tour.Vec{X: r.Float64()*200 - 100, Y: r.Float64()*200 - 100}
		}

		res, err := tour.Approximate(points)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, res.Path, n)
		require.NoError(t, tour.ValidateOrder(res.Order, n))
		for k, idx := range res.Order {
			assert.InDelta(t, points[idx].X, res.Path[k].X, 0.01)
			assert.InDelta(t, points[idx].Y, res.Path[k].Y, 0.01)
		}
	}
}

// TestApproximate_Errors covers input and option validation.
func TestApproximate_Errors(t *testing.T) {
	_, err := tour.Approximate([]tour.Vec{{math.NaN(), 0}})
	assert.ErrorIs(t, err, tour.ErrNonFinite)

	_, err = tour.Approximate([]tour.Vec{{0, math.Inf(1)}})
	assert.ErrorIs(t, err, tour.ErrNonFinite)

	_, err = tour.Approximate([]tour.Vec{{1e9, 0}})
	assert.ErrorIs(t, err, tour.ErrOutOfRange)

	_, err = tour.Approximate([]tour.Vec{{0, 0}}, tour.WithScale(0))
	assert.ErrorIs(t, err, tour.ErrBadScale)

	_, err = tour.Approximate([]tour.Vec{{0, 0}, {1, 0}, {2, 0}}, tour.WithMaxPoints(2))
	assert.ErrorIs(t, err, mst.ErrResourceExhausted)
}

// TestApproximate_Scale: a coarser grid merges nearby points.
func TestApproximate_Scale(t *testing.T) {
	points := []tour.Vec{{0, 0}, {0.4, 0}, {3, 0}, {3, 3}}

	res, err := tour.Approximate(points, tour.WithScale(1))
	require.NoError(t, err)
	assert.Len(t, res.Path, 3)
	assert.NotContains(t, res.Order, 1)
}

// TestUncross swaps the endpoints of the single crossing pair.
func TestUncross(t *testing.T) {
	path := []tour.Vec{{-1, -1}, {0, 0}, {2, 2}, {2, 0}, {0, 2}}
	order := []int{0, 1, 2, 3, 4}

	tour.Uncross(path, order)
	assert.Equal(t, []tour.Vec{{-1, -1}, {0, 0}, {2, 0}, {2, 2}, {0, 2}}, path)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, order)

	// Already clean paths and nil orders are left alone.
	clean := []tour.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tour.Uncross(clean, nil)
	assert.Equal(t, []tour.Vec{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, clean)
}

// TestValidateOrder rejects repeats and out-of-range entries.
func TestValidateOrder(t *testing.T) {
	assert.NoError(t, tour.ValidateOrder([]int{2, 0}, 3))
	assert.NoError(t, tour.ValidateOrder(nil, 0))
	assert.ErrorIs(t, tour.ValidateOrder([]int{0, 0}, 3), tour.ErrInvalidOrder)
	assert.ErrorIs(t, tour.ValidateOrder([]int{3}, 3), tour.ErrInvalidOrder)
	assert.ErrorIs(t, tour.ValidateOrder([]int{-1}, 3), tour.ErrInvalidOrder)
	assert.ErrorIs(t, tour.ValidateOrder([]int{0, 1, 2}, 2), tour.ErrInvalidOrder)
}
