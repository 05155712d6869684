package tour_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/minspan/tour"
)

// BenchmarkApproximate is dominated by the cubic tree build.
func BenchmarkApproximate(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	points := make([]tour.Vec, 150)
	for i := range points {
		points[i] = tour.Vec{X: r.Float64() * 100, Y: r.Float64() * 100}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tour.Approximate(points)
	}
}
