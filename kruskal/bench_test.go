package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/minspan/kruskal"
	"github.com/katalvlaran/minspan/mst"
)

func BenchmarkKruskal(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	points := make([]mst.Point, 500)
	for i := range points {
		points[i] = mst.Point{X: int32(r.Intn(10000)), Y: int32(r.Intn(10000))}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = kruskal.Kruskal(points)
	}
}
