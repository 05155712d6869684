package tour_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/minspan/tour"
	"github.com/stretchr/testify/assert"
)

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d tour.Vec
		want       bool
	}{
		{"crossing", tour.Vec{0, 0}, tour.Vec{2, 2}, tour.Vec{0, 2}, tour.Vec{2, 0}, true},
		{"disjoint", tour.Vec{0, 0}, tour.Vec{1, 0}, tour.Vec{0, 1}, tour.Vec{1, 2}, false},
		{"parallel", tour.Vec{0, 0}, tour.Vec{1, 0}, tour.Vec{0, 1}, tour.Vec{1, 1}, false},
		{"collinear overlap", tour.Vec{0, 0}, tour.Vec{2, 0}, tour.Vec{1, 0}, tour.Vec{3, 0}, true},
		{"collinear apart", tour.Vec{0, 0}, tour.Vec{1, 0}, tour.Vec{2, 0}, tour.Vec{3, 0}, false},
		{"touching", tour.Vec{0, 0}, tour.Vec{2, 0}, tour.Vec{1, 0}, tour.Vec{1, 5}, true},
		{"short of touching", tour.Vec{0, 0}, tour.Vec{2, 0}, tour.Vec{1, 1}, tour.Vec{1, 5}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tour.SegmentsIntersect(tc.a, tc.b, tc.c, tc.d))
			assert.Equal(t, tc.want, tour.SegmentsIntersect(tc.c, tc.d, tc.a, tc.b))
		})
	}
}

func TestAngle(t *testing.T) {
	east := tour.Vec{X: 1}
	assert.InDelta(t, math.Pi, tour.Angle(east, east), 1e-12)
	assert.InDelta(t, 1.5*math.Pi, tour.Angle(east, tour.Vec{Y: 1}), 1e-12)
	assert.InDelta(t, 0.5*math.Pi, tour.Angle(east, tour.Vec{Y: -1}), 1e-12)
	assert.Zero(t, tour.Angle(east, tour.Vec{X: -1}))
}

func TestDirectionAndLength(t *testing.T) {
	d := tour.Direction(tour.Vec{X: 3, Y: 4}, tour.Vec{})
	assert.InDelta(t, 0.6, d.X, 1e-12)
	assert.InDelta(t, 0.8, d.Y, 1e-12)

	assert.Zero(t, tour.Length(nil))
	assert.Zero(t, tour.Length([]tour.Vec{{1, 1}}))
	assert.InDelta(t, 10.0, tour.Length([]tour.Vec{{0, 0}, {5, 0}}), 1e-12)
}
