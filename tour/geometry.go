package tour

import "math"

func (v Vec) sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Dot returns the dot product a·b.
func Dot(a, b Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 2D cross product a×b.
func Cross(a, b Vec) float64 {
	return a.X*b.Y - b.X*a.Y
}

// Direction returns the unit vector pointing from b to a.
// a and b must differ.
func Direction(a, b Vec) Vec {
	d := a.sub(b)
	l := math.Hypot(d.X, d.Y)

	return Vec{X: d.X / l, Y: d.Y / l}
}

// Angle returns the turn angle between unit vectors a and b in [0, 2π):
// continuing straight is π, a left turn is above π, a right turn below it,
// and reversing onto a is 0.
func Angle(a, b Vec) float64 {
	angle := math.Atan2(Cross(a, b), Dot(a, b)) + math.Pi
	if 2*math.Pi-angle < reverseEps {
		return 0
	}

	return angle
}

// SegmentsIntersect reports whether segments ab and cd share at least one point.
// Collinear segments intersect when their bounding boxes overlap; parallel
// non-collinear segments never do.
func SegmentsIntersect(a, b, c, d Vec) bool {
	r := b.sub(a)
	s := d.sub(c)
	qp := c.sub(a)
	rxs := Cross(r, s)
	if rxs == 0 {
		if Cross(qp, r) != 0 {
			return false
		}
		return math.Min(a.X, b.X) <= math.Max(c.X, d.X) &&
			math.Min(c.X, d.X) <= math.Max(a.X, b.X) &&
			math.Min(a.Y, b.Y) <= math.Max(c.Y, d.Y) &&
			math.Min(c.Y, d.Y) <= math.Max(a.Y, b.Y)
	}
	t := Cross(qp, s) / rxs
	u := Cross(qp, r) / rxs

	return 0 <= t && t <= 1 && 0 <= u && u <= 1
}

// Length returns the length of the closed route through path.
func Length(path []Vec) float64 {
	if len(path) < 2 {
		return 0
	}
	var total float64
	for i := range path {
		d := path[(i+1)%len(path)].sub(path[i])
		total += math.Hypot(d.X, d.Y)
	}

	return total
}
