package geom

import "math"

// Point is a coordinate on a flat 2D plane.
type Point struct {
	X float64
	Y float64
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// interpolate returns the point at the given fraction along the edge from a
// to b. The endpoints are returned unchanged for fractions 0 and 1, so a cut
// that lands on a vertex reproduces that vertex exactly.
func interpolate(a, b Point, frac float64) Point {
	switch frac {
	case 0:
		return a
	case 1:
		return b
	}
	return Point{
		X: a.X + frac*(b.X-a.X),
		Y: a.Y + frac*(b.Y-a.Y),
	}
}
