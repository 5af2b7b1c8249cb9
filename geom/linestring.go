package geom

// LineString is an ordered sequence of points forming a polyline. A valid
// linestring has at least two points. Consecutive duplicate points are
// allowed, they simply contribute zero-length edges.
type LineString []Point

// Length returns the arc length of the linestring.
func (l LineString) Length() float64 {
	length := 0.0
	for i := 1; i < len(l); i++ {
		length += l[i-1].Distance(l[i])
	}
	return length
}

// Centroid returns the length-weighted centroid: the sum over each edge of
// its midpoint scaled by its length, divided by the total length. When all
// points coincide the centroid degenerates to that point.
func (l LineString) Centroid() Point {
	var sumX, sumY, total float64
	for i := 1; i < len(l); i++ {
		mid := interpolate(l[i-1], l[i], 0.5)
		length := l[i-1].Distance(l[i])
		sumX += mid.X * length
		sumY += mid.Y * length
		total += length
	}
	if total == 0 {
		if len(l) == 0 {
			return Point{}
		}
		return l[0]
	}
	return Point{X: sumX / total, Y: sumY / total}
}

func (l LineString) Equal(other LineString) bool {
	if len(l) != len(other) {
		return false
	}
	for i, p := range l {
		if p != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no memory with the original.
func (l LineString) Clone() LineString {
	if l == nil {
		return nil
	}
	out := make(LineString, len(l))
	copy(out, l)
	return out
}
