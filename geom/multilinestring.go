package geom

// MultiLineString is an ordered collection of linestrings. The order of the
// members is significant: segmentize emits them in the order they occur
// along the input line.
type MultiLineString []LineString

// NumGeometries returns the number of member linestrings.
func (m MultiLineString) NumGeometries() int {
	return len(m)
}

// Length returns the summed arc length of all members.
func (m MultiLineString) Length() float64 {
	length := 0.0
	for _, l := range m {
		length += l.Length()
	}
	return length
}

// Centroid returns the length-weighted centroid over the edges of all
// members combined. Weighting by edge length rather than averaging member
// centroids keeps short members from counting as much as long ones.
func (m MultiLineString) Centroid() Point {
	var sumX, sumY, total float64
	for _, l := range m {
		for i := 1; i < len(l); i++ {
			mid := interpolate(l[i-1], l[i], 0.5)
			length := l[i-1].Distance(l[i])
			sumX += mid.X * length
			sumY += mid.Y * length
			total += length
		}
	}
	if total == 0 {
		for _, l := range m {
			if len(l) > 0 {
				return l[0]
			}
		}
		return Point{}
	}
	return Point{X: sumX / total, Y: sumY / total}
}

func (m MultiLineString) Equal(other MultiLineString) bool {
	if len(m) != len(other) {
		return false
	}
	for i, l := range m {
		if !l.Equal(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that shares no memory with the original.
func (m MultiLineString) Clone() MultiLineString {
	if m == nil {
		return nil
	}
	out := make(MultiLineString, len(m))
	for i, l := range m {
		out[i] = l.Clone()
	}
	return out
}
