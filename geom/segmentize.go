package geom

import (
	"fmt"
	"math"
)

// Segmentize splits a linestring (or each member of a multilinestring) into
// consecutive pieces of at most maxLength, interpolating new vertices
// exactly on the original edges. The result is always a multilinestring,
// even when no split happens. Members of a multilinestring are split
// independently, each starting again at arc length zero.
//
// Segmentize panics when g is neither a linestring nor a multilinestring,
// or when maxLength is not strictly positive. Both are contract violations
// by the caller, not data errors.
func Segmentize(g Geometry, maxLength float64) Geometry {
	if maxLength <= 0 {
		panic(fmt.Sprintf("geom: segmentize needs a positive maximum length, got %v", maxLength))
	}

	var out MultiLineString
	switch {
	case g.IsLineString():
		out = splitLineString(g.LineString(), maxLength, out)
	case g.IsMultiLineString():
		for _, line := range g.MultiLineString() {
			out = splitLineString(line, maxLength, out)
		}
	default:
		panic("geom: segmentize needs a linestring or multilinestring")
	}
	return FromMultiLineString(out)
}

// splitLineString walks the vertices of a single line, carrying the arc
// length traveled so far and the piece currently being built. Whenever an
// edge crosses the next multiple of maxLength the crossing point is
// interpolated, the current piece is closed there and a new one starts at
// the same point.
func splitLineString(line LineString, maxLength float64, out MultiLineString) MultiLineString {
	prev := line[0]
	seg := LineString{prev}
	dist := 0.0

	for _, pt := range line[1:] {
		delta := prev.Distance(pt)
		if dist+delta > maxLength {
			// A long edge can cross several thresholds at once.
			splits := int(math.Floor((dist + delta) / maxLength))

			var cut Point
			for n := 0; n < splits; n++ {
				frac := (float64(n+1)*maxLength - dist) / delta
				cut = interpolate(prev, pt, frac)
				if frac != 0 {
					seg = append(seg, cut)
				}
				out = append(out, seg)
				seg = LineString{cut}
			}

			if cut == pt {
				// The last cut landed exactly on this vertex, the new
				// piece already starts with it.
				prev = pt
				dist = 0
				continue
			}
			dist = cut.Distance(pt)
		} else {
			dist += delta
		}

		seg = append(seg, pt)
		prev = pt
	}

	// Whatever remains after the last cut. A single point means the line
	// ended exactly on a threshold, no degenerate piece is emitted then.
	if len(seg) > 1 {
		out = append(out, seg)
	}
	return out
}
