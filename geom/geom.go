// Package geom holds the geometry value model: points, linestrings and
// multilinestrings wrapped in a tagged Geometry union, plus the segmentize
// algorithm that re-nodes lines into bounded-length pieces.
//
// All values are plain in-memory data, immutable by convention. Operations
// never retain references into their inputs, so distinct values can be used
// from multiple goroutines without locking.
package geom

type geometryType int

const (
	nullGeometry geometryType = iota
	pointGeometry
	lineStringGeometry
	multiLineStringGeometry
)

// Geometry is a closed tagged union holding exactly one of: nothing (the
// null geometry), a Point, a LineString or a MultiLineString. The null
// geometry represents "could not be constructed" and is what the builder
// returns for invalid input.
//
// Accessing the payload of the wrong shape is a programming error and
// panics. Callers must check the tag first.
type Geometry struct {
	typ   geometryType
	point Point
	line  LineString
	multi MultiLineString
}

// NullGeometry returns the null geometry.
func NullGeometry() Geometry {
	return Geometry{}
}

func FromPoint(p Point) Geometry {
	return Geometry{typ: pointGeometry, point: p}
}

// FromLineString wraps a linestring. The geometry takes ownership of the
// slice, the caller must not modify it afterwards.
func FromLineString(l LineString) Geometry {
	return Geometry{typ: lineStringGeometry, line: l}
}

// FromMultiLineString wraps a multilinestring. The geometry takes ownership
// of the slice, the caller must not modify it afterwards.
func FromMultiLineString(m MultiLineString) Geometry {
	return Geometry{typ: multiLineStringGeometry, multi: m}
}

func (g Geometry) IsNull() bool            { return g.typ == nullGeometry }
func (g Geometry) IsPoint() bool           { return g.typ == pointGeometry }
func (g Geometry) IsLineString() bool      { return g.typ == lineStringGeometry }
func (g Geometry) IsMultiLineString() bool { return g.typ == multiLineStringGeometry }

// Point returns the point payload, panics when the geometry is not a point.
func (g Geometry) Point() Point {
	if g.typ != pointGeometry {
		panic("geom: geometry is not a point")
	}
	return g.point
}

// LineString returns the linestring payload, panics when the geometry is
// not a linestring.
func (g Geometry) LineString() LineString {
	if g.typ != lineStringGeometry {
		panic("geom: geometry is not a linestring")
	}
	return g.line
}

// MultiLineString returns the multilinestring payload, panics when the
// geometry is not a multilinestring.
func (g Geometry) MultiLineString() MultiLineString {
	if g.typ != multiLineStringGeometry {
		panic("geom: geometry is not a multilinestring")
	}
	return g.multi
}

// NumGeometries returns the number of parts: 0 for the null geometry, 1 for
// points and linestrings, the member count for multilinestrings.
func (g Geometry) NumGeometries() int {
	switch g.typ {
	case pointGeometry, lineStringGeometry:
		return 1
	case multiLineStringGeometry:
		return g.multi.NumGeometries()
	default:
		return 0
	}
}

// Area returns 0: none of the shapes in this model carry an area.
func (g Geometry) Area() float64 {
	return 0.0
}

// GeometryType returns the shape label: "NULL", "POINT", "LINESTRING" or
// "MULTILINESTRING". Labels are stable and can be compared exactly.
func (g Geometry) GeometryType() string {
	switch g.typ {
	case pointGeometry:
		return "POINT"
	case lineStringGeometry:
		return "LINESTRING"
	case multiLineStringGeometry:
		return "MULTILINESTRING"
	default:
		return "NULL"
	}
}

// Centroid returns a point geometry holding the length-weighted centroid.
// The centroid of a point is the point itself, the centroid of the null
// geometry is the null geometry.
func (g Geometry) Centroid() Geometry {
	switch g.typ {
	case pointGeometry:
		return FromPoint(g.point)
	case lineStringGeometry:
		return FromPoint(g.line.Centroid())
	case multiLineStringGeometry:
		return FromPoint(g.multi.Centroid())
	default:
		return NullGeometry()
	}
}

// Equal reports whether both geometries have the same tag and structurally
// equal payloads.
func (g Geometry) Equal(other Geometry) bool {
	if g.typ != other.typ {
		return false
	}
	switch g.typ {
	case pointGeometry:
		return g.point == other.point
	case lineStringGeometry:
		return g.line.Equal(other.line)
	case multiLineStringGeometry:
		return g.multi.Equal(other.multi)
	default:
		return true
	}
}
