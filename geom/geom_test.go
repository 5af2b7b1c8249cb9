package geom

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestNullGeometry(t *testing.T) {
	is := is.New(t)

	g := NullGeometry()
	is.True(g.IsNull())
	is.False(g.IsPoint())
	is.False(g.IsLineString())
	is.False(g.IsMultiLineString())

	is.Equal(g.NumGeometries(), 0)
	is.Equal(g.Area(), 0.0)
	is.Equal(g.GeometryType(), "NULL")
	is.True(g.Centroid().IsNull())
}

func TestPointGeometry(t *testing.T) {
	is := is.New(t)

	g := FromPoint(Point{X: 17, Y: 42})
	is.True(g.IsPoint())
	is.False(g.IsNull())

	is.Equal(g.NumGeometries(), 1)
	is.Equal(g.Area(), 0.0)
	is.Equal(g.GeometryType(), "POINT")
	is.Equal(g.Point(), Point{X: 17, Y: 42})
	is.True(g.Centroid().Equal(g))
}

func TestLineGeometry(t *testing.T) {
	is := is.New(t)

	g := FromLineString(LineString{{1, 1}, {2, 2}})
	is.True(g.IsLineString())
	is.False(g.IsNull())
	is.False(g.IsMultiLineString())

	is.Equal(g.NumGeometries(), 1)
	is.Equal(g.Area(), 0.0)
	is.Equal(g.GeometryType(), "LINESTRING")
	is.True(g.Centroid().Equal(FromPoint(Point{X: 1.5, Y: 1.5})))
}

func TestMultiLineGeometry(t *testing.T) {
	is := is.New(t)

	g := FromMultiLineString(MultiLineString{
		{{0, 0}, {1, 0}},
		{{2, 0}, {3, 0}},
		{{4, 0}, {5, 0}},
	})
	is.True(g.IsMultiLineString())

	is.Equal(g.NumGeometries(), 3)
	is.Equal(g.Area(), 0.0)
	is.Equal(g.GeometryType(), "MULTILINESTRING")
}

func TestGeometryEqual(t *testing.T) {
	is := is.New(t)

	line := FromLineString(LineString{{1, 1}, {2, 2}})
	same := FromLineString(LineString{{1, 1}, {2, 2}})
	other := FromLineString(LineString{{1, 1}, {2, 3}})

	is.True(line.Equal(same))
	is.False(line.Equal(other))
	is.False(line.Equal(NullGeometry()))
	is.False(line.Equal(FromPoint(Point{X: 1, Y: 1})))
	is.True(NullGeometry().Equal(NullGeometry()))

	shorter := FromLineString(LineString{{1, 1}})
	is.False(line.Equal(shorter))

	multi := FromMultiLineString(MultiLineString{{{1, 1}, {2, 2}}})
	is.False(line.Equal(multi))
	is.True(multi.Equal(FromMultiLineString(MultiLineString{{{1, 1}, {2, 2}}})))
}

func TestAccessorPanicsOnWrongTag(t *testing.T) {
	point := FromPoint(Point{X: 1, Y: 2})
	line := FromLineString(LineString{{0, 0}, {1, 0}})

	assertPanics(t, func() { point.LineString() })
	assertPanics(t, func() { point.MultiLineString() })
	assertPanics(t, func() { line.Point() })
	assertPanics(t, func() { NullGeometry().Point() })
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("Expected a panic")
		}
	}()
	f()
}
