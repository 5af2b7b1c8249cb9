package osm2pgsql

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/omniscale/imposm3/element"

	"github.com/asciibeats/osm2pgsql/geom"
)

func testLocations() *LocationCache {
	c := NewLocationCache()
	c.Set(1, geom.Point{X: 1, Y: 1})
	c.Set(2, geom.Point{X: 2, Y: 2})
	c.Set(3, geom.Point{X: 3, Y: 2})
	c.Set(4, geom.Point{X: 1, Y: 1})
	return c
}

func TestCreateLineString(t *testing.T) {
	is := is.New(t)

	way := &element.Way{
		OSMElem: element.OSMElem{Id: 20},
		Refs:    []int64{1, 2},
	}
	g := CreateLineString(way, testLocations())

	is.True(g.IsLineString())
	is.Equal(g.GeometryType(), "LINESTRING")
	is.Equal(g.NumGeometries(), 1)
	is.Equal(g.Area(), 0.0)
	is.True(g.LineString().Equal(geom.LineString{{X: 1, Y: 1}, {X: 2, Y: 2}}))
	is.True(g.Centroid().Equal(geom.FromPoint(geom.Point{X: 1.5, Y: 1.5})))
}

func TestCreateLineStringPreservesOrder(t *testing.T) {
	is := is.New(t)

	way := &element.Way{Refs: []int64{3, 1, 2}}
	g := CreateLineString(way, testLocations())

	is.True(g.LineString().Equal(geom.LineString{{X: 3, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 2}}))
}

func TestCreateLineStringKeepsDuplicates(t *testing.T) {
	is := is.New(t)

	// Nodes 1 and 4 share a location, the duplicate points stay.
	way := &element.Way{Refs: []int64{1, 4, 2}}
	g := CreateLineString(way, testLocations())

	is.True(g.LineString().Equal(geom.LineString{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}}))
}

func TestCreateLineStringWithoutLocations(t *testing.T) {
	is := is.New(t)

	// One unresolvable node invalidates the whole line.
	way := &element.Way{Refs: []int64{1, 99}}
	g := CreateLineString(way, testLocations())

	is.True(g.IsNull())
	is.Equal(g.NumGeometries(), 0)
}

func TestCreateLineStringTooShort(t *testing.T) {
	is := is.New(t)

	locations := testLocations()

	is.True(CreateLineString(&element.Way{Refs: []int64{1}}, locations).IsNull())
	is.True(CreateLineString(&element.Way{Refs: []int64{}}, locations).IsNull())
	is.True(CreateLineString(&element.Way{Refs: []int64{99}}, locations).IsNull())
}

func TestCreateMultiLineString(t *testing.T) {
	is := is.New(t)

	// The two sequences share node 2 and merge into one line.
	g := CreateMultiLineString([][]int64{{1, 2}, {2, 3}}, testLocations())

	is.True(g.IsMultiLineString())
	is.Equal(g.NumGeometries(), 1)
	is.True(g.MultiLineString()[0].Equal(geom.LineString{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}}))
}

func TestCreateMultiLineStringSkipsBrokenMembers(t *testing.T) {
	is := is.New(t)

	g := CreateMultiLineString([][]int64{{1, 2}, {3, 99}}, testLocations())

	is.True(g.IsMultiLineString())
	is.Equal(g.NumGeometries(), 1)
	is.True(g.MultiLineString()[0].Equal(geom.LineString{{X: 1, Y: 1}, {X: 2, Y: 2}}))
}

func TestCreateMultiLineStringEmpty(t *testing.T) {
	is := is.New(t)

	is.True(CreateMultiLineString(nil, testLocations()).IsNull())
	is.True(CreateMultiLineString([][]int64{{98, 99}}, testLocations()).IsNull())
	is.True(CreateMultiLineString([][]int64{{1}}, testLocations()).IsNull())
}
