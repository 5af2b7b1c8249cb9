package osm2pgsql

import (
	"testing"

	"github.com/cheekybits/is"
	"github.com/omniscale/imposm3/element"
	geojson "github.com/paulmach/go.geojson"

	"github.com/asciibeats/osm2pgsql/geom"
)

func TestGeoJSONRoundTripLineString(t *testing.T) {
	is := is.New(t)

	in := geom.FromLineString(geom.LineString{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 2}})

	encoded, err := GeometryToGeoJSON(in)
	is.NoErr(err)
	is.Equal(encoded.Type, geojson.GeometryLineString)

	out, err := GeometryFromGeoJSON(encoded)
	is.NoErr(err)
	is.True(in.Equal(out))
}

func TestGeoJSONRoundTripMultiLineString(t *testing.T) {
	is := is.New(t)

	in := geom.FromMultiLineString(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 0.5, Y: 0}},
		{{X: 0.5, Y: 0}, {X: 1, Y: 0}},
	})

	encoded, err := GeometryToGeoJSON(in)
	is.NoErr(err)
	is.Equal(encoded.Type, geojson.GeometryMultiLineString)

	out, err := GeometryFromGeoJSON(encoded)
	is.NoErr(err)
	is.True(in.Equal(out))
}

func TestGeoJSONRoundTripPoint(t *testing.T) {
	is := is.New(t)

	in := geom.FromPoint(geom.Point{X: 17, Y: 42})

	encoded, err := GeometryToGeoJSON(in)
	is.NoErr(err)
	is.Equal(encoded.Type, geojson.GeometryPoint)

	out, err := GeometryFromGeoJSON(encoded)
	is.NoErr(err)
	is.True(in.Equal(out))
}

func TestGeoJSONNullGeometry(t *testing.T) {
	is := is.New(t)

	_, err := GeometryToGeoJSON(geom.NullGeometry())
	is.NotNil(err)
}

func TestGeoJSONUnsupportedShape(t *testing.T) {
	is := is.New(t)

	in := geojson.NewPolygonGeometry([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	_, err := GeometryFromGeoJSON(in)
	is.NotNil(err)
}

func TestFeatureFromWay(t *testing.T) {
	is := is.New(t)

	way := &element.Way{
		OSMElem: element.OSMElem{
			Id:   20,
			Tags: element.Tags{"highway": "residential"},
		},
		Refs: []int64{1, 2},
	}
	g := CreateLineString(way, testLocations())

	f, err := FeatureFromWay(way, g)
	is.NoErr(err)
	is.Equal(f.ID, int64(20))
	is.Equal(f.Properties["highway"], "residential")
	is.Equal(f.Geometry.Type, geojson.GeometryLineString)
}

func TestFeatureFromRelation(t *testing.T) {
	is := is.New(t)

	rel := &element.Relation{
		OSMElem: element.OSMElem{
			Id:   7,
			Tags: element.Tags{"type": "route", "route": "bus"},
		},
	}
	g := CreateMultiLineString([][]int64{{1, 2}, {2, 3}}, testLocations())

	f, err := FeatureFromRelation(rel, g)
	is.NoErr(err)
	is.Equal(f.ID, int64(7))
	is.Equal(f.Properties["route"], "bus")
	is.Equal(f.Geometry.Type, geojson.GeometryMultiLineString)
}
