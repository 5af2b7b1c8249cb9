package osm2pgsql

import (
	"fmt"

	"github.com/omniscale/imposm3/element"
	geojson "github.com/paulmach/go.geojson"

	"github.com/asciibeats/osm2pgsql/geom"
)

// GeometryToGeoJSON converts a geometry value into its GeoJSON counterpart.
// The null geometry has no GeoJSON representation and yields an error.
func GeometryToGeoJSON(g geom.Geometry) (*geojson.Geometry, error) {
	switch {
	case g.IsPoint():
		p := g.Point()
		return geojson.NewPointGeometry([]float64{p.X, p.Y}), nil
	case g.IsLineString():
		return geojson.NewLineStringGeometry(lineCoords(g.LineString())), nil
	case g.IsMultiLineString():
		multi := g.MultiLineString()
		lines := make([][][]float64, len(multi))
		for i, line := range multi {
			lines[i] = lineCoords(line)
		}
		return geojson.NewMultiLineStringGeometry(lines...), nil
	default:
		return nil, fmt.Errorf("Cannot represent %s geometry as GeoJSON", g.GeometryType())
	}
}

// GeometryFromGeoJSON converts a GeoJSON point, linestring or
// multilinestring back into a geometry value.
func GeometryFromGeoJSON(in *geojson.Geometry) (geom.Geometry, error) {
	switch in.Type {
	case geojson.GeometryPoint:
		pt, err := toPoint(in.Point)
		if err != nil {
			return geom.NullGeometry(), err
		}
		return geom.FromPoint(pt), nil
	case geojson.GeometryLineString:
		line, err := toLine(in.LineString)
		if err != nil {
			return geom.NullGeometry(), err
		}
		return geom.FromLineString(line), nil
	case geojson.GeometryMultiLineString:
		multi := make(geom.MultiLineString, 0, len(in.MultiLineString))
		for _, coords := range in.MultiLineString {
			line, err := toLine(coords)
			if err != nil {
				return geom.NullGeometry(), err
			}
			multi = append(multi, line)
		}
		return geom.FromMultiLineString(multi), nil
	default:
		return geom.NullGeometry(), fmt.Errorf("Unknown geometry type: %v", in.Type)
	}
}

func lineCoords(line geom.LineString) [][]float64 {
	coords := make([][]float64, len(line))
	for i, p := range line {
		coords[i] = []float64{p.X, p.Y}
	}
	return coords
}

func toPoint(coords []float64) (geom.Point, error) {
	if len(coords) < 2 {
		return geom.Point{}, fmt.Errorf("Bad coordinates: %v", coords)
	}
	return geom.Point{X: coords[0], Y: coords[1]}, nil
}

func toLine(coords [][]float64) (geom.LineString, error) {
	line := make(geom.LineString, 0, len(coords))
	for _, c := range coords {
		pt, err := toPoint(c)
		if err != nil {
			return nil, err
		}
		line = append(line, pt)
	}
	return line, nil
}

// FeatureFromWay wraps a built geometry into a GeoJSON feature carrying the
// id and tags of the way it came from.
func FeatureFromWay(way *element.Way, g geom.Geometry) (*geojson.Feature, error) {
	geometry, err := GeometryToGeoJSON(g)
	if err != nil {
		return nil, err
	}

	f := geojson.NewFeature(geometry)
	f.ID = way.Id
	for k, v := range way.Tags {
		f.SetProperty(k, v)
	}
	return f, nil
}

// FeatureFromRelation wraps a built geometry into a GeoJSON feature
// carrying the id and tags of the relation it came from.
func FeatureFromRelation(rel *element.Relation, g geom.Geometry) (*geojson.Feature, error) {
	geometry, err := GeometryToGeoJSON(g)
	if err != nil {
		return nil, err
	}

	f := geojson.NewFeature(geometry)
	f.ID = rel.Id
	for k, v := range rel.Tags {
		f.SetProperty(k, v)
	}
	return f, nil
}
