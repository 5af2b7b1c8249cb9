package osm2pgsql

import (
	"github.com/omniscale/imposm3/element"

	"github.com/asciibeats/osm2pgsql/geom"
)

// CreateLineString builds a linestring geometry from the node references of
// a way, in order. Construction is all-or-nothing: when any node fails to
// resolve, or fewer than two points are collected, the null geometry is
// returned and the caller must check for it. Consecutive duplicate
// coordinates are kept as-is.
func CreateLineString(way *element.Way, locations LocationSource) geom.Geometry {
	line := make(geom.LineString, 0, len(way.Refs))
	for _, ref := range way.Refs {
		pt, ok := locations.Location(ref)
		if !ok {
			return geom.NullGeometry()
		}
		line = append(line, pt)
	}

	if len(line) < 2 {
		return geom.NullGeometry()
	}
	return geom.FromLineString(line)
}

// CreateMultiLineString builds a multilinestring from several node
// reference sequences, typically the member ways of a route relation.
// Sequences sharing an endpoint are merged into continuous lines first.
// Unlike CreateLineString this skips sequences that fail to resolve or end
// up too short, keeping whatever can be built. When nothing survives the
// null geometry is returned.
func CreateMultiLineString(refSets [][]int64, locations LocationSource) geom.Geometry {
	var multi geom.MultiLineString
	for _, refs := range MergeRefs(refSets) {
		line := make(geom.LineString, 0, len(refs))
		for _, ref := range refs {
			pt, ok := locations.Location(ref)
			if !ok {
				line = nil
				break
			}
			line = append(line, pt)
		}

		if len(line) < 2 {
			continue
		}
		multi = append(multi, line)
	}

	if len(multi) == 0 {
		return geom.NullGeometry()
	}
	return geom.FromMultiLineString(multi)
}
