// Package osm2pgsql turns raw OSM elements into validated line geometries:
// it resolves the node references of ways against a location source, builds
// linestrings and multilinestrings out of them and drives the re-noding and
// GeoJSON export of whole extracts.
package osm2pgsql

import (
	"github.com/omniscale/imposm3/element"

	"github.com/asciibeats/osm2pgsql/geom"
)

// LocationSource resolves a node reference to a coordinate. The second
// return value is false when no location is known for the node.
type LocationSource interface {
	Location(id int64) (geom.Point, bool)
}

// LocationCache keeps node locations in memory.
//
// Note that filling is not concurrency safe! Add all nodes prior to doing
// any lookups.
type LocationCache struct {
	locations map[int64]geom.Point
}

func NewLocationCache() *LocationCache {
	return &LocationCache{
		locations: make(map[int64]geom.Point),
	}
}

func (c *LocationCache) Set(id int64, p geom.Point) {
	c.locations[id] = p
}

// AddNodes stores the locations of a batch of nodes, as delivered by the
// PBF parser.
func (c *LocationCache) AddNodes(nodes []element.Node) {
	for _, n := range nodes {
		c.locations[n.Id] = geom.Point{X: n.Long, Y: n.Lat}
	}
}

func (c *LocationCache) Location(id int64) (geom.Point, bool) {
	p, ok := c.locations[id]
	return p, ok
}

func (c *LocationCache) Size() int {
	return len(c.locations)
}
