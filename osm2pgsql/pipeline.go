package osm2pgsql

import (
	"runtime"
	"sync"

	"github.com/omniscale/imposm3/element"
	geojson "github.com/paulmach/go.geojson"
	"golang.org/x/sync/errgroup"

	"github.com/asciibeats/osm2pgsql/geom"
)

type WayFilterFunc func(way *element.Way) bool

// LinePipeline builds line geometries for all imported ways, optionally
// re-nodes them into bounded-length pieces and encodes them as GeoJSON
// features. Ways whose geometry cannot be constructed are skipped.
type LinePipeline struct {
	importer  *Importer
	maxLength float64
	accept    WayFilterFunc
}

func NewLinePipeline(i *Importer) *LinePipeline {
	return &LinePipeline{
		importer: i,
	}
}

// MaxLength splits every built linestring into pieces of at most the given
// length. Zero disables splitting.
func (p *LinePipeline) MaxLength(maxLength float64) *LinePipeline {
	p.maxLength = maxLength
	return p
}

func (p *LinePipeline) Filter(accept WayFilterFunc) *LinePipeline {
	p.accept = accept
	return p
}

func (p *LinePipeline) Run() ([]*geojson.Feature, error) {
	var g errgroup.Group

	ways := make(chan *element.Way, 100)
	features := make(chan *geojson.Feature, 100)

	g.Go(func() error {
		defer close(ways)
		for idx := range p.importer.Ways {
			ways <- &p.importer.Ways[idx]
		}
		return nil
	})

	workers := runtime.NumCPU()
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			defer wg.Done()
			for way := range ways {
				if p.accept != nil && !p.accept(way) {
					continue
				}

				geometry := CreateLineString(way, p.importer.Locations)
				if geometry.IsNull() {
					// Broken geometry, skip!
					continue
				}

				if p.maxLength > 0 {
					geometry = geom.Segmentize(geometry, p.maxLength)
				}

				f, err := FeatureFromWay(way, geometry)
				if err != nil {
					return err
				}
				features <- f
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(features)
		return nil
	})

	result := []*geojson.Feature{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for f := range features {
			result = append(result, f)
		}
	}()

	err := g.Wait()
	<-done
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RunRelations builds multilinestrings from the member ways of the
// relations accepted by the filter. Member ways that were not imported or
// do not resolve are skipped, relations without any usable member yield no
// feature.
func (p *LinePipeline) RunRelations(accept func(rel *element.Relation) bool) ([]*geojson.Feature, error) {
	result := []*geojson.Feature{}

	for idx := range p.importer.Relations {
		rel := &p.importer.Relations[idx]
		if accept != nil && !accept(rel) {
			continue
		}

		refSets := [][]int64{}
		for _, m := range rel.Members {
			if m.Type != element.WAY {
				continue
			}
			way, ok := p.importer.Way(m.Id)
			if !ok {
				continue
			}
			refSets = append(refSets, way.Refs)
		}

		geometry := CreateMultiLineString(refSets, p.importer.Locations)
		if geometry.IsNull() {
			continue
		}

		if p.maxLength > 0 {
			geometry = geom.Segmentize(geometry, p.maxLength)
		}

		f, err := FeatureFromRelation(rel, geometry)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}

	return result, nil
}
