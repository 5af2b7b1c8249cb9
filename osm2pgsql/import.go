package osm2pgsql

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/omniscale/imposm3/element"
	"github.com/omniscale/imposm3/parser/pbf"
)

// Importer reads a PBF extract into memory: node locations go into a
// LocationCache, ways and relations into plain slices. Everything stays
// read-only once Run has finished.
type Importer struct {
	Parser   *pbf.Parser
	Progress bool

	Locations *LocationCache
	Ways      []element.Way
	Relations []element.Relation

	waysByID map[int64]int

	started time.Time
	done    chan struct{}
	wg      sync.WaitGroup
	pwg     sync.WaitGroup

	nodeCount     int64
	wayCount      int64
	relationCount int64

	coords    chan []element.Node
	nodes     chan []element.Node
	ways      chan []element.Way
	relations chan []element.Relation
}

// ImportPBF reads a full PBF extract into memory.
func ImportPBF(filename string, progress bool) (*Importer, error) {
	parser, err := pbf.NewParser(filename)
	if err != nil {
		return nil, err
	}

	i := &Importer{
		Parser:    parser,
		Progress:  progress,
		Locations: NewLocationCache(),
	}
	i.Run()
	return i, nil
}

func (i *Importer) Run() {
	i.coords = make(chan []element.Node, 1000)
	i.nodes = make(chan []element.Node, 1000)
	i.ways = make(chan []element.Way, 1000)
	i.relations = make(chan []element.Relation, 1000)
	i.done = make(chan struct{})

	i.wg.Add(3)
	i.pwg.Add(1)
	i.started = time.Now()

	go i.importNodes()
	go i.importWays()
	go i.importRelations()
	go i.startParser()
	go i.updateProgress()

	i.wg.Wait()
	close(i.done)
	i.pwg.Wait()

	i.indexWays()
}

func (i *Importer) indexWays() {
	i.waysByID = make(map[int64]int, len(i.Ways))
	for idx := range i.Ways {
		i.waysByID[i.Ways[idx].Id] = idx
	}
}

// Way returns an imported way by id.
func (i *Importer) Way(id int64) (*element.Way, bool) {
	idx, ok := i.waysByID[id]
	if !ok {
		return nil, false
	}
	return &i.Ways[idx], true
}

func (i *Importer) startParser() {
	i.Parser.Parse(i.coords, i.nodes, i.ways, i.relations)
}

func (i *Importer) importNodes() {
	defer i.wg.Done()
	nodeChan := i.nodes
	coordChan := i.coords

	for nodeChan != nil || coordChan != nil {
		var el []element.Node
		select {
		case arr, ok := <-coordChan:
			if !ok {
				coordChan = nil
				continue
			}
			el = arr
		case arr, ok := <-nodeChan:
			if !ok {
				nodeChan = nil
				continue
			}
			el = arr
		}

		i.Locations.AddNodes(el)
		atomic.AddInt64(&i.nodeCount, int64(len(el)))
	}
}

func (i *Importer) importWays() {
	defer i.wg.Done()

	for {
		arr, ok := <-i.ways
		if !ok {
			break
		}

		i.Ways = append(i.Ways, arr...)
		atomic.AddInt64(&i.wayCount, int64(len(arr)))
	}
}

func (i *Importer) importRelations() {
	defer i.wg.Done()

	for {
		arr, ok := <-i.relations
		if !ok {
			break
		}

		i.Relations = append(i.Relations, arr...)
		atomic.AddInt64(&i.relationCount, int64(len(arr)))
	}
}

func (i *Importer) updateProgress() {
	defer i.pwg.Done()

	tick := time.NewTicker(10 * time.Second)
	defer tick.Stop()

	update := func() {
		if !i.Progress {
			return
		}
		elapsed := time.Duration(time.Now().Sub(i.started).Seconds()) * time.Second
		fmt.Printf("\r[N: %12d] [W: %12d] [R: %12d] %s",
			atomic.LoadInt64(&i.nodeCount),
			atomic.LoadInt64(&i.wayCount),
			atomic.LoadInt64(&i.relationCount),
			elapsed)
	}

	for {
		update()
		select {
		case <-i.done:
			update()
			if i.Progress {
				fmt.Println()
			}
			return
		case <-tick.C:
		}
	}
}
