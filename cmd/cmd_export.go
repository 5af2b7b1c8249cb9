package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path"

	"github.com/cheggaaa/pb"
	"github.com/omniscale/imposm3/element"
	geojson "github.com/paulmach/go.geojson"

	"github.com/asciibeats/osm2pgsql/osm2pgsql"
)

type CmdExport struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("export",
		"Export line layers",
		"Build, split and export line layers from a PBF extract",
		&CmdExport{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdExport) Usage() string {
	return "config.yaml data.osm.pbf outputpath"
}

func (cmd CmdExport) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	config, err := osm2pgsql.LoadConfig(args[0])
	if err != nil {
		return fmt.Errorf("Failed to load config: %s\n", err.Error())
	}

	importer, err := osm2pgsql.ImportPBF(args[1], !cmd.global.Quiet)
	if err != nil {
		return fmt.Errorf("Failed to import: %s\n", err.Error())
	}

	err = os.MkdirAll(args[2], 0755)
	if err != nil {
		return err
	}

	bar := pb.New(len(config.Layers))
	if !cmd.global.Quiet {
		bar.Start()
	}

	for name, layer := range config.Layers {
		l := layer

		pipeline := osm2pgsql.NewLinePipeline(importer).
			MaxLength(l.MaxLength).
			Filter(func(way *element.Way) bool {
				return l.Matches(way.Tags)
			})

		features, err := pipeline.Run()
		if err != nil {
			return fmt.Errorf("Failed to process layer %s: %s\n", name, err.Error())
		}

		collection := geojson.NewFeatureCollection()
		for _, f := range features {
			collection.AddFeature(f)
		}

		if l.Relations {
			relFeatures, err := pipeline.RunRelations(func(rel *element.Relation) bool {
				return l.Matches(rel.Tags)
			})
			if err != nil {
				return fmt.Errorf("Failed to process layer %s: %s\n", name, err.Error())
			}
			for _, f := range relFeatures {
				collection.AddFeature(f)
			}
		}

		b, err := json.Marshal(collection)
		if err != nil {
			return err
		}

		err = ioutil.WriteFile(path.Join(args[2], name+".geojson"), b, 0644)
		if err != nil {
			return err
		}

		bar.Increment()
	}

	if !cmd.global.Quiet {
		bar.Finish()
	}

	return nil
}
