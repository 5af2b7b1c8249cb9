package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	geojson "github.com/paulmach/go.geojson"

	"github.com/asciibeats/osm2pgsql/geom"
	"github.com/asciibeats/osm2pgsql/osm2pgsql"
)

type CmdSegmentize struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("segmentize",
		"Split a line geometry",
		"Split a GeoJSON line feature into pieces of bounded length",
		&CmdSegmentize{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdSegmentize) Usage() string {
	return "feature.geojson max_length"
}

func (cmd CmdSegmentize) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	maxLength, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	if maxLength <= 0 {
		return fmt.Errorf("max_length must be positive, got %s", args[1])
	}

	data, err := ioutil.ReadFile(args[0])
	if err != nil {
		return err
	}

	f, err := geojson.UnmarshalFeature(data)
	if err != nil {
		return fmt.Errorf("Failed to parse feature: %s\n", err.Error())
	}

	geometry, err := osm2pgsql.GeometryFromGeoJSON(f.Geometry)
	if err != nil {
		return err
	}
	if !geometry.IsLineString() && !geometry.IsMultiLineString() {
		return fmt.Errorf("Cannot segmentize %s geometry", geometry.GeometryType())
	}

	split, err := osm2pgsql.GeometryToGeoJSON(geom.Segmentize(geometry, maxLength))
	if err != nil {
		return err
	}

	out := geojson.NewFeature(split)
	out.ID = f.ID
	out.Properties = f.Properties

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	os.Stdout.Write(b)
	os.Stdout.WriteString("\n")

	return nil
}
