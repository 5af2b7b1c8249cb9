package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/kr/pretty"

	"github.com/asciibeats/osm2pgsql/osm2pgsql"
)

type CmdGet struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("get",
		"Get items",
		"Get items from a PBF extract",
		&CmdGet{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd CmdGet) Usage() string {
	return "data.osm.pbf [node|way|geometry] id"
}

func (cmd CmdGet) Execute(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("Options missing, Usage: %s", cmd.Usage())
	}

	importer, err := osm2pgsql.ImportPBF(args[0], false)
	if err != nil {
		return fmt.Errorf("Failed to import: %s\n", err.Error())
	}

	id, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return err
	}

	switch args[1] {
	case "node":
		location, ok := importer.Locations.Location(id)
		if !ok {
			return fmt.Errorf("Unknown node: %d", id)
		}

		fmt.Printf("%# v\n", pretty.Formatter(location))
	case "way":
		way, ok := importer.Way(id)
		if !ok {
			return fmt.Errorf("Unknown way: %d", id)
		}

		fmt.Printf("%# v\n", pretty.Formatter(way))
	case "geometry":
		way, ok := importer.Way(id)
		if !ok {
			return fmt.Errorf("Unknown way: %d", id)
		}

		geometry := osm2pgsql.CreateLineString(way, importer.Locations)
		if geometry.IsNull() {
			return fmt.Errorf("No geometry for way: %d", id)
		}

		f, err := osm2pgsql.FeatureFromWay(way, geometry)
		if err != nil {
			return err
		}

		b, err := json.Marshal(f)
		if err != nil {
			return err
		}
		os.Stdout.Write(b)
		os.Stdout.WriteString("\n")
	default:
		return fmt.Errorf("Unknown type %s, Usage: %s", args[1], cmd.Usage())
	}

	return nil
}
