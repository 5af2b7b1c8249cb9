package main

import (
	"log"

	"github.com/asciibeats/osm2pgsql/cmd"
)

func main() {
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}
