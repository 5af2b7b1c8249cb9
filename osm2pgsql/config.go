package osm2pgsql

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

type ExportConfig struct {
	Layers map[string]*Layer `yaml:"layers"`
}

// Layer selects ways by tag and controls how their geometries are re-noded.
type Layer struct {
	// Select elements carrying this tag key. When Value is set the tag
	// value has to match as well.
	Key   string `yaml:"key"`
	Value string `yaml:"value"`

	// Split linestrings into pieces of at most this length, in the unit
	// of the input coordinates. Zero disables splitting.
	MaxLength float64 `yaml:"max_length"`

	// Also build multilinestrings from matching route relations.
	Relations bool `yaml:"relations"`
}

func LoadConfig(configPath string) (*ExportConfig, error) {
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := &ExportConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	for name, layer := range config.Layers {
		if layer.Key == "" {
			return nil, fmt.Errorf("Layer %s has no tag key", name)
		}
		if layer.MaxLength < 0 {
			return nil, fmt.Errorf("Layer %s has a negative max_length", name)
		}
	}

	return config, nil
}

// Matches reports whether the layer selects an element with the given tags.
func (l *Layer) Matches(tags map[string]string) bool {
	v, ok := tags[l.Key]
	if !ok {
		return false
	}
	return l.Value == "" || l.Value == v
}
