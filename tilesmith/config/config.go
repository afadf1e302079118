// Package config reads the optional compiler options file.  Command line
// flags take precedence over file values; anything left at zero falls
// back to the compiled-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File mirrors the YAML options file.
type File struct {
	TableOutput     string   `yaml:"table_output"`
	AtlasOutput     string   `yaml:"atlas_output"`
	TilesPerRow     int      `yaml:"tiles_per_row"`
	MaxTiles        int      `yaml:"max_tiles"`
	MaxCollectibles int      `yaml:"max_collectibles"`
	MetadataTag     string   `yaml:"metadata_tag"`
	Inputs          []string `yaml:"inputs"`
}

// Load reads and parses an options file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &f, nil
}
