// Package hnswconfig loads the hnswctl CLI's index tunables from an
// optional YAML file, so a build can be reproduced by committing one file
// instead of a long flag line.
package hnswconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the tunables hnsw.New and hnsw.Option accept.
type Config struct {
	M              int     `yaml:"m"`
	EfConstruction int     `yaml:"ef_construction"`
	LevelMult      float64 `yaml:"level_mult"`
	EfSearch       int     `yaml:"ef_search"`
	Seed           *int64  `yaml:"seed"`
}

// Default returns the reference demo's tunables. level_mult is the demo's
// explicit 1.0, not the conventional 1/ln(M) multiplier (about 0.36 for
// M=16), so it yields taller graphs than that default would.
func Default() Config {
	return Config{
		M:              16,
		EfConstruction: 200,
		LevelMult:      1.0,
		EfSearch:       200,
	}
}

// Load reads and parses a YAML config file. Fields absent from the file
// keep their Default() value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("hnswconfig: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("hnswconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}
