// Package config carries the runtime settings shared by the command line
// and server front ends.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither a config file nor a flag overrides them.
const (
	DefaultPointsFile = "./points.json"
	DefaultListenAddr = "127.0.0.1:8080"
	DefaultHalfAngle  = 45
	DefaultRadius     = 20
)

// Query holds fallback visibility query parameters: the half angle in
// degrees and the radius in grid units.
type Query struct {
	HalfAngle uint32 `yaml:"half_angle"`
	Radius    uint32 `yaml:"radius"`
}

// Config holds the settings for the neighbours front ends.
type Config struct {
	PointsFile string `yaml:"points_file"`
	ListenAddr string `yaml:"listen_addr"`
	Query      Query  `yaml:"query"`
	Verbose    bool   `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PointsFile: DefaultPointsFile,
		ListenAddr: DefaultListenAddr,
		Query: Query{
			HalfAngle: DefaultHalfAngle,
			Radius:    DefaultRadius,
		},
	}
}

// Load reads the YAML config at path over the defaults. Settings absent
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
