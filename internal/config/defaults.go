package config

import (
	_ "embed"
)

//go:embed defaults/tilegrid.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:     3,
			Height:    3,
			Generator: "empty",
			Seed:      0,
			Density:   0.2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
