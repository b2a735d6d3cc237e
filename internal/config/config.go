// Package config provides YAML-based configuration loading for tilegrid.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

// Config contains all tilegrid configuration.
type Config struct {
	Grid GridConfig `yaml:"grid"`
	Log  LogConfig  `yaml:"log"`
}

// GridConfig describes the grid built when no map file is given.
type GridConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Generator string  `yaml:"generator"`
	Seed      int64   `yaml:"seed"`    // 0 keeps the seed fixed at 0, not time-based
	Density   float64 `yaml:"density"` // Tree density for the forest generator
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks the config for values the grid cannot use.
func (c Config) Validate() error {
	if err := grid.CheckSize(c.Grid.Width, c.Grid.Height); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Grid.Density < 0 || c.Grid.Density > 1 {
		return fmt.Errorf("config: density %.2f outside [0,1]", c.Grid.Density)
	}
	if strings.TrimSpace(c.Grid.Generator) == "" {
		return fmt.Errorf("config: grid generator is empty")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: %w", err)
	}
	return level, nil
}
