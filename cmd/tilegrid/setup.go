package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilegrid/internal/config"
	"github.com/vovakirdan/tilegrid/internal/generators"
	"github.com/vovakirdan/tilegrid/internal/grid"
	"github.com/vovakirdan/tilegrid/internal/maps"
)

// newLogger builds the CLI logger. verbose forces debug level.
func newLogger(w io.Writer, level log.Level, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilegrid",
	})
	if verbose {
		level = log.DebugLevel
	}
	logger.SetLevel(level)

	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("204")).
		Foreground(lipgloss.Color("0"))
	logger.SetStyles(styles)

	return logger
}

// session holds what every subcommand needs: config and logger.
type session struct {
	cfg    config.Config
	logger *log.Logger
}

// setup loads config and builds the logger from the global flags.
func setup() (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := cfg.LogLevel()
	logger := newLogger(os.Stderr, level, flagVerbose)
	logger.Debug("config loaded",
		"width", cfg.Grid.Width,
		"height", cfg.Grid.Height,
		"generator", cfg.Grid.Generator,
	)

	return &session{cfg: cfg, logger: logger}, nil
}

// buildGrid returns the grid from --map when set, otherwise from the
// configured generator.
func (s *session) buildGrid() (*grid.Grid, error) {
	if flagMap != "" {
		loader := maps.NewLoader("", s.logger)
		m, err := loader.LoadFile(flagMap)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("building grid from map", "id", m.ID, "generator", m.Generator)
		return m.ToGrid()
	}

	gc := s.cfg.Grid
	s.logger.Debug("building grid from generator", "generator", gc.Generator, "seed", gc.Seed)
	g, err := generators.Generate(gc.Generator, generators.Params{
		Width:   gc.Width,
		Height:  gc.Height,
		Seed:    gc.Seed,
		Density: gc.Density,
	})
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}
	return g, nil
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
