package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

// isolate points HOME and the working directory at fresh temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)
	return home, work
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from DefaultConfig %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if len(DefaultYAML()) == 0 {
		t.Error("embedded YAML is empty")
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "grid:\n  width: 8\n  generator: forest\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Width != 8 || cfg.Grid.Generator != "forest" {
		t.Errorf("custom values not applied: %+v", cfg.Grid)
	}
	// Omitted keys keep defaults.
	if cfg.Grid.Height != 3 || cfg.Log.Level != "info" {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeConfig(t, bad, "grid: [")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeConfig(t, filepath.Join(work, LocalPath), "grid:\n  width: 5\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Width != 5 {
		t.Errorf("expected local config width 5, got %d", cfg.Grid.Width)
	}

	// User config wins over the local one.
	writeConfig(t, filepath.Join(home, ".tilegrid", "config.yaml"), "grid:\n  width: 7\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Width != 7 {
		t.Errorf("expected user config width 7, got %d", cfg.Grid.Width)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home, work := isolate(t)

	writeConfig(t, filepath.Join(home, ".tilegrid", "config.yaml"), "grid: [")
	writeConfig(t, filepath.Join(work, LocalPath), "grid:\n  height: 6\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.Height != 6 {
		t.Errorf("expected fallback to local config, got height %d", cfg.Grid.Height)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero size", func(c *Config) { c.Grid.Width, c.Grid.Height = 0, 0 }, true},
		{"negative width", func(c *Config) { c.Grid.Width = -1 }, false},
		{"overflowing size", func(c *Config) { c.Grid.Width, c.Grid.Height = math.MaxInt, 2 }, false},
		{"over square cap", func(c *Config) { c.Grid.Width, c.Grid.Height = 1<<20, 1<<20 }, false},
		{"density too high", func(c *Config) { c.Grid.Density = 1.2 }, false},
		{"density negative", func(c *Config) { c.Grid.Density = -0.1 }, false},
		{"no generator", func(c *Config) { c.Grid.Generator = " " }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = ""
	if level, err := cfg.LogLevel(); err != nil || level != log.InfoLevel {
		t.Errorf("empty level: got %v, %v", level, err)
	}

	cfg.Log.Level = "warn"
	if level, err := cfg.LogLevel(); err != nil || level != log.WarnLevel {
		t.Errorf("warn level: got %v, %v", level, err)
	}
}

func TestValidateOversizeFromYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "huge.yaml")
	writeConfig(t, path, "grid:\n  width: 100000\n  height: 100000\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var sizeErr *grid.SizeError
	if err := cfg.Validate(); !errors.As(err, &sizeErr) {
		t.Errorf("expected *grid.SizeError, got %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir for toolchains that predate it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
