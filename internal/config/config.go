// Package config loads qamap settings from qamap.toml, QAMAP_* environment
// variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"qamap/internal/graph"
)

// Wrap metric sources.
const (
	WrapCell = "cell"
	WrapFont = "font"
)

// Config holds all runtime settings for an editor session.
type Config struct {
	CellWidth        float64       `mapstructure:"cell_width"`
	CellHeight       float64       `mapstructure:"cell_height"`
	TextSize         float64       `mapstructure:"text_size"`
	BoxWidth         float64       `mapstructure:"box_width"`
	BoxHeight        float64       `mapstructure:"box_height"`
	SpawnZone        float64       `mapstructure:"spawn_zone"`
	RepeatDelay      time.Duration `mapstructure:"repeat_delay"`
	SnapshotDir      string        `mapstructure:"snapshot_dir"`
	SnapshotFontSize float64       `mapstructure:"snapshot_font_size"`
	WrapMetrics      string        `mapstructure:"wrap_metrics"`
	DebugLog         string        `mapstructure:"debug_log"`
}

// SetDefaults registers the built-in value of every key.
func SetDefaults() {
	viper.SetDefault("cell_width", 10.0)
	viper.SetDefault("cell_height", 20.0)
	viper.SetDefault("text_size", 20.0)
	viper.SetDefault("box_width", 220.0)
	viper.SetDefault("box_height", 266.0)
	viper.SetDefault("spawn_zone", 50.0)
	viper.SetDefault("repeat_delay", 500*time.Millisecond)
	viper.SetDefault("snapshot_dir", "")
	viper.SetDefault("snapshot_font_size", 16.0)
	viper.SetDefault("wrap_metrics", WrapCell)
	viper.SetDefault("debug_log", "")
}

// Load reads configuration from viper, applying built-in defaults for any
// value not set by config file, environment or flags.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.SnapshotDir = expandHome(cfg.SnapshotDir)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight)
	case c.BoxWidth <= 0 || c.BoxHeight <= 0:
		return fmt.Errorf("box size must be positive, got %gx%g", c.BoxWidth, c.BoxHeight)
	case c.TextSize <= 0 || c.SnapshotFontSize <= 0:
		return fmt.Errorf("text sizes must be positive")
	case c.RepeatDelay < 0:
		return fmt.Errorf("repeat_delay must not be negative, got %s", c.RepeatDelay)
	case c.WrapMetrics != WrapCell && c.WrapMetrics != WrapFont:
		return fmt.Errorf("wrap_metrics must be %q or %q, got %q", WrapCell, WrapFont, c.WrapMetrics)
	}
	return nil
}

// Metrics returns the engine geometry these settings describe.
func (c Config) Metrics() graph.Metrics {
	m := graph.DefaultMetrics()
	m.BoxSize = graph.Size{W: c.BoxWidth, H: c.BoxHeight}
	m.TextSize = c.TextSize
	m.RepeatDelay = c.RepeatDelay
	m.SpawnZone = graph.Rect{W: c.SpawnZone, H: c.SpawnZone}
	return m
}

// SnapshotPath returns where a snapshot named filename should be written,
// creating the snapshot directory if needed.
func (c Config) SnapshotPath(filename string) (string, error) {
	if c.SnapshotDir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SnapshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	return filepath.Join(c.SnapshotDir, filename), nil
}

// Watch re-reads the config file whenever it changes and hands the result
// to fn. Only the snapshot and key-repeat settings are meant to be applied
// while running; invalid edits are reported through fn's error.
func Watch(fn func(Config, error)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		fn(Load())
	})
	viper.WatchConfig()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
