package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"qamap/internal/graph"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"CellWidth", cfg.CellWidth, 10.0},
		{"CellHeight", cfg.CellHeight, 20.0},
		{"TextSize", cfg.TextSize, 20.0},
		{"BoxWidth", cfg.BoxWidth, 220.0},
		{"BoxHeight", cfg.BoxHeight, 266.0},
		{"SpawnZone", cfg.SpawnZone, 50.0},
		{"RepeatDelay", cfg.RepeatDelay, 500 * time.Millisecond},
		{"SnapshotDir", cfg.SnapshotDir, ""},
		{"SnapshotFontSize", cfg.SnapshotFontSize, 16.0},
		{"WrapMetrics", cfg.WrapMetrics, WrapCell},
		{"DebugLog", cfg.DebugLog, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper(t)
	viper.SetEnvPrefix("QAMAP")
	viper.AutomaticEnv()

	t.Setenv("QAMAP_BOX_WIDTH", "300")
	t.Setenv("QAMAP_REPEAT_DELAY", "750ms")
	t.Setenv("QAMAP_WRAP_METRICS", "font")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.BoxWidth != 300 {
		t.Errorf("BoxWidth = %v, want 300", cfg.BoxWidth)
	}
	if cfg.RepeatDelay != 750*time.Millisecond {
		t.Errorf("RepeatDelay = %v, want 750ms", cfg.RepeatDelay)
	}
	if cfg.WrapMetrics != WrapFont {
		t.Errorf("WrapMetrics = %q, want %q", cfg.WrapMetrics, WrapFont)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "qamap.toml")
	data := "box_height = 300\nspawn_zone = 80\nsnapshot_dir = \"/tmp/qamap-shots\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.BoxHeight != 300 || cfg.SpawnZone != 80 {
		t.Errorf("got box_height=%v spawn_zone=%v, want 300, 80", cfg.BoxHeight, cfg.SpawnZone)
	}
	if cfg.SnapshotDir != "/tmp/qamap-shots" {
		t.Errorf("SnapshotDir = %q", cfg.SnapshotDir)
	}
	if cfg.BoxWidth != 220 {
		t.Errorf("unset key should keep its default, BoxWidth = %v", cfg.BoxWidth)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value any
	}{
		{"cell_width", 0},
		{"box_height", -1},
		{"text_size", 0},
		{"repeat_delay", -time.Second},
		{"wrap_metrics", "pixels"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%v should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	resetViper(t)
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Set("snapshot_dir", "~/shots")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "shots"); cfg.SnapshotDir != want {
		t.Errorf("SnapshotDir = %q, want %q", cfg.SnapshotDir, want)
	}
}

func TestMetrics(t *testing.T) {
	cfg := Config{BoxWidth: 100, BoxHeight: 150, TextSize: 20, SpawnZone: 30, RepeatDelay: time.Second}
	m := cfg.Metrics()

	if m.BoxSize != (graph.Size{W: 100, H: 150}) {
		t.Errorf("BoxSize = %+v", m.BoxSize)
	}
	if m.SpawnZone != (graph.Rect{W: 30, H: 30}) {
		t.Errorf("SpawnZone = %+v", m.SpawnZone)
	}
	if m.TextSize != 20 || m.RepeatDelay != time.Second {
		t.Errorf("TextSize=%v RepeatDelay=%v", m.TextSize, m.RepeatDelay)
	}
	if m.AnchorHeight != graph.DefaultMetrics().AnchorHeight {
		t.Errorf("AnchorHeight = %v, want default", m.AnchorHeight)
	}
}

func TestSnapshotPath(t *testing.T) {
	got, err := Config{}.SnapshotPath("map.png")
	if err != nil || got != "map.png" {
		t.Errorf("SnapshotPath() = %q, %v; want map.png", got, err)
	}

	dir := filepath.Join(t.TempDir(), "nested", "shots")
	got, err = Config{SnapshotDir: dir}.SnapshotPath("map.png")
	if err != nil {
		t.Fatalf("SnapshotPath: %v", err)
	}
	if want := filepath.Join(dir, "map.png"); got != want {
		t.Errorf("SnapshotPath() = %q, want %q", got, want)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("snapshot dir was not created: %v", err)
	}
}
