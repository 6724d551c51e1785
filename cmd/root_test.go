package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFindConfigPrefersXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}
	home := t.TempDir()
	xdg := filepath.Join(home, "xdg")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got := findConfig(); got != "" {
		t.Fatalf("findConfig() = %q with no files, want empty", got)
	}

	dotfile := filepath.Join(home, ".qamap.toml")
	if err := os.WriteFile(dotfile, []byte("box_width = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := findConfig(); got != dotfile {
		t.Errorf("findConfig() = %q, want %q", got, dotfile)
	}

	xdgFile := filepath.Join(xdg, "qamap", "qamap.toml")
	if err := os.MkdirAll(filepath.Dir(xdgFile), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xdgFile, []byte("box_width = 240\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := findConfig(); got != xdgFile {
		t.Errorf("findConfig() = %q, want %q", got, xdgFile)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"stray"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for positional arguments")
	}
}
