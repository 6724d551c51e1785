package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"qamap/internal/config"
	"qamap/internal/graph"
	"qamap/internal/surface"
)

// snapshotName returns a timestamped file name such as
// qamap-20240102-150405.png.
func snapshotName(now time.Time, ext string) string {
	return fmt.Sprintf("qamap-%s.%s", now.Format("20060102-150405"), ext)
}

// exportPNG renders the scene at one pixel per canvas unit.
func exportPNG(c *graph.Controller, cfg config.Config, filename string) (string, error) {
	path, err := cfg.SnapshotPath(filename)
	if err != nil {
		return "", err
	}
	view := c.Viewport()
	w, h := max(int(view.W), 1), max(int(view.H), 1)
	p, err := surface.NewPNG(w, h, cfg.SnapshotFontSize)
	if err != nil {
		return "", err
	}
	c.Draw(p)
	if err := p.Save(path); err != nil {
		return "", err
	}
	return absPath(path), nil
}

func exportSVG(c *graph.Controller, cfg config.Config, filename string) (string, error) {
	path, err := cfg.SnapshotPath(filename)
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeSVG(c, f); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return absPath(path), nil
}

// writeSVG draws the scene into w and closes it, reporting the first write
// or close error.
func writeSVG(c *graph.Controller, w io.WriteCloser) error {
	bw := bufio.NewWriter(w)
	view := c.Viewport()
	s := surface.NewSVG(bw, max(int(view.W), 1), max(int(view.H), 1))
	c.Draw(s)
	s.Close()
	if err := bw.Flush(); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
