// Package measure provides text metrics for box word-wrapping.
package measure

import "github.com/mattn/go-runewidth"

// Cells measures text as laid out on a terminal grid. Every column is
// CellWidth units wide and a line is one CellHeight tall, whatever the
// requested size.
type Cells struct {
	CellWidth  float64
	CellHeight float64
}

func (c Cells) Measure(s string, _ float64) (float64, float64) {
	return float64(runewidth.StringWidth(s)) * c.CellWidth, c.CellHeight
}
