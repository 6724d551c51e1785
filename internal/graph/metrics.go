package graph

import "time"

// Metrics fixes the geometry shared by every box on a canvas.
type Metrics struct {
	BoxSize      Size
	AnchorHeight float64
	TextInset    float64 // total horizontal padding subtracted from the wrap width
	TextSize     float64
	RepeatDelay  time.Duration
	SpawnZone    Rect
	GridSpacing  float64
	GridOffset   float64
}

// DefaultMetrics returns the stock canvas geometry.
func DefaultMetrics() Metrics {
	return Metrics{
		BoxSize:      Size{W: 220, H: 266},
		AnchorHeight: 28,
		TextInset:    16,
		TextSize:     28,
		RepeatDelay:  500 * time.Millisecond,
		SpawnZone:    Rect{X: 0, Y: 0, W: 50, H: 50},
		GridSpacing:  40,
		GridOffset:   20,
	}
}

// withDefaults fills zero fields from DefaultMetrics.
func (m Metrics) withDefaults() Metrics {
	d := DefaultMetrics()
	if m.BoxSize.W <= 0 || m.BoxSize.H <= 0 {
		m.BoxSize = d.BoxSize
	}
	if m.AnchorHeight <= 0 {
		m.AnchorHeight = d.AnchorHeight
	}
	if m.TextInset <= 0 {
		m.TextInset = d.TextInset
	}
	if m.TextSize <= 0 {
		m.TextSize = d.TextSize
	}
	if m.RepeatDelay <= 0 {
		m.RepeatDelay = d.RepeatDelay
	}
	if m.SpawnZone.W <= 0 || m.SpawnZone.H <= 0 {
		m.SpawnZone = d.SpawnZone
	}
	if m.GridSpacing <= 0 {
		m.GridSpacing = d.GridSpacing
	}
	if m.GridOffset < 0 {
		m.GridOffset = d.GridOffset
	}
	return m
}
