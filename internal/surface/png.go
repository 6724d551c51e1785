package surface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"qamap/internal/graph"
	"qamap/internal/measure"
)

// PNG draws onto an in-memory image. One canvas unit is one pixel.
type PNG struct {
	dc *gg.Context
}

// NewPNG returns a width×height image surface whose text uses Go Mono at
// fontSize.
func NewPNG(width, height int, fontSize float64) (*PNG, error) {
	face, err := measure.NewFace(fontSize)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	return &PNG{dc: dc}, nil
}

func (p *PNG) FillRect(r graph.Rect, c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	p.dc.Fill()
}

func (p *PNG) StrokeRect(r graph.Rect, c color.RGBA, width float64) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	p.dc.Stroke()
}

func (p *PNG) Line(from, to graph.Point, c color.RGBA, width float64) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	p.dc.Stroke()
}

// Text ignores size; the face is fixed when the surface is created.
func (p *PNG) Text(s string, at graph.Point, _ float64, c color.RGBA) {
	p.dc.SetColor(c)
	p.dc.DrawStringAnchored(s, at.X, at.Y, 0, 1)
}

func (p *PNG) Image() image.Image {
	return p.dc.Image()
}

// Save writes the image to path as PNG.
func (p *PNG) Save(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}
