package surface

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"qamap/internal/graph"
)

// SVG streams drawing calls as SVG elements. Call Close to finish the
// document.
type SVG struct {
	canvas *svg.SVG
}

func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas}
}

func (s *SVG) FillRect(r graph.Rect, c color.RGBA) {
	s.canvas.Rect(px(r.X), px(r.Y), px(r.W), px(r.H), "fill:"+hex(c))
}

func (s *SVG) StrokeRect(r graph.Rect, c color.RGBA, width float64) {
	s.canvas.Rect(px(r.X), px(r.Y), px(r.W), px(r.H),
		fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", hex(c), width))
}

func (s *SVG) Line(from, to graph.Point, c color.RGBA, width float64) {
	s.canvas.Line(px(from.X), px(from.Y), px(to.X), px(to.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%g", hex(c), width))
}

func (s *SVG) Text(text string, at graph.Point, size float64, c color.RGBA) {
	s.canvas.Text(px(at.X), px(at.Y+size*0.8), text,
		fmt.Sprintf("fill:%s;font-family:monospace;font-size:%gpx;white-space:pre", hex(c), size))
}

func (s *SVG) Close() {
	s.canvas.End()
}

func px(v float64) int {
	return int(math.Round(v))
}
