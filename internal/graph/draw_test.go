package graph

import (
	"image/color"
	"testing"
)

type recordedLine struct {
	from, to Point
	c        color.RGBA
	width    float64
}

type recordingSurface struct {
	fills   []Rect
	strokes []Rect
	lines   []recordedLine
	texts   []string
}

func (r *recordingSurface) FillRect(rect Rect, _ color.RGBA) { r.fills = append(r.fills, rect) }
func (r *recordingSurface) StrokeRect(rect Rect, _ color.RGBA, _ float64) {
	r.strokes = append(r.strokes, rect)
}
func (r *recordingSurface) Line(from, to Point, c color.RGBA, width float64) {
	r.lines = append(r.lines, recordedLine{from, to, c, width})
}
func (r *recordingSurface) Text(s string, _ Point, _ float64, _ color.RGBA) {
	r.texts = append(r.texts, s)
}

func (r *recordingSurface) connectionLines() []recordedLine {
	var out []recordedLine
	for _, l := range r.lines {
		if l.width == 4 {
			out = append(out, l)
		}
	}
	return out
}

func TestDrawConnectionRunsParentTopToChildBottom(t *testing.T) {
	c := newTestController(t)
	a := c.Store().NewBox(KindQ, Point{X: 100, Y: 100})
	b := c.Store().NewBox(KindQ, Point{X: 400, Y: 500})

	// Drawn from the child's end; the line still starts at the parent.
	press(c, bottomOf(b))
	release(c, topOf(a))

	var s recordingSurface
	c.Draw(&s)

	lines := s.connectionLines()
	if len(lines) != 1 {
		t.Fatalf("drew %d connection lines, want 1", len(lines))
	}
	if want := a.TopAnchor().Add(Point{X: 3, Y: 3}); lines[0].from != want {
		t.Errorf("line starts at %+v, want %+v", lines[0].from, want)
	}
	if want := b.BottomAnchor().Add(Point{X: 3, Y: 3}); lines[0].to != want {
		t.Errorf("line ends at %+v, want %+v", lines[0].to, want)
	}
}

func TestDrawPreviewFollowsCursor(t *testing.T) {
	c := newTestController(t)
	a := c.Store().NewBox(KindQ, Point{X: 100, Y: 100})

	press(c, topOf(a))
	cursor := Point{X: 900, Y: 700}
	move(c, cursor)

	var s recordingSurface
	c.Draw(&s)

	lines := s.connectionLines()
	if len(lines) != 1 || lines[0].to != cursor {
		t.Fatalf("preview lines = %+v, want one ending at %+v", lines, cursor)
	}
}

func TestDrawDoesNotMutate(t *testing.T) {
	c := newTestController(t)
	a := c.Store().NewBox(KindA, Point{X: 100, Y: 100})
	move(c, centerOf(a))
	before := *a

	var s recordingSurface
	c.Draw(&s)
	c.Draw(&s)

	if a.Pos != before.Pos || a.Text != before.Text || a.CenterHovered != before.CenterHovered {
		t.Error("Draw changed box state")
	}
	if len(s.texts) != 2 || s.texts[0] != DefaultText {
		t.Errorf("texts = %q, want the default label twice", s.texts)
	}
}

func TestDrawAnchorStyle(t *testing.T) {
	c := newTestController(t)
	a := c.Store().NewBox(KindA, Point{X: 100, Y: 100})
	anchor := Rect{X: a.BottomAnchor().X, Y: a.BottomAnchor().Y, W: 8, H: 8}

	var open recordingSurface
	c.Draw(&open)
	if !containsRect(open.strokes, anchor) || containsRect(open.fills, anchor) {
		t.Error("incomplete A box should stroke its bottom anchor")
	}

	a.ToggleComplete()
	var done recordingSurface
	c.Draw(&done)
	if !containsRect(done.fills, anchor) {
		t.Error("complete A box should fill its bottom anchor")
	}
}

func containsRect(rs []Rect, want Rect) bool {
	for _, r := range rs {
		if r == want {
			return true
		}
	}
	return false
}
