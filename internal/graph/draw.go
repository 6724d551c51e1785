package graph

import "image/color"

// Surface is the set of primitives the scene is drawn with. Text is placed
// by its top-left corner.
type Surface interface {
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA, width float64)
	Line(from, to Point, c color.RGBA, width float64)
	Text(s string, at Point, size float64, c color.RGBA)
}

// Draw renders the whole scene. It never mutates controller state.
func (c *Controller) Draw(s Surface) {
	m := c.store.metrics
	view := c.viewport

	s.FillRect(Rect{W: view.W, H: view.H}, canvasColor)
	for x := m.GridOffset; x < view.W; x += m.GridSpacing {
		s.Line(Point{X: x}, Point{X: x, Y: view.H}, gridColor, 1)
	}
	for y := m.GridOffset; y < view.H; y += m.GridSpacing {
		s.Line(Point{Y: y}, Point{X: view.W, Y: y}, gridColor, 1)
	}

	for _, b := range c.store.boxes {
		b.Draw(s)
	}

	for _, e := range c.store.Edges() {
		parent, ok1 := c.store.Box(e.Parent)
		child, ok2 := c.store.Box(e.Child)
		if !ok1 || !ok2 {
			continue
		}
		s.Line(parent.TopAnchor().Add(Point{3, 3}), child.BottomAnchor().Add(Point{3, 3}), connectionColor, 4)
	}

	c.drawLink(s)
}

func (c *Controller) drawLink(s Surface) {
	b, ok := c.store.Box(c.link.Box)
	if !ok {
		return
	}
	switch c.link.State {
	case LinkParentBound:
		s.Line(b.TopAnchor().Add(Point{3, 3}), c.cursor, connectionColor, 4)
	case LinkChildBound:
		s.Line(c.cursor, b.BottomAnchor().Add(Point{3, 3}), connectionColor, 4)
	}
}

// Draw paints the box: shadow, body, text, anchors, then border.
func (b *Box) Draw(s Surface) {
	x, y := b.Pos.X, b.Pos.Y
	w, h := b.Size.W, b.Size.H
	p := b.Palette

	s.FillRect(Rect{X: x - 3, Y: y - 3, W: w, H: h}, p.Shadow)
	s.FillRect(b.Bounds(), p.Background)
	if b.CenterHovered {
		s.FillRect(b.CenterStrip(), p.Hover)
	}

	size := b.metrics.TextSize
	lineY := 0.0
	lastW, lastH := 0.0, 0.0
	for _, line := range b.Lines {
		lastW, lastH = b.measure.Measure(line, size)
		s.Text(line, Point{X: x + 8, Y: y + 38 + lineY}, size, inkColor)
		lineY += size
	}
	if b.CenterHovered {
		lineY -= size
		caretX := x + 10 + lastW
		s.Line(Point{X: caretX, Y: y + lineY + 36}, Point{X: caretX, Y: y + lineY + lastH + 40}, inkColor, 1)
	}

	if b.TopHovered {
		s.FillRect(b.TopStrip(), p.Hover)
	}
	top := b.TopAnchor()
	s.FillRect(Rect{X: top.X, Y: top.Y, W: 8, H: 8}, p.Shadow)

	if b.BottomHovered {
		s.FillRect(b.BottomStrip(), p.Hover)
	}
	bottom := b.BottomAnchor()
	anchor := Rect{X: bottom.X, Y: bottom.Y, W: 8, H: 8}
	if b.Kind == KindQ || b.Complete {
		s.FillRect(anchor, p.Shadow)
	} else {
		s.StrokeRect(anchor, p.Shadow, 2)
	}

	s.StrokeRect(b.Bounds(), p.Shadow, 1)
}
