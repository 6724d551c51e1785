// Package surface implements graph.Surface for the terminal and for image
// snapshots.
package surface

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"qamap/internal/graph"
)

// Cell is one terminal character cell.
type Cell struct {
	Rune rune // 0 marks the trailing half of a wide rune
	FG   color.RGBA
	BG   color.RGBA
}

// Cells rasterises canvas units onto a terminal grid. A cell is covered by
// a shape when the cell's center lies inside it; shapes too small to cover
// any center claim the single cell under their own center.
type Cells struct {
	cols, rows int
	cw, ch     float64
	cells      []Cell
	styles     map[[2]color.RGBA]lipgloss.Style
}

func NewCells(cols, rows int, cellW, cellH float64) *Cells {
	cols, rows = max(cols, 0), max(rows, 0)
	s := &Cells{
		cols:   cols,
		rows:   rows,
		cw:     cellW,
		ch:     cellH,
		cells:  make([]Cell, cols*rows),
		styles: make(map[[2]color.RGBA]lipgloss.Style),
	}
	for i := range s.cells {
		s.cells[i].Rune = ' '
	}
	return s
}

// Size is the grid extent in canvas units.
func (s *Cells) Size() graph.Size {
	return graph.Size{W: float64(s.cols) * s.cw, H: float64(s.rows) * s.ch}
}

// At returns the cell at col, row. Out-of-range positions return a blank.
func (s *Cells) At(col, row int) Cell {
	if c := s.cell(col, row); c != nil {
		return *c
	}
	return Cell{Rune: ' '}
}

func (s *Cells) FillRect(r graph.Rect, c color.RGBA) {
	s.cover(r, func(cell *Cell, _, _, _, _ bool) {
		cell.Rune = ' '
		cell.BG = c
	})
}

func (s *Cells) StrokeRect(r graph.Rect, c color.RGBA, _ float64) {
	s.cover(r, func(cell *Cell, top, bottom, left, right bool) {
		var ch rune
		switch {
		case top && bottom && left && right:
			ch = '□'
		case top && left:
			ch = '┌'
		case top && right:
			ch = '┐'
		case bottom && left:
			ch = '└'
		case bottom && right:
			ch = '┘'
		case top || bottom:
			ch = '─'
		case left || right:
			ch = '│'
		default:
			return
		}
		cell.Rune = ch
		cell.FG = c
	})
}

func (s *Cells) Line(from, to graph.Point, c color.RGBA, width float64) {
	x0, y0 := s.colOf(from.X), s.rowOf(from.Y)
	x1, y1 := s.colOf(to.X), s.rowOf(to.Y)

	glyph := lineGlyph(x1-x0, y1-y0, width >= 3)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		if cell := s.cell(x0, y0); cell != nil {
			cell.Rune = glyph
			cell.FG = c
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			x0 += sx
		} else {
			e += dx
			y0 += sy
		}
	}
}

// Text writes s starting at the cell nearest its top-left corner. Each rune
// takes its display width in columns.
func (s *Cells) Text(text string, at graph.Point, size float64, c color.RGBA) {
	row := s.rowOf(at.Y + size/2)
	col := s.colOf(at.X + s.cw/2)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if cell := s.cell(col, row); cell != nil {
			cell.Rune = r
			cell.FG = c
		}
		for i := 1; i < w; i++ {
			if cell := s.cell(col+i, row); cell != nil {
				cell.Rune = 0
			}
		}
		col += w
	}
}

// Put overwrites a single cell's rune and foreground.
func (s *Cells) Put(col, row int, r rune, fg color.RGBA) {
	if cell := s.cell(col, row); cell != nil {
		cell.Rune = r
		cell.FG = fg
	}
}

// Render returns the grid as styled terminal lines joined by newlines.
func (s *Cells) Render() string {
	var b strings.Builder
	for row := 0; row < s.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := s.cells[row*s.cols : (row+1)*s.cols]
		for start := 0; start < len(line); {
			end := start
			var run strings.Builder
			for end < len(line) && line[end].FG == line[start].FG && line[end].BG == line[start].BG {
				if line[end].Rune != 0 {
					run.WriteRune(line[end].Rune)
				}
				end++
			}
			b.WriteString(s.style(line[start].FG, line[start].BG).Render(run.String()))
			start = end
		}
	}
	return b.String()
}

// Plain returns the grid runes without styling.
func (s *Cells) Plain() []string {
	out := make([]string, s.rows)
	for row := range out {
		var b strings.Builder
		for _, c := range s.cells[row*s.cols : (row+1)*s.cols] {
			if c.Rune != 0 {
				b.WriteRune(c.Rune)
			}
		}
		out[row] = b.String()
	}
	return out
}

func (s *Cells) style(fg, bg color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{fg, bg}
	if st, ok := s.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(fg))).
		Background(lipgloss.Color(hex(bg)))
	s.styles[key] = st
	return st
}

// cover calls fn for every cell whose center lies in r, flagging which
// edges of the covered block the cell sits on.
func (s *Cells) cover(r graph.Rect, fn func(cell *Cell, top, bottom, left, right bool)) {
	c0 := int(math.Ceil((r.X - s.cw/2) / s.cw))
	c1 := int(math.Ceil((r.X+r.W-s.cw/2)/s.cw)) - 1
	r0 := int(math.Ceil((r.Y - s.ch/2) / s.ch))
	r1 := int(math.Ceil((r.Y+r.H-s.ch/2)/s.ch)) - 1
	if c1 < c0 || r1 < r0 {
		center := graph.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
		c0, r0 = s.colOf(center.X), s.rowOf(center.Y)
		c1, r1 = c0, r0
	}
	for row := max(r0, 0); row <= min(r1, s.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, s.cols-1); col++ {
			fn(&s.cells[row*s.cols+col], row == r0, row == r1, col == c0, col == c1)
		}
	}
}

func (s *Cells) cell(col, row int) *Cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

func (s *Cells) colOf(x float64) int {
	return int(math.Floor(x / s.cw))
}

func (s *Cells) rowOf(y float64) int {
	return int(math.Floor(y / s.ch))
}

func lineGlyph(dx, dy int, heavy bool) rune {
	switch {
	case dy == 0 && heavy:
		return '━'
	case dy == 0:
		return '─'
	case dx == 0 && heavy:
		return '┃'
	case dx == 0:
		return '│'
	case heavy:
		return '●'
	default:
		return '·'
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
