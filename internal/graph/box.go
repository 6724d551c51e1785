package graph

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultText is the label every new box starts with.
const DefaultText = "How many?"

const backspace = '\b'

const acceptedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,!?/\\;:'\"[{]}()~@#$%^&|`=+-_\n"

// Box is a single node on the canvas. It mutates only its own fields.
type Box struct {
	ID   int
	Kind Kind
	Pos  Point
	Size Size

	Text  string
	Lines []string

	Dragging   bool
	dragOffset Point

	TopHovered    bool
	CenterHovered bool
	BottomHovered bool

	Complete bool
	Palette  Palette

	pendingChar rune
	pending     bool
	typedAt     time.Time

	metrics Metrics
	measure TextMeasurer
	now     Clock
}

func newBox(id int, kind Kind, pos Point, metrics Metrics, measure TextMeasurer, now Clock) *Box {
	b := &Box{
		ID:      id,
		Kind:    kind,
		Pos:     pos,
		Size:    metrics.BoxSize,
		Text:    DefaultText,
		Palette: PaletteFor(kind, false),
		metrics: metrics,
		measure: measure,
		now:     now,
	}
	b.wrap()
	return b
}

// Bounds is the full box rectangle.
func (b *Box) Bounds() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.W, H: b.Size.H}
}

// TopStrip is the parent-side anchor region.
func (b *Box) TopStrip() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size.W, H: b.metrics.AnchorHeight}
}

// CenterStrip is the region between the two anchor strips.
func (b *Box) CenterStrip() Rect {
	a := b.metrics.AnchorHeight
	return Rect{X: b.Pos.X, Y: b.Pos.Y + a, W: b.Size.W, H: b.Size.H - 2*a}
}

// BottomStrip is the child-side anchor region. On A boxes it doubles as the
// completion toggle.
func (b *Box) BottomStrip() Rect {
	a := b.metrics.AnchorHeight
	return Rect{X: b.Pos.X, Y: b.Pos.Y + b.Size.H - a, W: b.Size.W, H: a}
}

// TopAnchor is the top-left corner of the top anchor square.
func (b *Box) TopAnchor() Point {
	return Point{X: b.Pos.X + b.Size.W/2 - 4, Y: b.Pos.Y + 10}
}

// BottomAnchor is the top-left corner of the bottom anchor square.
func (b *Box) BottomAnchor() Point {
	return Point{X: b.Pos.X + b.Size.W/2 - 4, Y: b.Pos.Y + b.Size.H - 18}
}

// SetSize changes the box dimensions and re-wraps its text.
func (b *Box) SetSize(s Size) {
	b.Size = s
	b.wrap()
}

// SetText replaces the whole buffer and re-wraps it.
func (b *Box) SetText(text string) {
	b.Text = text
	b.wrap()
}

// Pending reports the character currently held down, if any.
func (b *Box) Pending() (rune, bool) {
	return b.pendingChar, b.pending
}

// HandleEvent interprets ev against this box with the cursor at c.
func (b *Box) HandleEvent(ev Event, c Point) Action {
	b.hover(c)

	if !b.Bounds().Contains(c) && !b.Dragging {
		b.clearPending()
		return ActionNone
	}

	switch e := ev.(type) {
	case PointerPressed:
		switch e.Button {
		case ButtonPrimary:
			switch {
			case b.TopHovered:
				return ActionStartTop
			case b.BottomHovered:
				if b.Kind == KindA {
					b.ToggleComplete()
					return ActionToggleComplete
				}
				return ActionStartBottom
			default:
				b.Dragging = true
				b.dragOffset = b.Pos.Sub(c)
				return ActionDrag
			}
		case ButtonSecondary:
			return ActionDelete
		}
	case PointerReleased:
		if e.Button == ButtonPrimary {
			switch {
			case b.TopHovered:
				return ActionEndTop
			case b.BottomHovered:
				if b.Kind == KindA {
					return ActionHoverDrop
				}
				return ActionEndBottom
			case b.Dragging:
				b.Dragging = false
				return ActionDrag
			default:
				return ActionHoverDrop
			}
		}
	case PointerMoved:
		if b.Dragging {
			b.Pos = c.Add(b.dragOffset)
			return ActionDrag
		}
	case KeyPressed:
		b.pendingChar = e.Char
		b.pending = true
		b.typedAt = b.now()
		b.applyChar(e.Char)
		return ActionInput
	case KeyReleased:
		b.clearPending()
		return ActionInput
	}

	return ActionHover
}

// StartDrag puts the box into the dragged state with the cursor at c.
func (b *Box) StartDrag(c Point) {
	b.Dragging = true
	b.dragOffset = b.Pos.Sub(c)
}

// ToggleComplete flips the completion flag and swaps the palette. It is a
// no-op on Q boxes.
func (b *Box) ToggleComplete() {
	if b.Kind != KindA {
		return
	}
	b.Complete = !b.Complete
	b.Palette = PaletteFor(b.Kind, b.Complete)
}

// Tick repeats a held character once the repeat delay has elapsed.
func (b *Box) Tick(now time.Time) {
	if b.pending && b.pendingChar != 0 && now.Sub(b.typedAt) > b.metrics.RepeatDelay {
		b.applyChar(b.pendingChar)
	}
}

func (b *Box) hover(c Point) {
	b.TopHovered = b.TopStrip().Contains(c) && !b.Dragging
	b.CenterHovered = b.CenterStrip().Contains(c)
	b.BottomHovered = b.BottomStrip().Contains(c) && !b.Dragging
}

func (b *Box) clearPending() {
	b.pendingChar = 0
	b.pending = false
}

func (b *Box) applyChar(r rune) {
	if r == backspace {
		if b.Text != "" {
			_, n := utf8.DecodeLastRuneInString(b.Text)
			b.Text = b.Text[:len(b.Text)-n]
		}
		b.wrap()
		return
	}
	if accepted(r) {
		b.Text += string(r)
		b.wrap()
	}
}

func accepted(r rune) bool {
	return r != 0 && strings.ContainsRune(acceptedChars, r)
}

func (b *Box) wrap() {
	b.Lines = Wrap(b.Text, b.Size.W-b.metrics.TextInset, b.metrics.TextSize, b.measure)
}
