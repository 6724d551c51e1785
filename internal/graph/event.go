package graph

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonMiddle
	ButtonSecondary
)

// Event is one raw input event. The set of implementations is closed.
type Event interface {
	isEvent()
}

type PointerPressed struct {
	Button Button
	Pos    Point
}

type PointerReleased struct {
	Button Button
	Pos    Point
}

type PointerMoved struct {
	Pos Point
}

// KeyPressed carries the typed character. Control keys that produce no
// character use 0.
type KeyPressed struct {
	Char rune
}

type KeyReleased struct{}

type Resized struct {
	Size Size
}

type QuitRequested struct{}

func (PointerPressed) isEvent()  {}
func (PointerReleased) isEvent() {}
func (PointerMoved) isEvent()    {}
func (KeyPressed) isEvent()      {}
func (KeyReleased) isEvent()     {}
func (Resized) isEvent()         {}
func (QuitRequested) isEvent()   {}

// pointerPos returns the position carried by pointer events.
func pointerPos(ev Event) (Point, bool) {
	switch e := ev.(type) {
	case PointerPressed:
		return e.Pos, true
	case PointerReleased:
		return e.Pos, true
	case PointerMoved:
		return e.Pos, true
	}
	return Point{}, false
}
