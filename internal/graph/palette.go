package graph

import "image/color"

// Kind is fixed when a box is created.
type Kind int

const (
	KindQ Kind = iota
	KindA
)

func (k Kind) String() string {
	if k == KindA {
		return "A"
	}
	return "Q"
}

// Palette holds the three colours a box paints with.
type Palette struct {
	Shadow     color.RGBA
	Background color.RGBA
	Hover      color.RGBA
}

var (
	paletteQ = Palette{
		Shadow:     rgb(60, 40, 40),
		Background: rgb(200, 100, 100),
		Hover:      rgb(180, 80, 80),
	}
	paletteA = Palette{
		Shadow:     rgb(40, 40, 60),
		Background: rgb(100, 100, 200),
		Hover:      rgb(80, 80, 180),
	}
	paletteComplete = Palette{
		Shadow:     rgb(40, 60, 40),
		Background: rgb(100, 200, 100),
		Hover:      rgb(80, 180, 80),
	}
)

// PaletteFor returns the palette a box of kind k paints with.
func PaletteFor(k Kind, complete bool) Palette {
	switch {
	case k == KindQ:
		return paletteQ
	case complete:
		return paletteComplete
	default:
		return paletteA
	}
}

var (
	canvasColor     = rgb(220, 220, 220)
	gridColor       = rgb(200, 200, 200)
	connectionColor = rgb(60, 40, 40)
	inkColor        = rgb(10, 10, 10)
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
