package measure

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	parseOnce sync.Once
	goMono    *truetype.Font
	parseErr  error
)

// GoMono returns the parsed Go Mono font.
func GoMono() (*truetype.Font, error) {
	parseOnce.Do(func() {
		goMono, parseErr = truetype.Parse(gomono.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("failed to parse font: %w", parseErr)
		}
	})
	return goMono, parseErr
}

// NewFace returns a Go Mono face at the given point size and 72 DPI, so
// one point is one canvas unit.
func NewFace(size float64) (font.Face, error) {
	f, err := GoMono()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Face measures text with real glyph advances. Faces are built lazily per
// size and cached.
type Face struct {
	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewFaceMeasurer checks that the font parses and returns a measurer.
func NewFaceMeasurer() (*Face, error) {
	if _, err := GoMono(); err != nil {
		return nil, err
	}
	return &Face{faces: make(map[float64]font.Face)}, nil
}

func (f *Face) Measure(s string, size float64) (float64, float64) {
	face := f.face(size)
	if face == nil {
		return 0, size
	}
	w := font.MeasureString(face, s)
	m := face.Metrics()
	return float64(w) / 64, float64(m.Ascent+m.Descent) / 64
}

func (f *Face) face(size float64) font.Face {
	f.mu.Lock()
	defer f.mu.Unlock()
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := NewFace(size)
	if err != nil {
		return nil
	}
	f.faces[size] = face
	return face
}
