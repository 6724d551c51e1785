package graph

import (
	"strings"
	"unicode/utf8"
)

// LineBreak is the explicit line-break marker inside box text.
const LineBreak = '\n'

// TextMeasurer reports the rendered extent of s at the given text size.
type TextMeasurer interface {
	Measure(s string, size float64) (w, h float64)
}

// Wrap splits text into display lines no wider than maxWidth. Lines break
// only at single spaces. A word that does not fit closes the current line,
// even an empty one, and starts the next. Every paragraph emits its final
// line, even when it is empty.
func Wrap(text string, maxWidth, size float64, m TextMeasurer) []string {
	var lines []string
	for _, para := range strings.Split(text, string(LineBreak)) {
		cur := ""
		for _, word := range strings.Split(para, " ") {
			candidate := word
			if cur != "" {
				candidate = cur + " " + word
			}
			if w, _ := m.Measure(candidate, size); w <= maxWidth {
				cur = candidate
				continue
			}
			lines = append(lines, cur)
			cur = word
		}
		lines = append(lines, cur)
	}
	return lines
}

// FixedAdvance measures every rune as ratio×size wide and size tall.
type FixedAdvance float64

func (f FixedAdvance) Measure(s string, size float64) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * float64(f) * size, size
}
