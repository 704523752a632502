package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextMetrics describes the measured extent of a block of text.
type TextMetrics struct {
	Size     Size
	Ascent   float64
	Lines    int
	MaxWidth float64
}

// TextMeasurer measures text runs for layout.
type TextMeasurer interface {
	Measure(text string) TextMetrics
}

// FaceMeasurer measures text using a golang.org/x/image font face.
type FaceMeasurer struct {
	Face font.Face
}

// DefaultMeasurer measures with the fixed 7x13 bitmap face. It has no external
// font dependency, which keeps layout deterministic in tests and golden files.
var DefaultMeasurer TextMeasurer = FaceMeasurer{Face: basicfont.Face7x13}

// Measure returns the size of text laid out one line per '\n'.
func (m FaceMeasurer) Measure(text string) TextMetrics {
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	lineHeight := fixedToFloat(metrics.Height)
	lines := strings.Split(text, "\n")

	var widest fixed.Int26_6
	for _, line := range lines {
		if w := font.MeasureString(face, line); w > widest {
			widest = w
		}
	}

	width := fixedToFloat(widest)
	return TextMetrics{
		Size:     Size{Width: width, Height: lineHeight * float64(len(lines))},
		Ascent:   fixedToFloat(metrics.Ascent),
		Lines:    len(lines),
		MaxWidth: width,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
