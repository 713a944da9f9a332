// Package theme classifies an extracted palette as light or dark.
package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/darkawower/pigment/internal/palette"
)

// Theme represents the overall brightness class of a palette.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// lightnessMidpoint splits the Lab lightness range (0-100) into the dark and
// light halves.
const lightnessMidpoint = 50.0

// Classify reports whether a palette reads as light or dark overall, weighting
// each entry's lightness by its population share.
func Classify(p palette.Palette) Theme {
	if Lightness(p) < lightnessMidpoint {
		return Dark
	}
	return Light
}

// Lightness returns the share-weighted mean Lab lightness of the palette on a
// 0-100 scale. Entries with a zero share contribute nothing; an empty palette
// reads as 0.
func Lightness(p palette.Palette) float64 {
	var weighted, total float64
	for _, e := range p.Entries {
		c := colorful.Color{
			R: float64(e.Color.R) / 255,
			G: float64(e.Color.G) / 255,
			B: float64(e.Color.B) / 255,
		}
		l, _, _ := c.Lab()
		weighted += l * 100 * e.Percentage
		total += e.Percentage
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// String returns the string representation of the theme.
func (t Theme) String() string {
	return string(t)
}
