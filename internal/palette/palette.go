// Package palette turns clustering output into a color palette with
// population percentages, and provides numeric helpers on extracted colors.
package palette

import (
	"fmt"

	"github.com/darkawower/pigment/internal/kmeans"
)

// Color represents an RGB color in extraction results.
type Color struct {
	R, G, B uint8
}

// Hex returns the hex representation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString returns the color as "rgb(r, g, b)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Entry pairs a palette color with its share of the pixel population.
type Entry struct {
	Color      Color
	Percentage float64
}

// Palette is an ordered list of entries, one per cluster, in centroid order.
type Palette struct {
	Entries []Entry
}

// Len returns the number of entries.
func (p Palette) Len() int {
	return len(p.Entries)
}

// Colors returns the palette colors in entry order.
func (p Palette) Colors() []Color {
	colors := make([]Color, len(p.Entries))
	for i, e := range p.Entries {
		colors[i] = e.Color
	}
	return colors
}

// Derive builds a palette from clustering output. The result always has one
// entry per centroid, in centroid order; a cluster with no samples yields a
// percentage of exactly 0 rather than being omitted.
func Derive(result kmeans.Result, totalSamples int) Palette {
	counts := make([]int, len(result.Centroids))
	for _, a := range result.Assignments {
		if a >= 0 && a < len(counts) {
			counts[a]++
		}
	}

	entries := make([]Entry, len(result.Centroids))
	for i, c := range result.Centroids {
		pct := 0.0
		if totalSamples > 0 {
			pct = float64(counts[i]) / float64(totalSamples) * 100
		}
		entries[i] = Entry{
			Color:      Color{R: c.R, G: c.G, B: c.B},
			Percentage: pct,
		}
	}

	return Palette{Entries: entries}
}
