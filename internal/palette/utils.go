package palette

import (
	"math"
	"sort"
)

// Luminance returns the perceptual luminance weight of a color, with channels
// normalized to [0, 1] before weighting. Darker colors yield lower values.
func Luminance(c Color) float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortByLuminance returns the colors ordered darkest first. Equal-luminance
// colors keep their relative order. The input slice is not modified.
func SortByLuminance(colors []Color) []Color {
	sorted := make([]Color, len(colors))
	copy(sorted, colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Luminance(sorted[i]) < Luminance(sorted[j])
	})
	return sorted
}

// ColorDistance returns the Euclidean distance between two colors in raw
// 0-255 channel space.
func ColorDistance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// RemoveSimilar filters colors in order, keeping a color only if its distance
// to every already-kept color is at least threshold. First seen wins.
func RemoveSimilar(colors []Color, threshold float64) []Color {
	kept := make([]Color, 0, len(colors))
	for _, c := range colors {
		similar := false
		for _, k := range kept {
			if ColorDistance(c, k) < threshold {
				similar = true
				break
			}
		}
		if !similar {
			kept = append(kept, c)
		}
	}
	return kept
}
