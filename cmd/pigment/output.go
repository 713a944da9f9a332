package main

import (
	"sort"

	"github.com/darkawower/pigment/internal/config"
	"github.com/darkawower/pigment/internal/palette"
)

// prepareEntries applies deduplication and ordering to palette entries.
func prepareEntries(entries []palette.Entry, sort config.SortMode, dedupThreshold float64) []palette.Entry {
	if dedupThreshold > 0 {
		entries = dedupEntries(entries, dedupThreshold)
	}
	return sortEntries(entries, sort)
}

// sortEntries returns entries ordered by the given mode. The input is
// not modified.
func sortEntries(entries []palette.Entry, mode config.SortMode) []palette.Entry {
	switch mode {
	case config.SortLuminance:
		sorted := make([]palette.Entry, len(entries))
		copy(sorted, entries)
		sort.SliceStable(sorted, func(i, j int) bool {
			return palette.Luminance(sorted[i].Color) < palette.Luminance(sorted[j].Color)
		})
		return sorted
	case config.SortShare:
		sorted := make([]palette.Entry, len(entries))
		copy(sorted, entries)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Percentage > sorted[j].Percentage
		})
		return sorted
	default:
		return entries
	}
}

// dedupEntries drops entries whose color sits closer than threshold to
// an earlier kept entry.
func dedupEntries(entries []palette.Entry, threshold float64) []palette.Entry {
	colors := make([]palette.Color, len(entries))
	for i, e := range entries {
		colors[i] = e.Color
	}
	kept := palette.RemoveSimilar(colors, threshold)

	keptSet := make(map[palette.Color]bool, len(kept))
	for _, c := range kept {
		keptSet[c] = true
	}

	result := make([]palette.Entry, 0, len(kept))
	seen := make(map[palette.Color]bool, len(kept))
	for _, e := range entries {
		if keptSet[e.Color] && !seen[e.Color] {
			result = append(result, e)
			seen[e.Color] = true
		}
	}
	return result
}

// printEntries renders entries in the configured format.
func printEntries(entries []palette.Entry, format config.OutputFormat) {
	for _, e := range entries {
		switch format {
		case config.FormatHex:
			out.Print("%s  %6.2f%%", e.Color.Hex(), e.Percentage)
		case config.FormatRGB:
			out.Print("%-18s  %6.2f%%", e.Color.RGBString(), e.Percentage)
		default:
			out.Swatch(e.Color.R, e.Color.G, e.Color.B, e.Color.Hex(), e.Percentage)
		}
	}
}
