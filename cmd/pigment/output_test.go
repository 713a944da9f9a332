package main

import (
	"testing"

	"github.com/darkawower/pigment/internal/config"
	"github.com/darkawower/pigment/internal/palette"
	"github.com/stretchr/testify/assert"
)

func TestSortEntries(t *testing.T) {
	entries := []palette.Entry{
		{Color: palette.Color{R: 255, G: 255, B: 255}, Percentage: 10},
		{Color: palette.Color{R: 0, G: 0, B: 0}, Percentage: 60},
		{Color: palette.Color{R: 128, G: 128, B: 128}, Percentage: 30},
	}

	t.Run("none keeps centroid order", func(t *testing.T) {
		sorted := sortEntries(entries, config.SortNone)
		assert.Equal(t, entries, sorted)
	})

	t.Run("luminance orders darkest first", func(t *testing.T) {
		sorted := sortEntries(entries, config.SortLuminance)
		assert.Equal(t, palette.Color{R: 0, G: 0, B: 0}, sorted[0].Color)
		assert.Equal(t, palette.Color{R: 128, G: 128, B: 128}, sorted[1].Color)
		assert.Equal(t, palette.Color{R: 255, G: 255, B: 255}, sorted[2].Color)
	})

	t.Run("share orders largest first", func(t *testing.T) {
		sorted := sortEntries(entries, config.SortShare)
		assert.Equal(t, 60.0, sorted[0].Percentage)
		assert.Equal(t, 30.0, sorted[1].Percentage)
		assert.Equal(t, 10.0, sorted[2].Percentage)
	})

	t.Run("does not modify input", func(t *testing.T) {
		sortEntries(entries, config.SortShare)
		assert.Equal(t, 10.0, entries[0].Percentage)
	})
}

func TestDedupEntries(t *testing.T) {
	t.Run("drops near duplicates keeping the first", func(t *testing.T) {
		entries := []palette.Entry{
			{Color: palette.Color{R: 255, G: 0, B: 0}, Percentage: 50},
			{Color: palette.Color{R: 250, G: 5, B: 5}, Percentage: 30},
			{Color: palette.Color{R: 0, G: 0, B: 255}, Percentage: 20},
		}

		deduped := dedupEntries(entries, 20)
		assert.Len(t, deduped, 2)
		assert.Equal(t, palette.Color{R: 255, G: 0, B: 0}, deduped[0].Color)
		assert.Equal(t, palette.Color{R: 0, G: 0, B: 255}, deduped[1].Color)
	})

	t.Run("keeps distinct colors", func(t *testing.T) {
		entries := []palette.Entry{
			{Color: palette.Color{R: 255, G: 0, B: 0}, Percentage: 50},
			{Color: palette.Color{R: 0, G: 255, B: 0}, Percentage: 30},
			{Color: palette.Color{R: 0, G: 0, B: 255}, Percentage: 20},
		}

		deduped := dedupEntries(entries, 20)
		assert.Len(t, deduped, 3)
	})
}

func TestPrepareEntries(t *testing.T) {
	entries := []palette.Entry{
		{Color: palette.Color{R: 200, G: 200, B: 200}, Percentage: 25},
		{Color: palette.Color{R: 205, G: 205, B: 205}, Percentage: 15},
		{Color: palette.Color{R: 10, G: 10, B: 10}, Percentage: 60},
	}

	prepared := prepareEntries(entries, config.SortShare, 30)
	assert.Len(t, prepared, 2)
	assert.Equal(t, 60.0, prepared[0].Percentage)
	assert.Equal(t, 25.0, prepared[1].Percentage)
}
