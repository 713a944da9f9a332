// Package extractor bridges raw pixel input to the clustering engine and
// derives palettes from the result.
package extractor

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/darkawower/pigment/internal/kmeans"
	"github.com/darkawower/pigment/internal/palette"
)

// Extractor runs palette extraction with a fixed set of tuning parameters.
// It holds no state between calls; every extraction builds and discards its
// own working data. Concurrent use of a single instance requires external
// synchronization.
type Extractor struct {
	maxIterations int
	convergence   float64
	seed          int64
	verbose       bool
	logWriter     io.Writer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxIterations sets the iteration cap of the clustering loop.
func WithMaxIterations(n int) Option {
	return func(e *Extractor) {
		e.maxIterations = n
	}
}

// WithConvergence sets the minimum total centroid movement below which the
// clustering loop stops early.
func WithConvergence(threshold float64) Option {
	return func(e *Extractor) {
		e.convergence = threshold
	}
}

// WithSeed sets the seed of the deterministic centroid initialization.
func WithSeed(seed int64) Option {
	return func(e *Extractor) {
		e.seed = seed
	}
}

// WithVerbose enables a diagnostic trace of sample and cluster counts.
// The trace is purely observational and has no effect on results.
func WithVerbose(verbose bool) Option {
	return func(e *Extractor) {
		e.verbose = verbose
	}
}

// WithLogWriter sets the destination of the verbose trace (default stderr).
func WithLogWriter(w io.Writer) Option {
	return func(e *Extractor) {
		e.logWriter = w
	}
}

// New creates an Extractor with default tuning.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		maxIterations: kmeans.DefaultMaxIterations,
		convergence:   kmeans.DefaultConvergence,
		seed:          kmeans.DefaultSeed,
		logWriter:     os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FromPixels extracts a k-color palette from a raw RGBA pixel buffer,
// 4 bytes per pixel. The alpha channel is discarded.
func (e *Extractor) FromPixels(rgba []byte, k int) (palette.Palette, error) {
	if len(rgba)%4 != 0 {
		return palette.Palette{}, fmt.Errorf("pixel data must be RGBA (length divisible by 4), got %d bytes", len(rgba))
	}
	if k < 1 {
		return palette.Palette{}, fmt.Errorf("number of colors must be at least 1, got %d", k)
	}

	samples := make([]kmeans.Sample, 0, len(rgba)/4)
	for i := 0; i+3 < len(rgba); i += 4 {
		samples = append(samples, kmeans.Sample{R: rgba[i], G: rgba[i+1], B: rgba[i+2]})
	}
	if len(samples) == 0 {
		return palette.Palette{}, fmt.Errorf("no pixels in input")
	}

	return e.extract(samples, k)
}

// FromImageData is FromPixels with a declared image shape; the buffer length
// must equal width*height*4.
func (e *Extractor) FromImageData(rgba []byte, width, height, k int) (palette.Palette, error) {
	expected := width * height * 4
	if len(rgba) != expected {
		return palette.Palette{}, fmt.Errorf("pixel data length %d does not match %dx%d RGBA image (want %d)",
			len(rgba), width, height, expected)
	}
	return e.FromPixels(rgba, k)
}

// FromImage extracts a k-color palette from a decoded image. Transparent
// pixels are skipped.
func (e *Extractor) FromImage(img image.Image, k int) (palette.Palette, error) {
	if img == nil {
		return palette.Palette{}, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return palette.Palette{}, fmt.Errorf("number of colors must be at least 1, got %d", k)
	}

	bounds := img.Bounds()
	samples := make([]kmeans.Sample, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 32768 {
				continue
			}
			// Convert from 16-bit to 8-bit
			samples = append(samples, kmeans.Sample{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}
	if len(samples) == 0 {
		return palette.Palette{}, fmt.Errorf("no opaque pixels in image")
	}

	return e.extract(samples, k)
}

// DominantColor returns the single most representative color of an RGBA
// pixel buffer.
func (e *Extractor) DominantColor(rgba []byte) (palette.Color, error) {
	p, err := e.FromPixels(rgba, 1)
	if err != nil {
		return palette.Color{}, err
	}
	if p.Len() == 0 {
		return palette.Color{}, fmt.Errorf("no dominant color extracted")
	}
	return p.Entries[0].Color, nil
}

func (e *Extractor) extract(samples []kmeans.Sample, k int) (palette.Palette, error) {
	if e.verbose {
		fmt.Fprintf(e.logWriter, "clustering %d samples into %d colors\n", len(samples), k)
	}

	result, err := kmeans.Cluster(samples, k, e.maxIterations, e.convergence, e.seed)
	if err != nil {
		return palette.Palette{}, err
	}

	return palette.Derive(result, len(samples)), nil
}
