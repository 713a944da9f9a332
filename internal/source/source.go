// Package source resolves image references to decoded images.
// A reference is either a local file path or an http(s) URL.
package source

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/webp"
)

// SupportedExtensions are the image file extensions we support.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var client = &http.Client{
	Timeout: 30 * time.Second,
}

// IsURL reports whether ref looks like a downloadable image reference.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Load resolves ref and decodes it into an image.
func Load(ctx context.Context, ref string) (image.Image, error) {
	if IsURL(ref) {
		return loadURL(ctx, ref)
	}
	return loadFile(ref)
}

func loadFile(path string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" && !SupportedExtensions[ext] {
		return nil, fmt.Errorf("unsupported image extension: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

func loadURL(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}
