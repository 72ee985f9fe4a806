package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// MaxUploadBytes is the largest logo file accepted for meme generation.
const MaxUploadBytes = 10 * 1024 * 1024

// svgRasterSize is the longest edge used when rasterizing vector logos.
const svgRasterSize = 800

// ImageCache provides thread-safe caching of decoded logos to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once a logo
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O. Repeated meme runs against the same upload therefore decode it only once.
//
// ImageCache is safe for concurrent use by multiple goroutines.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves a logo from the cache or loads it from disk if not cached.
//
// Raster formats (PNG, JPEG, GIF, BMP, TIFF, WebP) go through image.Decode.
// Files with an ".svg" extension are rasterized with oksvg so that vector logos
// reach the pipeline as ordinary bitmaps.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is larger than MaxUploadBytes
//   - Returns error if the content cannot be decoded
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	data, err := readUpload(path)
	if err != nil {
		return nil, err
	}

	img, err := decode(data, isSVG(path))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes a specific image from the cache by its path.
//
// Parameters:
//   - path: The exact path string used when the image was loaded.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Decode decodes an in-memory upload. SVG content is detected by sniffing for
// an <svg element, since uploads handed over as bytes carry no file name.
func Decode(data []byte) (image.Image, error) {
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("upload is %d bytes, limit is %d", len(data), MaxUploadBytes)
	}
	return decode(data, looksLikeSVG(data))
}

func decode(data []byte, svg bool) (image.Image, error) {
	if svg {
		return decodeSVG(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// decodeSVG rasterizes an SVG document so its longest edge is svgRasterSize.
func decodeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("SVG has empty view box (%gx%g)", w, h)
	}

	scale := float64(svgRasterSize) / w
	if h > w {
		scale = float64(svgRasterSize) / h
	}
	width := int(w*scale + 0.5)
	height := int(h*scale + 0.5)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

func readUpload(path string) ([]byte, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	if stat.Size() > MaxUploadBytes {
		return nil, fmt.Errorf("file is %d bytes, limit is %d", stat.Size(), MaxUploadBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return data, nil
}

func isSVG(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

func looksLikeSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

// supportedFormats maps accepted upload extensions to their format names.
var supportedFormats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".svg":  "svg",
	".webp": "webp",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
}

// ImageInfo contains metadata about an uploaded logo file.
type ImageInfo struct {
	// Width is the decoded image width in pixels.
	Width int `json:"width"`

	// Height is the decoded image height in pixels.
	Height int `json:"height"`

	// Format is derived from the file extension ("png", "jpeg", "svg", ...).
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image carries transparency.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// ValidateUpload checks that path names an accepted logo format within the
// size limit, without decoding it.
func ValidateUpload(path string) (string, error) {
	format, ok := supportedFormats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("unsupported file type %q: use PNG, JPG or SVG", filepath.Ext(path))
	}
	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if stat.Size() > MaxUploadBytes {
		return "", fmt.Errorf("file size must be less than 10MB (got %d bytes)", stat.Size())
	}
	return format, nil
}

// LoadImageInfo validates and loads a logo, returning its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	format, err := ValidateUpload(path)
	if err != nil {
		return nil, err
	}

	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := format == "svg"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.Paletted:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
