package render

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Canvas dimensions. Every meme is rendered at this size.
const (
	Width  = 800
	Height = 600
)

// SurfaceError reports that a drawing surface or font face could not be
// acquired. There is no fallback rendering path, so it is fatal to a run.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("drawing surface unavailable: %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// NewCanvas returns a blank, fully transparent canvas.
func NewCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, Width, Height))
}

// LoadFont parses the caption display face. An empty path selects the
// embedded Go Bold face; otherwise path must name a TrueType or OpenType file.
func LoadFont(path string) (*opentype.Font, error) {
	data := gobold.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, &SurfaceError{Op: "read font", Err: err}
		}
		data = b
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &SurfaceError{Op: "parse font", Err: err}
	}
	return f, nil
}

// newFace creates a face whose size is in canvas pixels.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &SurfaceError{Op: "create font face", Err: err}
	}
	return face, nil
}
