package imaging

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrNotLoaded is returned when an image reports zero natural dimensions,
// which means it was never fully decoded.
var ErrNotLoaded = errors.New("image not loaded: zero dimensions")

// SampleOptions controls how a logo is reduced to a pixel sequence.
type SampleOptions struct {
	// MaxEdge bounds the longest edge of the analysis copy. Images already
	// smaller than this are never upscaled.
	MaxEdge int

	// Budget, when positive, picks the stride so that roughly Budget pixels
	// are visited. It takes precedence over Stride.
	Budget int

	// Stride is the fixed pixel step used when Budget is zero.
	Stride int

	// MinAlpha is the lowest alpha (0-255) a pixel may have to be yielded.
	MinAlpha uint8
}

var (
	// RichSampling visits about 1000 pixels of a copy at most 400px wide.
	RichSampling = SampleOptions{MaxEdge: 400, Budget: 1000, MinAlpha: 128}

	// SimpleSampling visits every 4th pixel of a copy at most 200px wide.
	SimpleSampling = SampleOptions{MaxEdge: 200, Stride: 4, MinAlpha: 128}
)

// PixelStream is a single-use cursor over the opaque pixels of an analysis copy.
// Pixels are visited in raster order at a fixed stride; once exhausted it
// cannot be rewound.
type PixelStream struct {
	pix      *image.NRGBA
	next     int
	step     int
	total    int
	minAlpha uint8

	// Width and Height are the dimensions of the downscaled analysis copy.
	Width  int
	Height int
}

// Sample downscales img for analysis and returns a stream of its opaque pixels.
//
// The analysis copy is produced by resampling (not cropping) so that its longest
// edge is at most opts.MaxEdge. Translucent pixels (alpha < opts.MinAlpha) are
// skipped so that transparent logo backgrounds do not read as black.
//
// Returns ErrNotLoaded if img has no pixels.
func Sample(img image.Image, opts SampleOptions) (*PixelStream, error) {
	if img == nil {
		return nil, ErrNotLoaded
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrNotLoaded
	}

	dw, dh := w, h
	if longest := max(w, h); opts.MaxEdge > 0 && longest > opts.MaxEdge {
		dw = max(1, w*opts.MaxEdge/longest)
		dh = max(1, h*opts.MaxEdge/longest)
	}

	var pix *image.NRGBA
	if dw == w && dh == h {
		pix = imaging.Clone(img)
	} else {
		pix = imaging.Resize(img, dw, dh, imaging.Linear)
	}

	total := dw * dh
	step := opts.Stride
	if opts.Budget > 0 {
		step = total / opts.Budget
	}
	if step < 1 {
		step = 1
	}

	return &PixelStream{
		pix:      pix,
		step:     step,
		total:    total,
		minAlpha: opts.MinAlpha,
		Width:    dw,
		Height:   dh,
	}, nil
}

// Step reports the pixel stride the stream advances by.
func (s *PixelStream) Step() int {
	return s.step
}

// Next returns the next opaque pixel. The second result is false once the
// stream is exhausted.
func (s *PixelStream) Next() (color.NRGBA, bool) {
	for s.next < s.total {
		i := s.next * 4
		s.next += s.step
		p := s.pix.Pix[i : i+4 : i+4]
		if p[3] < s.minAlpha {
			continue
		}
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, true
	}
	return color.NRGBA{}, false
}
