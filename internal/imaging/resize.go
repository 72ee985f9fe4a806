package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Resample scales img to exactly width x height using Lanczos filtering.
// Callers are expected to have preserved the aspect ratio already.
//
// A non-positive dimension yields an empty image.
func Resample(img image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return &image.NRGBA{}
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
