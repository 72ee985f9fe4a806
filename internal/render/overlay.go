package render

import (
	"image"

	"github.com/srwiley/rasterx"
)

var (
	// modern darkens the top and bottom edges by 5%.
	modernOverlay = []rasterx.GradStop{
		shadeStop(0, 0.05),
		shadeStop(0.5, 0),
		shadeStop(1, 0.05),
	}

	// bold leaves the inner 70% of the radius alone and darkens toward 20% at
	// the edge.
	boldOverlay = []rasterx.GradStop{
		shadeStop(0, 0),
		shadeStop(0.7, 0),
		shadeStop(1, 0.2),
	}
)

// ApplyOverlay composites the post-effect for style over dst. Classic has none.
func ApplyOverlay(dst *image.RGBA, style Style) {
	b := dst.Bounds()
	switch style {
	case StyleModern:
		paintGradientRect(dst, verticalGradient(b, modernOverlay...))
	case StyleBold:
		cx := float64(b.Min.X) + float64(b.Dx())/2
		cy := float64(b.Min.Y) + float64(b.Dy())/2
		paintGradientRect(dst, radialGradient(b, cx, cy, float64(max(b.Dx(), b.Dy()))*0.7, boldOverlay...))
	}
}
