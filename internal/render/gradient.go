package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/memefy-mcp/internal/palette"
)

// strokeMiterLimit only matters for miter joins; captions use round joins.
const strokeMiterLimit = 4 << 6

func opaqueStop(offset float64, c palette.Color) rasterx.GradStop {
	return rasterx.GradStop{StopColor: c.NRGBA(), Offset: offset, Opacity: 1}
}

func shadeStop(offset, alpha float64) rasterx.GradStop {
	return rasterx.GradStop{StopColor: palette.Black.NRGBA(), Offset: offset, Opacity: alpha}
}

// radialGradient is parameterised by the distance of each pixel centre from
// (cx, cy) divided by radius. Offsets beyond the last stop take its color.
func radialGradient(b image.Rectangle, cx, cy, radius float64, stops ...rasterx.GradStop) *rasterx.Gradient {
	g := userSpaceGradient(b, stops)
	g.IsRadial = true
	g.Points = [5]float64{cx, cy, cx, cy, radius}
	return g
}

// verticalGradient runs from the top edge of b (0) to the bottom edge (1).
func verticalGradient(b image.Rectangle, stops ...rasterx.GradStop) *rasterx.Gradient {
	g := userSpaceGradient(b, stops)
	g.Points = [5]float64{0, float64(b.Min.Y), 0, float64(b.Max.Y)}
	return g
}

func userSpaceGradient(b image.Rectangle, stops []rasterx.GradStop) *rasterx.Gradient {
	g := &rasterx.Gradient{
		// GetColorFunction sorts in place; the overlay stop tables are shared.
		Stops:  append([]rasterx.GradStop(nil), stops...),
		Matrix: rasterx.Identity,
		Spread: rasterx.PadSpread,
		Units:  rasterx.UserSpaceOnUse,
	}
	g.Bounds.X, g.Bounds.Y = float64(b.Min.X), float64(b.Min.Y)
	g.Bounds.W, g.Bounds.H = float64(b.Dx()), float64(b.Dy())
	return g
}

// paintGradientRect composites g over every pixel of dst.
func paintGradientRect(dst draw.Image, g *rasterx.Gradient) {
	b := dst.Bounds()
	fillPath(dst, g.GetColorFunction(1), func(a rasterx.Adder) {
		rasterx.AddRect(float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y), 0, a)
	})
}

// fillPath fills the nonzero-winding interior of the contours that add
// produces with paint, a color.Color or rasterx.ColorFunc, composited over dst.
func fillPath(dst draw.Image, paint interface{}, add func(rasterx.Adder)) {
	b := dst.Bounds()
	filler := rasterx.NewFiller(b.Dx(), b.Dy(), rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b))
	filler.SetColor(paint)
	add(filler)
	filler.Draw()
}

// strokePath strokes path with a line of the given width centred on it,
// using round joins and caps.
func strokePath(dst draw.Image, c color.Color, width float64, path rasterx.Path) {
	b := dst.Bounds()
	stroker := rasterx.NewStroker(b.Dx(), b.Dy(), rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b))
	stroker.SetStroke(fixed.Int26_6(width*64), strokeMiterLimit, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round)
	stroker.SetColor(c)
	path.AddTo(stroker)
	stroker.Draw()
}
