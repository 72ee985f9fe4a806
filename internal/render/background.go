package render

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"

	"github.com/ironsheep/memefy-mcp/internal/palette"
)

const (
	dotRadius  = 4
	dotSpacing = 20
	borderSize = 8
)

// PlaceholderFill is painted instead of a palette background when the primary
// color is one of the analyzers' near-white placeholders.
var PlaceholderFill = palette.MustHex("#F0F9FF")

var placeholders = []palette.Color{palette.White, palette.MustHex("#F8FAFC")}

// IsPlaceholder reports whether primary is a near-white placeholder rather
// than a real brand color.
func IsPlaceholder(primary palette.Color) bool {
	for _, p := range placeholders {
		if primary == p {
			return true
		}
	}
	return false
}

// PaintBackground covers all of dst using style and primary.
//
// Parameters:
//   - dst: The canvas. Every pixel is overwritten with an opaque color.
//   - primary: The brand color the palette is derived from.
//   - style: Unknown styles paint the gradient.
//
// Styles:
//   - gradient: radial from the centre, radius half the longest edge, through
//     the lightest, light, medium and dark stops of the five-stop palette
//   - pattern: 30% lightened fill with a diagonal lattice of 15% lightened dots
//   - solid: 40% lightened fill inside an 8px border at 20% lightened
//
// Placeholder primaries get a flat PlaceholderFill regardless of style.
func PaintBackground(dst *image.RGBA, primary palette.Color, style BackgroundStyle) {
	if IsPlaceholder(primary) {
		fill(dst, dst.Bounds(), PlaceholderFill)
		return
	}

	switch style {
	case BackgroundPattern:
		paintPattern(dst, primary)
	case BackgroundSolid:
		paintSolid(dst, primary)
	default:
		paintGradient(dst, primary)
	}
}

func paintGradient(dst *image.RGBA, primary palette.Color) {
	p := palette.Palette(primary)
	b := dst.Bounds()
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	paintGradientRect(dst, radialGradient(b, cx, cy, float64(max(b.Dx(), b.Dy()))/2,
		opaqueStop(0, p.Lightest),
		opaqueStop(0.3, p.Light),
		opaqueStop(0.6, p.Medium),
		opaqueStop(1, p.Dark),
	))
}

// paintPattern fills dst and then places dots on every other lattice point,
// so neighbouring rows are offset by one spacing.
func paintPattern(dst *image.RGBA, primary palette.Color) {
	b := dst.Bounds()
	fill(dst, b, palette.Lighten(primary, 0.3))

	fillPath(dst, palette.Lighten(primary, 0.15).NRGBA(), func(a rasterx.Adder) {
		for x := 0; x < b.Dx(); x += dotSpacing {
			for y := 0; y < b.Dy(); y += dotSpacing {
				if (x+y)%(2*dotSpacing) == 0 {
					rasterx.AddCircle(float64(b.Min.X+x), float64(b.Min.Y+y), dotRadius, a)
				}
			}
		}
	})
}

func paintSolid(dst *image.RGBA, primary palette.Color) {
	b := dst.Bounds()
	fill(dst, b, palette.Lighten(primary, 0.2))
	fill(dst, b.Inset(borderSize), palette.Lighten(primary, 0.4))
}

func fill(dst *image.RGBA, r image.Rectangle, c palette.Color) {
	draw.Draw(dst, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}
