package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SimilarityThreshold is the Euclidean RGB distance below which two colors
// count as the same brand color. The maximum possible distance is about 441.
const SimilarityThreshold = 100.0

// Color is a 24-bit RGB color. Its canonical text form is "#RRGGBB" in upper case.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#RRGGBB", "RRGGBB" or the 3-digit short form, in either case.
func ParseHex(s string) (Color, error) {
	if s == "" {
		return Color{}, fmt.Errorf("empty color string")
	}
	if s[0] != '#' {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustHex is ParseHex for package-level constants; it panics on bad input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromNRGBA drops the alpha channel of a non-premultiplied color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns the canonical "#RRGGBB" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// NRGBA returns the color as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Luma is the perceptual brightness 0.299R + 0.587G + 0.114B on a 0-255 scale.
func (c Color) Luma() float64 {
	return float64(int(c.R)*299+int(c.G)*587+int(c.B)*114) / 1000
}

// Colorful converts to a go-colorful color with channels in [0,1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// MarshalJSON encodes the color as its hex string.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

// UnmarshalJSON decodes a hex string.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Distance is the Euclidean distance between a and b in 8-bit RGB space.
func Distance(a, b Color) float64 {
	dr := float64(int(a.R) - int(b.R))
	dg := float64(int(a.G) - int(b.G))
	db := float64(int(a.B) - int(b.B))
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// IsSimilar reports whether a and b are closer than SimilarityThreshold.
func IsSimilar(a, b Color) bool {
	return Distance(a, b) < SimilarityThreshold
}

// Contrasting returns white for dark colors and black for light ones.
func Contrasting(c Color) Color {
	if c.Luma() < 128 {
		return White
	}
	return Black
}

// Complement inverts each channel.
func Complement(c Color) Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// channel floors v and clamps it to [0,255].
func channel(v float64) uint8 {
	v = math.Floor(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
