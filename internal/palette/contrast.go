package palette

// TextColorPair is the fill and outline color used for captions.
type TextColorPair struct {
	TextColor   Color `json:"text_color"`
	StrokeColor Color `json:"stroke_color"`
}

var (
	// LightText is white text with a black outline, used on dark backgrounds.
	LightText = TextColorPair{TextColor: White, StrokeColor: Black}

	// DarkText is black text with a white outline, used on light backgrounds.
	DarkText = TextColorPair{TextColor: Black, StrokeColor: White}
)

// TextColors picks caption colors for background by luma. Exactly 128 counts
// as light.
func TextColors(background Color) TextColorPair {
	if background.Luma() < 128 {
		return LightText
	}
	return DarkText
}

// RelativeLuminance is the WCAG relative luminance of c in [0,1].
func RelativeLuminance(c Color) float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio is the WCAG contrast ratio between a and b, from 1 to 21.
func ContrastRatio(a, b Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
