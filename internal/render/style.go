package render

import "fmt"

// Style is a typography and post-effect preset.
type Style string

const (
	StyleClassic Style = "classic"
	StyleModern  Style = "modern"
	StyleBold    Style = "bold"
)

// Typography holds the caption metrics for one Style, in canvas pixels.
type Typography struct {
	FontSize    float64 `json:"font_size"`
	StrokeWidth float64 `json:"stroke_width"`
	ShadowBlur  float64 `json:"shadow_blur"`
}

// LineHeight is the distance between consecutive wrapped lines.
func (t Typography) LineHeight() float64 {
	return t.FontSize * 1.2
}

var typography = map[Style]Typography{
	StyleClassic: {FontSize: 48, StrokeWidth: 6, ShadowBlur: 4},
	StyleModern:  {FontSize: 42, StrokeWidth: 5, ShadowBlur: 3},
	StyleBold:    {FontSize: 54, StrokeWidth: 7, ShadowBlur: 5},
}

// TypographyFor returns the preset for style. Unknown styles get classic.
func TypographyFor(style Style) Typography {
	if t, ok := typography[style]; ok {
		return t
	}
	return typography[StyleClassic]
}

// BackgroundStyle selects how the canvas behind the logo is painted.
type BackgroundStyle string

const (
	BackgroundGradient BackgroundStyle = "gradient"
	BackgroundPattern  BackgroundStyle = "pattern"
	BackgroundSolid    BackgroundStyle = "solid"
)

// ParseBackgroundStyle maps a configuration string to a BackgroundStyle.
// The empty string selects BackgroundGradient.
func ParseBackgroundStyle(s string) (BackgroundStyle, error) {
	switch BackgroundStyle(s) {
	case "", BackgroundGradient:
		return BackgroundGradient, nil
	case BackgroundPattern:
		return BackgroundPattern, nil
	case BackgroundSolid:
		return BackgroundSolid, nil
	}
	return "", fmt.Errorf("unknown background style %q (want gradient, pattern or solid)", s)
}
