package meme

import (
	"fmt"

	"github.com/ironsheep/memefy-mcp/internal/captions"
	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/palette"
	"github.com/ironsheep/memefy-mcp/internal/render"
)

// Count limits for a run.
const (
	MinCount     = 1
	MaxCount     = 6
	DefaultCount = 3
)

// styleCycle is the order styles are assigned to variations.
var styleCycle = []render.Style{render.StyleClassic, render.StyleModern, render.StyleBold}

// StyleFor returns the style of the i-th variation of a run.
func StyleFor(i int) render.Style {
	return styleCycle[i%len(styleCycle)]
}

// FallbackPalette replaces a palette whose extraction failed.
var FallbackPalette = palette.Extracted{
	Primary:    palette.MustHex("#3B82F6"),
	Background: palette.MustHex("#E0F2FE"),
}

// Request is one generation request.
type Request struct {
	// Source yields the logo. Decoding is the only blocking step of a run.
	Source imaging.Source

	// Count is the number of variations wanted, clamped to [1,6].
	Count int

	// Custom, when set, is rendered once and the catalog is not consulted.
	Custom *captions.Template

	// Background overrides the generator's default background style.
	Background render.BackgroundStyle
}

// Result is one finished variation.
type Result struct {
	ID         string                `json:"id"`
	FileName   string                `json:"file_name"`
	TopText    string                `json:"top_text"`
	BottomText string                `json:"bottom_text"`
	Style      render.Style          `json:"style"`
	Image      *imaging.EncodedImage `json:"image"`
}

// Run is everything a delivered run produced.
type Run struct {
	Token    uint64                `json:"token"`
	Palette  palette.Extracted     `json:"palette"`
	Text     palette.TextColorPair `json:"text"`
	Fallback bool                  `json:"fallback"`
	Results  []Result              `json:"results"`
}

func resultID(i int) string {
	return fmt.Sprintf("meme-%d", i)
}

// FileName is the download name of the i-th variation, counted from one.
func FileName(i int) string {
	return fmt.Sprintf("meme-%d.png", i+1)
}

func clampCount(n int) int {
	return min(max(n, MinCount), MaxCount)
}
