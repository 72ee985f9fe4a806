package render

import (
	"image"
	"image/draw"
	"strings"

	"golang.org/x/image/font/opentype"

	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/palette"
)

// Frame is everything needed to render one variation.
type Frame struct {
	Logo       image.Image
	Primary    palette.Color
	Text       palette.TextColorPair
	Background BackgroundStyle
	Style      Style
	TopText    string
	BottomText string
}

// Layout reports where things ended up on the canvas.
type Layout struct {
	Logo        image.Rectangle
	TopLines    []string
	BottomLines []string
}

// Compositor renders frames with a single display face. It holds no drawing
// state between calls; every Render paints a fresh canvas, so one Compositor
// may be shared by concurrent runs.
type Compositor struct {
	font *opentype.Font
}

// NewCompositor returns a Compositor that draws captions with f.
func NewCompositor(f *opentype.Font) *Compositor {
	return &Compositor{font: f}
}

// Render paints one variation:
//  1. background (or the placeholder fill)
//  2. the logo, aspect-fitted and centred
//  3. the upper-cased, wrapped top and bottom captions
//  4. the style overlay
//
// Blank captions are skipped. Long captions may run past the canvas edge.
//
// Returns the canvas and the Layout of the logo and caption lines. Errors are
// imaging.ErrNotLoaded for an empty logo and *SurfaceError when the face or a
// glyph outline cannot be loaded.
func (c *Compositor) Render(f Frame) (*image.RGBA, Layout, error) {
	if f.Logo == nil || f.Logo.Bounds().Empty() {
		return nil, Layout{}, imaging.ErrNotLoaded
	}

	canvas := NewCanvas()
	PaintBackground(canvas, f.Primary, f.Background)

	src := f.Logo.Bounds()
	layout := Layout{Logo: FitImage(src.Dx(), src.Dy())}
	scaled := imaging.Resample(f.Logo, layout.Logo.Dx(), layout.Logo.Dy())
	draw.Draw(canvas, layout.Logo, scaled, scaled.Bounds().Min, draw.Over)

	typo := TypographyFor(f.Style)
	face, err := newFace(c.font, typo.FontSize)
	if err != nil {
		return nil, Layout{}, err
	}
	defer face.Close()

	painter := &captionPainter{font: c.font, face: face, typo: typo, colors: f.Text}
	if strings.TrimSpace(f.TopText) != "" {
		if layout.TopLines, err = painter.drawBlock(canvas, f.TopText, TopAnchor(layout.Logo, typo)); err != nil {
			return nil, Layout{}, err
		}
	}
	if strings.TrimSpace(f.BottomText) != "" {
		if layout.BottomLines, err = painter.drawBlock(canvas, f.BottomText, BottomAnchor(layout.Logo)); err != nil {
			return nil, Layout{}, err
		}
	}

	ApplyOverlay(canvas, f.Style)
	return canvas, layout, nil
}

// Compose renders f and encodes the canvas as PNG.
func (c *Compositor) Compose(f Frame) (*imaging.EncodedImage, error) {
	canvas, _, err := c.Render(f)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNG(canvas)
}
