package render

import (
	"image"
	"image/draw"
	"math"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/memefy-mcp/internal/palette"
)

const (
	wrapWidthRatio = 0.9
	shadowOffset   = 2
)

// Wrap greedily packs the space-separated words of text into lines whose
// measured width does not exceed maxWidth. A word is only moved to a new line
// when the current line is non-empty, so a single over-long word stays on a
// line of its own. Text is never truncated.
func Wrap(face font.Face, text string, maxWidth int) []string {
	limit := fixed.I(maxWidth)

	var lines []string
	current := ""
	for _, word := range strings.Split(text, " ") {
		trial := word
		if current != "" {
			trial = current + " " + word
		}
		if current != "" && font.MeasureString(face, trial) > limit {
			lines = append(lines, current)
			current = word
			continue
		}
		current = trial
	}
	return append(lines, current)
}

// captionPainter draws caption blocks with one font size and color pair.
// face is the hinted face for the same font and size, used for measuring.
type captionPainter struct {
	font   *opentype.Font
	face   font.Face
	typo   Typography
	colors palette.TextColorPair
	buf    sfnt.Buffer
}

// drawBlock upper-cases and wraps text, then draws the lines horizontally
// centred with the block vertically centred on anchorY. It returns the lines
// drawn.
func (p *captionPainter) drawBlock(dst *image.RGBA, text string, anchorY float64) ([]string, error) {
	lines := Wrap(p.face, strings.ToUpper(text), int(Width*wrapWidthRatio))
	lh := p.typo.LineHeight()
	start := anchorY - float64(len(lines))*lh/2
	for i, line := range lines {
		if err := p.drawLine(dst, line, Width/2, start+float64(i)*lh+lh/2); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// drawLine renders one line centred on (cx, cy). The outline goes down first
// with a blurred drop shadow in the stroke color, then the fill on top
// without a shadow.
func (p *captionPainter) drawLine(dst *image.RGBA, line string, cx, cy float64) error {
	m := p.face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	pad := int(math.Ceil(p.typo.StrokeWidth/2)) + 2*int(math.Ceil(p.typo.ShadowBlur)) + shadowOffset + 1
	outline, advance, err := p.glyphPath(line, fixed.P(pad, pad+ascent))
	if err != nil {
		return err
	}
	box := image.Rect(0, 0, advance.Ceil()+2*pad, ascent+descent+2*pad)

	// Middle baseline: the em box is centred on cy.
	baseline := cy + float64(ascent-descent)/2
	left := int(math.Round(cx-float64(advance)/64/2)) - pad
	top := int(math.Round(baseline)) - ascent - pad
	r := box.Add(image.Pt(left, top))

	stroke := image.NewRGBA(box)
	strokePath(stroke, p.colors.StrokeColor.NRGBA(), p.typo.StrokeWidth, outline)
	shadow := blur.Gaussian(stroke, shadowRadius(p.typo.ShadowBlur))
	draw.Draw(dst, r.Add(image.Pt(shadowOffset, shadowOffset)), shadow, image.Point{}, draw.Over)
	draw.Draw(dst, r, stroke, image.Point{}, draw.Over)

	glyphs := image.NewRGBA(box)
	fillPath(glyphs, p.colors.TextColor.NRGBA(), outline.AddTo)
	draw.Draw(dst, r, glyphs, image.Point{}, draw.Over)
	return nil
}

// glyphPath lays out line with the first glyph origin at origin and returns
// the glyph outlines as one path together with the total advance. Advances
// and kerning come from the measuring face, so the advance matches
// font.MeasureString and the wrapped widths.
func (p *captionPainter) glyphPath(line string, origin fixed.Point26_6) (rasterx.Path, fixed.Int26_6, error) {
	ppem := fixed.Int26_6(math.Round(p.typo.FontSize * 64))

	var path rasterx.Path
	dot := origin
	prev := rune(-1)
	for _, r := range line {
		if prev >= 0 {
			dot.X += p.face.Kern(prev, r)
		}
		idx, err := p.font.GlyphIndex(&p.buf, r)
		if err != nil {
			return nil, 0, &SurfaceError{Op: "map glyph", Err: err}
		}
		segments, err := p.font.LoadGlyph(&p.buf, idx, ppem, nil)
		if err != nil {
			return nil, 0, &SurfaceError{Op: "load glyph", Err: err}
		}
		appendSegments(&path, segments, dot)

		adv, _ := p.face.GlyphAdvance(r)
		dot.X += adv
		prev = r
	}
	return path, dot.X - origin.X, nil
}

// appendSegments adds one glyph's contours to path, offset by at. Every
// contour is closed.
func appendSegments(path *rasterx.Path, segments sfnt.Segments, at fixed.Point26_6) {
	open := false
	for _, s := range segments {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Stop(true)
			}
			path.Start(s.Args[0].Add(at))
			open = true
		case sfnt.SegmentOpLineTo:
			path.Line(s.Args[0].Add(at))
		case sfnt.SegmentOpQuadTo:
			path.QuadBezier(s.Args[0].Add(at), s.Args[1].Add(at))
		case sfnt.SegmentOpCubeTo:
			path.CubeBezier(s.Args[0].Add(at), s.Args[1].Add(at), s.Args[2].Add(at))
		}
	}
	if open {
		path.Stop(true)
	}
}

// shadowRadius maps a canvas shadow blur, whose Gaussian has a standard
// deviation of half the blur, onto bild's radius, whose kernel has a standard
// deviation of sqrt(2*radius). Halving is exact at a blur of 4 and within
// 0.3px of the canvas softness for the other caption styles.
func shadowRadius(shadowBlur float64) float64 {
	return shadowBlur / 2
}
