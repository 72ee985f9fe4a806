package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/palette"
)

func testCompositor(t *testing.T) *Compositor {
	t.Helper()
	f, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	return NewCompositor(f)
}

func solidLogo(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func countColor(img *image.RGBA, r image.Rectangle, c palette.Color) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pixel(img, x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestCompositor_Render(t *testing.T) {
	c := testCompositor(t)
	frame := Frame{
		Logo:       solidLogo(200, 200, brandBlue.NRGBA()),
		Primary:    brandBlue,
		Text:       palette.DarkText,
		Background: BackgroundGradient,
		Style:      StyleClassic,
		TopText:    "when the logo",
		BottomText: "is on brand",
	}

	canvas, layout, err := c.Render(frame)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if canvas.Bounds() != image.Rect(0, 0, Width, Height) {
		t.Fatalf("canvas bounds: got %v", canvas.Bounds())
	}

	if layout.Logo != image.Rect(190, 90, 610, 510) {
		t.Errorf("logo placement: got %v", layout.Logo)
	}
	if got := pixel(canvas, 400, 300); got != brandBlue {
		t.Errorf("logo centre: got %v, want %v", got, brandBlue)
	}

	if len(layout.TopLines) != 1 || layout.TopLines[0] != "WHEN THE LOGO" {
		t.Errorf("top lines: got %q", layout.TopLines)
	}
	if len(layout.BottomLines) != 1 || layout.BottomLines[0] != "IS ON BRAND" {
		t.Errorf("bottom lines: got %q", layout.BottomLines)
	}

	// Black fill and white outline around the top anchor (y=78).
	band := image.Rect(0, 50, Width, 106)
	if n := countColor(canvas, band, palette.Black); n == 0 {
		t.Error("no caption fill pixels in the top band")
	}
	if n := countColor(canvas, band, palette.White); n == 0 {
		t.Error("no caption outline pixels in the top band")
	}
}

func TestCompositor_BlankCaptionsSkipped(t *testing.T) {
	c := testCompositor(t)
	frame := Frame{
		Logo:    solidLogo(200, 200, brandBlue.NRGBA()),
		Primary: brandBlue,
		Text:    palette.DarkText,
		Style:   StyleClassic,
		TopText: "   ",
	}

	canvas, layout, err := c.Render(frame)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if layout.TopLines != nil || layout.BottomLines != nil {
		t.Errorf("blank captions were drawn: %+v", layout)
	}
	if n := countColor(canvas, image.Rect(0, 0, Width, 90), palette.Black); n != 0 {
		t.Errorf("found %d black pixels above the logo", n)
	}
}

func TestCompositor_FreshCanvasPerFrame(t *testing.T) {
	c := testCompositor(t)
	base := Frame{
		Logo:    solidLogo(100, 100, brandBlue.NRGBA()),
		Primary: brandBlue,
		Text:    palette.DarkText,
	}

	bold := base
	bold.Style = StyleBold
	bold.TopText = "vignette"
	if _, _, err := c.Render(bold); err != nil {
		t.Fatalf("Render bold failed: %v", err)
	}

	classic := base
	classic.Style = StyleClassic
	first, _, err := c.Render(classic)
	if err != nil {
		t.Fatalf("Render classic failed: %v", err)
	}
	second, _, err := c.Render(classic)
	if err != nil {
		t.Fatalf("Render classic failed: %v", err)
	}
	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("identical frames rendered differently")
	}
	// Corner is the plain gradient dark stop, no vignette.
	if got := pixel(first, 0, 0); got != palette.Palette(brandBlue).Dark {
		t.Errorf("classic corner: got %v, want %v", got, palette.Palette(brandBlue).Dark)
	}
}

func TestCompositor_LongCaptionOverflows(t *testing.T) {
	c := testCompositor(t)
	long := ""
	for i := 0; i < 30; i++ {
		long += "synergy "
	}
	frame := Frame{
		Logo:       solidLogo(100, 100, brandBlue.NRGBA()),
		Primary:    brandBlue,
		Text:       palette.LightText,
		Style:      StyleBold,
		BottomText: long,
	}

	_, layout, err := c.Render(frame)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(layout.BottomLines) < 5 {
		t.Errorf("expected many lines, got %d", len(layout.BottomLines))
	}
}

func TestCompositor_Compose(t *testing.T) {
	c := testCompositor(t)
	encoded, err := c.Compose(Frame{
		Logo:       solidLogo(300, 100, color.RGBA{200, 30, 30, 255}),
		Primary:    palette.RGB(200, 30, 30),
		Text:       palette.DarkText,
		Background: BackgroundPattern,
		Style:      StyleModern,
		TopText:    "top",
		BottomText: "bottom",
	})
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if encoded.MimeType != imaging.PNGMimeType {
		t.Errorf("MimeType: got %s", encoded.MimeType)
	}

	img, err := png.Decode(bytes.NewReader(encoded.Data))
	if err != nil {
		t.Fatalf("payload is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != Width || img.Bounds().Dy() != Height {
		t.Errorf("decoded size: got %v", img.Bounds())
	}
}

func TestCompositor_NoLogo(t *testing.T) {
	c := testCompositor(t)
	_, _, err := c.Render(Frame{Primary: brandBlue})
	if !errors.Is(err, imaging.ErrNotLoaded) {
		t.Errorf("Render without logo: got %v, want ErrNotLoaded", err)
	}
}
