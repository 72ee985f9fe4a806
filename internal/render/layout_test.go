package render

import (
	"image"
	"testing"
)

func TestFitImage(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		want       image.Rectangle
	}{
		{"wide banner", 1600, 400, image.Rect(40, 210, 760, 390)},
		{"tall", 400, 800, image.Rect(295, 90, 505, 510)},
		{"square", 100, 100, image.Rect(190, 90, 610, 510)},
		{"same aspect as canvas", 800, 600, image.Rect(120, 90, 680, 510)},
		{"tiny is scaled up", 4, 3, image.Rect(120, 90, 680, 510)},
		{"zero width", 0, 100, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitImage(tt.srcW, tt.srcH); got != tt.want {
				t.Errorf("FitImage(%d, %d): got %v, want %v", tt.srcW, tt.srcH, got, tt.want)
			}
		})
	}
}

func TestFitImage_StaysOnCanvas(t *testing.T) {
	canvas := image.Rect(0, 0, Width, Height)
	for _, size := range [][2]int{{1, 1000}, {1000, 1}, {333, 777}, {801, 600}, {799, 600}} {
		r := FitImage(size[0], size[1])
		if !r.In(canvas) {
			t.Errorf("FitImage(%d, %d) = %v leaves the canvas", size[0], size[1], r)
		}
		// Wide images are bounded by width only, so their height can reach
		// 720 / (4/3) = 540.
		if r.Dx() > Width*9/10 || r.Dy() > 540 {
			t.Errorf("FitImage(%d, %d) = %v exceeds the fit box", size[0], size[1], r)
		}
	}
}

func TestAnchors(t *testing.T) {
	classic := TypographyFor(StyleClassic)
	bold := TypographyFor(StyleBold)

	square := FitImage(100, 100) // top 90, bottom 510
	if got := TopAnchor(square, classic); got != 78 {
		t.Errorf("TopAnchor(square, classic): got %v, want 78", got)
	}
	if got := TopAnchor(square, bold); got != 84 {
		t.Errorf("TopAnchor(square, bold): got %v, want 84", got)
	}
	if got := BottomAnchor(square); got != 550 {
		t.Errorf("BottomAnchor(square): got %v, want 550", got)
	}

	banner := FitImage(1600, 400) // top 210, bottom 390
	if got := TopAnchor(banner, classic); got != 160 {
		t.Errorf("TopAnchor(banner): got %v, want 160", got)
	}
	if got := BottomAnchor(banner); got != 440 {
		t.Errorf("BottomAnchor(banner): got %v, want 440", got)
	}
}

func TestTypographyFor(t *testing.T) {
	tests := []struct {
		style Style
		want  Typography
	}{
		{StyleClassic, Typography{48, 6, 4}},
		{StyleModern, Typography{42, 5, 3}},
		{StyleBold, Typography{54, 7, 5}},
		{Style("unknown"), Typography{48, 6, 4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			if got := TypographyFor(tt.style); got != tt.want {
				t.Errorf("TypographyFor(%s): got %+v, want %+v", tt.style, got, tt.want)
			}
		})
	}

	if lh := TypographyFor(StyleClassic).LineHeight(); lh < 57.59 || lh > 57.61 {
		t.Errorf("classic line height: got %v, want 57.6", lh)
	}
}

func TestParseBackgroundStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    BackgroundStyle
		wantErr bool
	}{
		{"", BackgroundGradient, false},
		{"gradient", BackgroundGradient, false},
		{"pattern", BackgroundPattern, false},
		{"solid", BackgroundSolid, false},
		{"plaid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackgroundStyle(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBackgroundStyle(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBackgroundStyle(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
