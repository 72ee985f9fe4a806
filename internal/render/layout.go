package render

import (
	"image"
	"math"
)

const (
	fitWidthRatio  = 0.9
	fitHeightRatio = 0.7
	anchorMargin   = 50
)

// FitImage places a srcW x srcH image on the canvas preserving its aspect
// ratio. Images relatively wider than the canvas are bounded to 90% of the
// canvas width, all others to 70% of its height so captions keep room above
// and below. The result is centred on both axes.
func FitImage(srcW, srcH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}
	}

	aspect := float64(srcW) / float64(srcH)
	var w, h float64
	if aspect > float64(Width)/float64(Height) {
		w = Width * fitWidthRatio
		h = w / aspect
	} else {
		h = Height * fitHeightRatio
		w = h * aspect
	}

	x := (Width - w) / 2
	y := (Height - h) / 2
	return image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
}

// TopAnchor is the vertical centre of the top caption block.
func TopAnchor(logo image.Rectangle, t Typography) float64 {
	return math.Max(t.FontSize+30, float64(logo.Min.Y)-anchorMargin)
}

// BottomAnchor is the vertical centre of the bottom caption block.
func BottomAnchor(logo image.Rectangle) float64 {
	return math.Min(Height-anchorMargin, float64(logo.Max.Y)+anchorMargin)
}
