package palette

// FiveStop is a darkest-to-lightest ramp derived from one seed color.
// It feeds gradient stops, never a flat background.
type FiveStop struct {
	Darkest  Color `json:"darkest"`
	Dark     Color `json:"dark"`
	Medium   Color `json:"medium"`
	Light    Color `json:"light"`
	Lightest Color `json:"lightest"`
}

// Background derives a light canvas fill from primary.
//
// Light inputs (luma > 180) keep 15% of each channel on a 240 base, medium
// inputs (luma > 100) keep 20% on 230, and dark inputs keep 30% on 220, so the
// result is always lighter than any primary below luma 240.
func Background(primary Color) Color {
	keep, base := 0.3, 220.0
	switch l := primary.Luma(); {
	case l > 180:
		keep, base = 0.15, 240
	case l > 100:
		keep, base = 0.2, 230
	}
	return mix(primary, keep, base)
}

// Palette builds the five-stop ramp for primary.
func Palette(primary Color) FiveStop {
	return FiveStop{
		Darkest:  mix(primary, 0.3, 0),
		Dark:     mix(primary, 0.5, 0),
		Medium:   mix(primary, 0.7, 50),
		Light:    mix(primary, 0.85, 100),
		Lightest: mix(primary, 0.95, 150),
	}
}

// Lighten moves each channel of c toward 255 by factor (0 = unchanged, 1 = white).
func Lighten(c Color, factor float64) Color {
	return Color{
		R: channel(float64(c.R) + float64(255-int(c.R))*factor),
		G: channel(float64(c.G) + float64(255-int(c.G))*factor),
		B: channel(float64(c.B) + float64(255-int(c.B))*factor),
	}
}

func mix(c Color, keep, base float64) Color {
	return Color{
		R: channel(float64(c.R)*keep + base),
		G: channel(float64(c.G)*keep + base),
		B: channel(float64(c.B)*keep + base),
	}
}
