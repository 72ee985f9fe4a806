package palette

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"github.com/ironsheep/memefy-mcp/internal/imaging"
)

// Fidelity selects the color analysis algorithm.
type Fidelity string

const (
	// FidelityRich buckets colors, ignores near-black and near-white
	// candidates and derives secondary and accent colors. It is the default.
	FidelityRich Fidelity = "rich"

	// FidelitySimple counts exact colors on a coarser sample. It is a fast
	// path that only yields primary and background.
	FidelitySimple Fidelity = "simple"
)

// ParseFidelity maps a configuration string to a Fidelity. The empty string
// selects FidelityRich.
func ParseFidelity(s string) (Fidelity, error) {
	switch Fidelity(s) {
	case "", FidelityRich:
		return FidelityRich, nil
	case FidelitySimple:
		return FidelitySimple, nil
	}
	return "", fmt.Errorf("unknown fidelity %q (want rich or simple)", s)
}

const (
	bucketSize = 32

	minCandidateLuma = 30
	maxCandidateLuma = 240
)

// Fallback palettes used when a logo has no usable opaque pixels.
var (
	RichFallback = Extracted{
		Primary:    MustHex("#3B82F6"),
		Background: MustHex("#F8FAFC"),
		Secondary:  ptr(MustHex("#EF4444")),
		Accent:     ptr(MustHex("#10B981")),
	}
	SimpleFallback = Extracted{
		Primary:    MustHex("#3B82F6"),
		Background: MustHex("#F0F9FF"),
	}
)

// ColorSample is one entry of a frequency table.
type ColorSample struct {
	Color Color  `json:"color"`
	Count uint32 `json:"count"`
}

// Extracted is the palette inferred from a logo.
//
// Primary is the statistical mode of the sampled pixels. Background is always
// derived from Primary, never sampled. Secondary and Accent are only set by
// the rich analyzer.
type Extracted struct {
	Primary    Color  `json:"primary"`
	Background Color  `json:"background"`
	Secondary  *Color `json:"secondary,omitempty"`
	Accent     *Color `json:"accent,omitempty"`
}

// frequencyTable counts colors and remembers the order each was first seen,
// which breaks ties between equally frequent colors.
type frequencyTable struct {
	index   map[Color]int
	samples []ColorSample
}

func newFrequencyTable() *frequencyTable {
	return &frequencyTable{index: make(map[Color]int)}
}

func (t *frequencyTable) add(c Color) {
	if i, ok := t.index[c]; ok {
		t.samples[i].Count++
		return
	}
	t.index[c] = len(t.samples)
	t.samples = append(t.samples, ColorSample{Color: c, Count: 1})
}

// ranked returns the samples by descending count, first seen first on ties.
func (t *frequencyTable) ranked() []ColorSample {
	out := slices.Clone(t.samples)
	slices.SortStableFunc(out, func(a, b ColorSample) int {
		return int(b.Count) - int(a.Count)
	})
	return out
}

// mode is the most frequent color, first seen on ties.
func (t *frequencyTable) mode() (Color, bool) {
	if len(t.samples) == 0 {
		return Color{}, false
	}
	best := t.samples[0]
	for _, s := range t.samples[1:] {
		if s.Count > best.Count {
			best = s
		}
	}
	return best.Color, true
}

// Extract samples img and analyzes it at the given fidelity.
//
// Parameters:
//   - img: The decoded logo. Translucent pixels are ignored.
//   - fidelity: FidelityRich buckets colors and derives secondary and accent
//     colors; FidelitySimple reports the exact most frequent color only.
//   - logger: Receives the sampling geometry at debug level. May be nil.
//
// Returns the extracted colors. An image without opaque pixels yields
// RichFallback or SimpleFallback rather than an error.
//
// # Errors
//
//   - Returns imaging.ErrNotLoaded if img is nil or has zero dimensions
func Extract(img image.Image, fidelity Fidelity, logger *slog.Logger) (Extracted, error) {
	opts := imaging.RichSampling
	if fidelity == FidelitySimple {
		opts = imaging.SimpleSampling
	}

	stream, err := imaging.Sample(img, opts)
	if err != nil {
		return Extracted{}, err
	}
	if logger != nil {
		logger.Debug("sampling logo",
			"fidelity", fidelity, "width", stream.Width, "height", stream.Height, "step", stream.Step())
	}

	if fidelity == FidelitySimple {
		return AnalyzeSimple(stream), nil
	}
	return Analyze(stream), nil
}

// Analyze is the rich analyzer.
//
// Pixels are grouped into 32-wide buckets per channel and the buckets ranked
// by count. Buckets whose representative has luma outside [30,240] are dropped
// unless that would leave nothing. The representative of a bucket is the most
// frequent exact color seen inside it, so a flat brand color is reported as-is.
func Analyze(stream *imaging.PixelStream) Extracted {
	buckets := newFrequencyTable()
	members := make(map[Color]*frequencyTable)

	for {
		p, ok := stream.Next()
		if !ok {
			break
		}
		c := FromNRGBA(p)
		key := quantize(c)
		buckets.add(key)
		t, ok := members[key]
		if !ok {
			t = newFrequencyTable()
			members[key] = t
		}
		t.add(c)
	}

	ranked := buckets.ranked()
	candidates := make([]Color, 0, len(ranked))
	for _, s := range ranked {
		rep, _ := members[s.Color].mode()
		candidates = append(candidates, rep)
	}

	filtered := slices.DeleteFunc(slices.Clone(candidates), func(c Color) bool {
		l := c.Luma()
		return l < minCandidateLuma || l > maxCandidateLuma
	})
	if len(filtered) == 0 {
		filtered = candidates
	}
	if len(filtered) == 0 {
		return RichFallback
	}

	return derive(filtered)
}

// derive picks primary, secondary and accent from ranked candidates.
func derive(candidates []Color) Extracted {
	primary := candidates[0]

	secondary := primary
	if len(candidates) > 1 {
		secondary = candidates[1]
	}
	if IsSimilar(primary, secondary) {
		secondary = Contrasting(primary)
	}

	accent := primary
	if len(candidates) > 2 {
		accent = candidates[2]
	}
	if IsSimilar(accent, primary) || IsSimilar(accent, secondary) {
		accent = Complement(primary)
	}

	return Extracted{
		Primary:    primary,
		Background: Background(primary),
		Secondary:  &secondary,
		Accent:     &accent,
	}
}

// AnalyzeSimple reports the exact most frequent color, first seen on ties.
func AnalyzeSimple(stream *imaging.PixelStream) Extracted {
	counts := newFrequencyTable()
	for {
		p, ok := stream.Next()
		if !ok {
			break
		}
		counts.add(FromNRGBA(p))
	}

	primary, ok := counts.mode()
	if !ok {
		return SimpleFallback
	}
	return Extracted{Primary: primary, Background: Background(primary)}
}

func quantize(c Color) Color {
	return Color{
		R: c.R / bucketSize * bucketSize,
		G: c.G / bucketSize * bucketSize,
		B: c.B / bucketSize * bucketSize,
	}
}

func ptr(c Color) *Color {
	return &c
}
