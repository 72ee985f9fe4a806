package meme

import (
	"context"
	"image"
	"io"
	"log/slog"

	"golang.org/x/image/font/opentype"

	"github.com/ironsheep/memefy-mcp/internal/captions"
	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/palette"
	"github.com/ironsheep/memefy-mcp/internal/render"
)

// Generator turns a decoded logo into meme variations. It holds no per-run
// state and is safe for concurrent use.
type Generator struct {
	compositor *render.Compositor
	fidelity   palette.Fidelity
	background render.BackgroundStyle
	captions   func() []captions.Template
	extract    func(image.Image, palette.Fidelity, *slog.Logger) (palette.Extracted, error)
	logger     *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithFidelity selects the color analyzer.
func WithFidelity(f palette.Fidelity) Option {
	return func(g *Generator) { g.fidelity = f }
}

// WithBackground sets the default background style.
func WithBackground(b render.BackgroundStyle) Option {
	return func(g *Generator) { g.background = b }
}

// WithCaptionSource replaces catalog selection, mostly for tests.
func WithCaptionSource(fn func() []captions.Template) Option {
	return func(g *Generator) { g.captions = fn }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator returns a Generator drawing captions with font.
func NewGenerator(font *opentype.Font, opts ...Option) *Generator {
	g := &Generator{
		compositor: render.NewCompositor(font),
		fidelity:   palette.FidelityRich,
		background: render.BackgroundGradient,
		captions:   func() []captions.Template { return captions.Select(nil) },
		extract:    palette.Extract,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// decode runs the source and rejects images without pixels.
func decode(ctx context.Context, src imaging.Source) (image.Image, error) {
	if src == nil {
		return nil, &DecodeError{Err: imaging.ErrNotLoaded}
	}
	img, err := src.Decode(ctx)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if img == nil || img.Bounds().Empty() {
		return nil, &DecodeError{Err: imaging.ErrNotLoaded}
	}
	return img, nil
}

// extractPalette extracts colors once for a run. Extraction failures are
// logged and replaced by FallbackPalette with dark text; they never fail the
// run.
func (g *Generator) extractPalette(img image.Image) (palette.Extracted, palette.TextColorPair, bool) {
	extracted, err := g.extract(img, g.fidelity, g.logger)
	if err != nil {
		g.logger.Warn("using fallback palette", "error", &ExtractionError{Err: err})
		return FallbackPalette, palette.DarkText, true
	}

	text := palette.TextColors(extracted.Background)
	g.logger.Debug("extracted palette",
		"primary", extracted.Primary.Hex(),
		"background", extracted.Background.Hex(),
		"text", text.TextColor.Hex())
	return extracted, text, false
}

// templates picks the captions for a request.
func (g *Generator) templates(req Request) []captions.Template {
	if req.Custom != nil {
		return []captions.Template{*req.Custom}
	}
	all := g.captions()
	n := min(clampCount(req.Count), len(all))
	return all[:n]
}

// renderAll draws every variation of a run. abort is polled between variations
// so a superseded run stops early.
func (g *Generator) renderAll(img image.Image, req Request, run *Run, abort func() error) error {
	background := req.Background
	if background == "" {
		background = g.background
	}

	for i, tmpl := range g.templates(req) {
		if err := abort(); err != nil {
			return err
		}

		style := StyleFor(i)
		g.logger.Debug("rendering variation", "index", i, "style", style, "background", background)
		encoded, err := g.compositor.Compose(render.Frame{
			Logo:       img,
			Primary:    run.Palette.Primary,
			Text:       run.Text,
			Background: background,
			Style:      style,
			TopText:    tmpl.TopText,
			BottomText: tmpl.BottomText,
		})
		if err != nil {
			return err
		}

		run.Results = append(run.Results, Result{
			ID:         resultID(i),
			FileName:   FileName(i),
			TopText:    tmpl.TopText,
			BottomText: tmpl.BottomText,
			Style:      style,
			Image:      encoded,
		})
	}
	return nil
}

// Captions draws a fresh caption list from the caption source.
func (g *Generator) Captions() []captions.Template {
	return g.captions()
}

// PaletteReport describes the colors a run would use for a logo.
type PaletteReport struct {
	Extracted     palette.Extracted     `json:"extracted"`
	FiveStop      palette.FiveStop      `json:"five_stop"`
	Text          palette.TextColorPair `json:"text"`
	ContrastRatio float64               `json:"contrast_ratio"`
	Placeholder   bool                  `json:"placeholder"`
	Fallback      bool                  `json:"fallback"`
}

// AnalyzePalette decodes src and reports its palette without rendering.
func (g *Generator) AnalyzePalette(ctx context.Context, src imaging.Source) (*PaletteReport, error) {
	img, err := decode(ctx, src)
	if err != nil {
		return nil, err
	}

	extracted, text, fallback := g.extractPalette(img)
	return &PaletteReport{
		Extracted:     extracted,
		FiveStop:      palette.Palette(extracted.Primary),
		Text:          text,
		ContrastRatio: palette.ContrastRatio(text.TextColor, extracted.Background),
		Placeholder:   render.IsPlaceholder(extracted.Primary),
		Fallback:      fallback,
	}, nil
}
