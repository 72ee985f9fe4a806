package meme

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ironsheep/memefy-mcp/internal/captions"
	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/palette"
	"github.com/ironsheep/memefy-mcp/internal/render"
)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	f, err := render.LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	opts = append([]Option{WithCaptionSource(func() []captions.Template {
		return captions.Catalog()[:8]
	})}, opts...)
	return NewGenerator(f, opts...)
}

// brandLogo is a dark blue block on a white field.
func brandLogo() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 400, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 50 && x < 350 && y >= 30 && y < 170 {
				c = color.RGBA{0x1E, 0x3A, 0x8A, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// recorder captures what a Sink receives.
type recorder struct {
	mu   sync.Mutex
	runs []*Run
}

func (r *recorder) sink(run *Run) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, run)
}

func (r *recorder) all() []*Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Run(nil), r.runs...)
}

// collect returns a sink and a getter for what it received.
func collect() (Sink, func() []*Run) {
	r := &recorder{}
	return r.sink, r.all
}

func TestGenerate_BrandLogo(t *testing.T) {
	s := NewSession(newTestGenerator(t))
	sink, got := collect()

	err := s.Generate(context.Background(), Request{
		Source: imaging.StaticSource(brandLogo()),
		Count:  3,
	}, sink)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	runs := got()
	if len(runs) != 1 {
		t.Fatalf("sink called %d times, want 1", len(runs))
	}
	run := runs[0]

	if run.Palette.Primary.Hex() != "#1E3A8A" {
		t.Errorf("primary: got %s, want #1E3A8A", run.Palette.Primary.Hex())
	}
	if run.Text != palette.TextColors(run.Palette.Background) {
		t.Errorf("text colors %+v do not follow the background", run.Text)
	}
	if run.Fallback {
		t.Error("fallback should not be used")
	}

	wantStyles := []render.Style{render.StyleClassic, render.StyleModern, render.StyleBold}
	if len(run.Results) != len(wantStyles) {
		t.Fatalf("got %d results, want %d", len(run.Results), len(wantStyles))
	}
	catalog := captions.Catalog()
	for i, r := range run.Results {
		if r.Style != wantStyles[i] {
			t.Errorf("result %d style: got %s, want %s", i, r.Style, wantStyles[i])
		}
		if r.ID != fmt.Sprintf("meme-%d", i) {
			t.Errorf("result %d id: got %s", i, r.ID)
		}
		if r.FileName != fmt.Sprintf("meme-%d.png", i+1) {
			t.Errorf("result %d file name: got %s", i, r.FileName)
		}
		if r.TopText != catalog[i].TopText || r.BottomText != catalog[i].BottomText {
			t.Errorf("result %d captions: got %q / %q", i, r.TopText, r.BottomText)
		}
		if r.Image == nil || r.Image.Width != render.Width || r.Image.Height != render.Height {
			t.Errorf("result %d image: got %+v", i, r.Image)
		}
	}
}

func TestGenerate_Count(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		captions int
		want     int
	}{
		{"zero clamps to one", 0, 8, 1},
		{"six", 6, 8, 6},
		{"above six clamps", 10, 8, 6},
		{"limited by captions", 5, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newTestGenerator(t, WithCaptionSource(func() []captions.Template {
				return captions.Catalog()[:tt.captions]
			}))
			sink, got := collect()
			err := NewSession(gen).Generate(context.Background(), Request{
				Source: imaging.StaticSource(image.NewRGBA(image.Rect(0, 0, 8, 8))),
				Count:  tt.count,
			}, sink)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			results := got()[0].Results
			if len(results) != tt.want {
				t.Fatalf("got %d results, want %d", len(results), tt.want)
			}
			for i, r := range results {
				if r.Style != StyleFor(i) {
					t.Errorf("result %d style: got %s, want %s", i, r.Style, StyleFor(i))
				}
			}
		})
	}
}

func TestGenerate_TransparentLogo(t *testing.T) {
	s := NewSession(newTestGenerator(t))
	sink, got := collect()

	err := s.Generate(context.Background(), Request{
		Source: imaging.StaticSource(image.NewNRGBA(image.Rect(0, 0, 10, 10))),
		Count:  3,
	}, sink)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	run := got()[0]
	if run.Palette.Primary != palette.RichFallback.Primary {
		t.Errorf("primary: got %v, want %v", run.Palette.Primary, palette.RichFallback.Primary)
	}
	if len(run.Results) != 3 {
		t.Errorf("got %d results, want 3", len(run.Results))
	}
}

func TestGenerate_ExtractionFailure(t *testing.T) {
	gen := newTestGenerator(t)
	gen.extract = func(image.Image, palette.Fidelity, *slog.Logger) (palette.Extracted, error) {
		return palette.Extracted{}, errors.New("sampler exploded")
	}
	sink, got := collect()

	err := NewSession(gen).Generate(context.Background(), Request{
		Source: imaging.StaticSource(brandLogo()),
		Count:  2,
	}, sink)
	if err != nil {
		t.Fatalf("extraction failure should not fail the run: %v", err)
	}

	run := got()[0]
	if !run.Fallback {
		t.Error("run should be marked as using the fallback palette")
	}
	if run.Palette != FallbackPalette {
		t.Errorf("palette: got %+v, want %+v", run.Palette, FallbackPalette)
	}
	if run.Text != palette.DarkText {
		t.Errorf("text: got %+v, want black on white stroke", run.Text)
	}
	if len(run.Results) != 2 {
		t.Errorf("got %d results, want 2", len(run.Results))
	}
}

func TestGenerate_CustomCaption(t *testing.T) {
	s := NewSession(newTestGenerator(t))
	sink, got := collect()
	custom := captions.NewCustom("When the Logo", "is On Brand")

	err := s.Generate(context.Background(), Request{
		Source: imaging.StaticSource(brandLogo()),
		Count:  5,
		Custom: &custom,
	}, sink)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	results := got()[0].Results
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].TopText != "When the Logo" || results[0].BottomText != "is On Brand" {
		t.Errorf("captions changed: %q / %q", results[0].TopText, results[0].BottomText)
	}
	if results[0].Style != render.StyleClassic {
		t.Errorf("style: got %s, want classic", results[0].Style)
	}
}

func TestGenerate_DecodeError(t *testing.T) {
	tests := []struct {
		name    string
		source  imaging.Source
		wantErr error
	}{
		{"garbage bytes", imaging.BytesSource([]byte("definitely not an image")), nil},
		{"zero dimensions", imaging.StaticSource(image.NewRGBA(image.Rect(0, 0, 0, 0))), imaging.ErrNotLoaded},
		{"no source", nil, imaging.ErrNotLoaded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, got := collect()
			err := NewSession(newTestGenerator(t)).Generate(context.Background(), Request{
				Source: tt.source,
				Count:  3,
			}, sink)

			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("got %v, want *DecodeError", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want wrapped %v", err, tt.wantErr)
			}
			if len(got()) != 0 {
				t.Error("sink must not be called on decode failure")
			}
		})
	}
}

func TestGenerate_CancelledDecode(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	block := imaging.SourceFunc(func(ctx context.Context) (image.Image, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	done := make(chan error, 1)
	go func() {
		done <- NewSession(newTestGenerator(t)).Generate(ctx, Request{Source: block, Count: 1}, nil)
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Generate did not return after cancel")
	}
}

func TestGenerate_Supersession(t *testing.T) {
	s := NewSession(newTestGenerator(t))

	started := make(chan struct{})
	release := make(chan struct{})
	slow := imaging.SourceFunc(func(ctx context.Context) (image.Image, error) {
		close(started)
		<-release
		return brandLogo(), nil
	})

	sinkA, gotA := collect()
	doneA := make(chan error, 1)
	go func() {
		doneA <- s.Generate(context.Background(), Request{Source: slow, Count: 3}, sinkA)
	}()
	<-started

	sinkB, gotB := collect()
	if err := s.Generate(context.Background(), Request{
		Source: imaging.StaticSource(brandLogo()),
		Count:  1,
	}, sinkB); err != nil {
		t.Fatalf("run B failed: %v", err)
	}
	close(release)

	select {
	case err := <-doneA:
		if !errors.Is(err, ErrSuperseded) {
			t.Errorf("run A: got %v, want ErrSuperseded", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run A did not finish")
	}

	if n := len(gotA()); n != 0 {
		t.Errorf("stale run delivered %d times", n)
	}
	runsB := gotB()
	if len(runsB) != 1 || len(runsB[0].Results) != 1 {
		t.Fatalf("run B deliveries: got %+v", runsB)
	}
	if runsB[0].Token != 2 {
		t.Errorf("run B token: got %d, want 2", runsB[0].Token)
	}
}

func TestGenerate_SessionsAreIndependent(t *testing.T) {
	gen := newTestGenerator(t)
	a, b := NewSession(gen), NewSession(gen)
	sinkA, gotA := collect()
	sinkB, gotB := collect()
	req := Request{Source: imaging.StaticSource(brandLogo()), Count: 1}

	if err := a.Generate(context.Background(), req, sinkA); err != nil {
		t.Fatalf("session a: %v", err)
	}
	if err := b.Generate(context.Background(), req, sinkB); err != nil {
		t.Fatalf("session b: %v", err)
	}
	if len(gotA()) != 1 || len(gotB()) != 1 {
		t.Error("each session should deliver its own run")
	}
}

func TestAnalyzePalette(t *testing.T) {
	gen := newTestGenerator(t)
	report, err := gen.AnalyzePalette(context.Background(), imaging.StaticSource(brandLogo()))
	if err != nil {
		t.Fatalf("AnalyzePalette failed: %v", err)
	}

	if report.Extracted.Primary.Hex() != "#1E3A8A" {
		t.Errorf("primary: got %s", report.Extracted.Primary.Hex())
	}
	if report.FiveStop != palette.Palette(report.Extracted.Primary) {
		t.Errorf("five stop: got %+v", report.FiveStop)
	}
	if report.ContrastRatio <= 1 {
		t.Errorf("contrast ratio: got %f", report.ContrastRatio)
	}
	if report.Placeholder || report.Fallback {
		t.Errorf("unexpected flags: %+v", report)
	}

	_, err = gen.AnalyzePalette(context.Background(), imaging.BytesSource(nil))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Errorf("empty upload: got %v, want *DecodeError", err)
	}
}

func TestWriteResults(t *testing.T) {
	s := NewSession(newTestGenerator(t))
	var run *Run
	err := s.Generate(context.Background(), Request{
		Source: imaging.StaticSource(brandLogo()),
		Count:  2,
	}, func(r *Run) { run = r })
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	paths, err := WriteResults(dir, run.Results)
	if err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for i, p := range paths {
		if filepath.Base(p) != fmt.Sprintf("meme-%d.png", i+1) {
			t.Errorf("path %d: got %s", i, p)
		}
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() != int64(len(run.Results[i].Image.Data)) {
			t.Errorf("%s: size %d, want %d", p, info.Size(), len(run.Results[i].Image.Data))
		}
	}
}

func TestStyleFor(t *testing.T) {
	want := []render.Style{
		render.StyleClassic, render.StyleModern, render.StyleBold,
		render.StyleClassic, render.StyleModern, render.StyleBold,
	}
	for i, w := range want {
		if got := StyleFor(i); got != w {
			t.Errorf("StyleFor(%d): got %s, want %s", i, got, w)
		}
	}
}
