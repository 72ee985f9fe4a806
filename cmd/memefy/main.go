package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/memefy-mcp/internal/captions"
	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/meme"
	"github.com/ironsheep/memefy-mcp/internal/palette"
	"github.com/ironsheep/memefy-mcp/internal/render"
	"github.com/ironsheep/memefy-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Globals are shared by every command.
type Globals struct {
	LogLevel   string `help:"Log level written to stderr" enum:"debug,info,warn,error" default:"info" env:"MEMEFY_LOG_LEVEL"`
	Font       string `help:"TrueType/OpenType font for captions (default: built-in Go Bold)" type:"existingfile" env:"MEMEFY_FONT"`
	Fidelity   string `help:"Color analyzer: rich or simple" enum:"rich,simple" default:"rich" env:"MEMEFY_FIDELITY"`
	Background string `help:"Default background style" enum:"gradient,pattern,solid" default:"gradient" env:"MEMEFY_BACKGROUND"`

	logger *slog.Logger `kong:"-"`
}

// generator builds a meme.Generator from the global flags.
func (g *Globals) generator() (*meme.Generator, error) {
	f, err := render.LoadFont(g.Font)
	if err != nil {
		return nil, err
	}
	fidelity, err := palette.ParseFidelity(g.Fidelity)
	if err != nil {
		return nil, err
	}
	background, err := render.ParseBackgroundStyle(g.Background)
	if err != nil {
		return nil, err
	}
	return meme.NewGenerator(f,
		meme.WithFidelity(fidelity),
		meme.WithBackground(background),
		meme.WithLogger(g.logger),
	), nil
}

type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	gen, err := g.generator()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g.logger.Debug("starting MCP server", "version", Version, "built", BuildTime, "commit", GitCommit)
	return server.New(gen, g.logger, Version).Run(ctx)
}

type GenerateCmd struct {
	Logo       string `arg:"" help:"Logo file (PNG, JPG, SVG, GIF, WebP, BMP, TIFF)" type:"existingfile"`
	Count      int    `help:"Number of variations" default:"3"`
	Top        string `help:"Custom top caption. Setting either caption renders exactly one meme"`
	Bottom     string `help:"Custom bottom caption"`
	Bg         string `help:"Background style for this run: gradient, pattern or solid (overrides --background)" name:"bg"`
	Out        string `help:"Output directory for meme-<n>.png files" default:"." type:"path"`
}

func (c *GenerateCmd) Validate() error {
	if c.Count < meme.MinCount || c.Count > meme.MaxCount {
		return fmt.Errorf("count must be between %d and %d, got %d", meme.MinCount, meme.MaxCount, c.Count)
	}
	if c.Bg != "" {
		if _, err := render.ParseBackgroundStyle(c.Bg); err != nil {
			return err
		}
	}
	return nil
}

func (c *GenerateCmd) Run(g *Globals) error {
	if _, err := imaging.ValidateUpload(c.Logo); err != nil {
		return err
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}

	req := meme.Request{
		Source:     imaging.FileSource(imaging.NewImageCache(), c.Logo),
		Count:      c.Count,
		Background: render.BackgroundStyle(c.Bg),
	}
	if custom := captions.NewCustom(captions.Clamp(c.Top), captions.Clamp(c.Bottom)); !custom.IsBlank() {
		req.Custom = &custom
	}

	var run *meme.Run
	if err := meme.NewSession(gen).Generate(context.Background(), req, func(r *meme.Run) { run = r }); err != nil {
		return err
	}
	if run.Fallback {
		g.logger.Warn("color extraction failed, used fallback palette")
	}

	paths, err := meme.WriteResults(c.Out, run.Results)
	if err != nil {
		return err
	}
	for i, p := range paths {
		r := run.Results[i]
		g.logger.Info("wrote meme", "path", p, "style", r.Style, "top", r.TopText, "bottom", r.BottomText)
	}
	return nil
}

type PaletteCmd struct {
	Logo string `arg:"" help:"Logo file to analyze" type:"existingfile"`
}

func (c *PaletteCmd) Run(g *Globals) error {
	if _, err := imaging.ValidateUpload(c.Logo); err != nil {
		return err
	}
	gen, err := g.generator()
	if err != nil {
		return err
	}

	report, err := gen.AnalyzePalette(context.Background(), imaging.FileSource(imaging.NewImageCache(), c.Logo))
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("memefy %s\n", Version)
	fmt.Printf("  Build time: %s\n", BuildTime)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	return nil
}

type CLI struct {
	Globals

	Serve    ServeCmd    `cmd:"" default:"1" help:"Run the MCP server on stdin/stdout (default)"`
	Generate GenerateCmd `cmd:"" help:"Render meme variations of a logo into a directory"`
	Palette  PaletteCmd  `cmd:"" help:"Print the palette a logo would produce as JSON"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("memefy"),
		kong.Description("Turn a brand logo into captioned meme images. Runs as an MCP server by default."),
		kong.UsageOnError(),
	)

	// stdout is reserved for the MCP protocol, so logs go to stderr.
	cli.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(cli.LogLevel)}))

	if err := kctx.Run(&cli.Globals); err != nil {
		cli.logger.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
