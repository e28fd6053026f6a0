// Command sierpinski renders a Sierpinski triangle to a PNG file.
//
// Usage:
//
//	sierpinski -depth 6 -colors hue -paint stroke-fill -output out.png
//	sierpinski -backend recording -policy every-level -depth 4
//	sierpinski -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
	_ "github.com/gogpu/sierpinski/surface/display"
	_ "github.com/gogpu/sierpinski/surface/ggctx"
	_ "github.com/gogpu/sierpinski/surface/vector"
)

type config struct {
	width, height int
	depth         int
	policy        string
	paint         string
	colors        string
	colorMode     string
	traversal     string
	seed          uint64
	from, to      string
	backend       string
	output        string
	caption       bool
	lineWidth     float64
	verbose       bool
	list          bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	sierpinski.SetLogger(logger)
	gg.SetLogger(logger)

	if cfg.list {
		for _, name := range surface.Available() {
			e, _ := surface.Get(name)
			fmt.Printf("%-10s priority %d\n", name, e.Priority)
		}
		return
	}

	if err := run(cfg); err != nil {
		log.Fatalf("sierpinski: %v", err)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("sierpinski", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", 600, "image width")
	fs.IntVar(&cfg.height, "height", 600, "image height")
	fs.IntVar(&cfg.depth, "depth", 6, "subdivision depth")
	fs.StringVar(&cfg.policy, "policy", "leaves", "draw policy: leaves, every-level")
	fs.StringVar(&cfg.paint, "paint", "stroke", "paint mode: stroke, stroke-fill")
	fs.StringVar(&cfg.colors, "colors", "none", "color source: none, rand, hue, gradient (one color per level)")
	fs.StringVar(&cfg.colorMode, "color-mode", "per-child", "color mode: per-child, per-generation")
	fs.StringVar(&cfg.traversal, "traversal", "recursive", "traversal: recursive, stack")
	fs.Uint64Var(&cfg.seed, "seed", 1, "color source seed")
	fs.StringVar(&cfg.from, "from", "#1e3c72", "gradient start color")
	fs.StringVar(&cfg.to, "to", "#f7b733", "gradient end color")
	fs.StringVar(&cfg.backend, "backend", "", "target backend (default: best available)")
	fs.StringVar(&cfg.output, "output", "sierpinski.png", "output file")
	fs.BoolVar(&cfg.caption, "caption", false, "draw a caption with the depth and policy")
	fs.Float64Var(&cfg.lineWidth, "line-width", 1, "outline width in pixels")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.list, "list", false, "list available backends and exit")
	err := fs.Parse(args)
	return cfg, err
}

func run(cfg config) error {
	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}

	topts := surface.DefaultOptions(cfg.width, cfg.height)
	topts.LineWidth = cfg.lineWidth
	var t surface.Target
	if cfg.backend == "" {
		t, err = surface.New(topts)
	} else {
		t, err = surface.NewByName(cfg.backend, topts)
	}
	if err != nil {
		return err
	}
	defer func() { _ = t.Close() }()

	r := sierpinski.NewRenderer(opts...)
	stats, err := r.Render(t, sierpinski.Root(float64(t.Width()), float64(t.Height())), cfg.depth)
	if err != nil {
		return err
	}

	if cfg.caption {
		if c, ok := t.(surface.Captioner); ok {
			if err := c.Caption(fmt.Sprintf("depth %d, %s", cfg.depth, r.Policy())); err != nil {
				return err
			}
		} else {
			sierpinski.Logger().Warn("backend cannot draw captions", "backend", cfg.backend)
		}
	}

	if err := surface.SavePNG(cfg.output, t); err != nil {
		return fmt.Errorf("save %s: %w", cfg.output, err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("%d triangles drawn (%d leaves, depth %d) to %s\n",
		stats.Draws, stats.Leaves, stats.Depth, cfg.output)
	return nil
}

func renderOptions(cfg config) ([]sierpinski.RenderOption, error) {
	policy, err := sierpinski.ParsePolicy(cfg.policy)
	if err != nil {
		return nil, err
	}
	paint, err := sierpinski.ParsePaintMode(cfg.paint)
	if err != nil {
		return nil, err
	}
	mode, err := sierpinski.ParseColorMode(cfg.colorMode)
	if err != nil {
		return nil, err
	}
	traversal, err := sierpinski.ParseTraversal(cfg.traversal)
	if err != nil {
		return nil, err
	}
	src, err := colorSource(cfg)
	if err != nil {
		return nil, err
	}
	return []sierpinski.RenderOption{
		sierpinski.WithPolicy(policy),
		sierpinski.WithPaint(paint),
		sierpinski.WithColorMode(mode),
		sierpinski.WithTraversal(traversal),
		sierpinski.WithColors(src),
	}, nil
}

func colorSource(cfg config) (sierpinski.ColorSource, error) {
	switch strings.ToLower(cfg.colors) {
	case "", "none":
		return nil, nil
	case "rand", "random":
		return sierpinski.NewRandSource(cfg.seed), nil
	case "hue":
		return sierpinski.NewHueSource(cfg.seed, 0.7, 0.95), nil
	case "gradient":
		from, err := sierpinski.ParseHex(cfg.from)
		if err != nil {
			return nil, err
		}
		to, err := sierpinski.ParseHex(cfg.to)
		if err != nil {
			return nil, err
		}
		return sierpinski.Levels(sierpinski.Gradient(from, to, cfg.depth+1)), nil
	}
	return nil, errors.New("unknown color source: " + cfg.colors)
}
