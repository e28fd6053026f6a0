// Command sierpinski-view shows a Sierpinski triangle in a window.
//
// The triangle is rendered once from the flags. Escape or closing the
// window quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface/ebitensurf"
)

type viewer struct {
	width, height int
	depth         int
	seed          uint64
	policy        sierpinski.Policy
	colored       bool

	canvas *ebiten.Image
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if v.canvas == nil {
		return v.render()
	}
	return nil
}

func (v *viewer) render() error {
	v.canvas = ebiten.NewImage(v.width, v.height)
	t := ebitensurf.New(v.canvas, 1, sierpinski.Black, sierpinski.White)
	t.Clear(sierpinski.White)

	opts := []sierpinski.RenderOption{sierpinski.WithPolicy(v.policy)}
	if v.colored {
		opts = append(opts,
			sierpinski.WithPaint(sierpinski.PaintStrokeFill),
			sierpinski.WithColors(sierpinski.NewHueSource(v.seed, 0.7, 0.95)))
	}
	stats, err := sierpinski.NewRenderer(opts...).Render(t, sierpinski.Root(float64(v.width), float64(v.height)), v.depth)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(fmt.Sprintf("Sierpinski: depth %d, %d triangles", v.depth, stats.Draws))
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.canvas != nil {
		screen.DrawImage(v.canvas, nil)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func main() {
	var (
		width   = flag.Int("width", 600, "window width")
		height  = flag.Int("height", 600, "window height")
		depth   = flag.Int("depth", 6, "subdivision depth")
		policy  = flag.String("policy", "leaves", "draw policy: leaves, every-level")
		seed    = flag.Uint64("seed", 1, "color seed")
		colored = flag.Bool("color", false, "fill with random hues")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		sierpinski.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p, err := sierpinski.ParsePolicy(*policy)
	if err != nil {
		log.Fatalf("sierpinski-view: %v", err)
	}
	if *width <= 0 || *height <= 0 || *depth < 0 {
		log.Fatalf("sierpinski-view: invalid size %dx%d or depth %d", *width, *height, *depth)
	}

	v := &viewer{
		width:   *width,
		height:  *height,
		depth:   *depth,
		seed:    *seed,
		policy:  p,
		colored: *colored,
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Sierpinski")
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("sierpinski-view: %v", err)
	}
}
