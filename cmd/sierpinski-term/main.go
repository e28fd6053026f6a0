// Command sierpinski-term draws a Sierpinski triangle in the terminal.
//
// The triangle is rendered once from the flags. q, Escape or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
	"github.com/gogpu/sierpinski/surface/term"
)

func main() {
	var (
		depth   = flag.Int("depth", 4, "subdivision depth")
		seed    = flag.Uint64("seed", 1, "color seed")
		colored = flag.Bool("color", true, "fill with random colors")
	)
	flag.Parse()
	if *depth < 0 {
		log.Fatalf("sierpinski-term: negative depth %d", *depth)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("sierpinski-term: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("sierpinski-term: %v", err)
	}

	err = draw(screen, *depth, *seed, *colored)
	if err == nil {
		wait(screen)
	}
	screen.Fini()
	if err != nil {
		log.Fatalf("sierpinski-term: %v", err)
	}
}

// wait blocks until the user quits. A resize repaints the cells already
// drawn.
func wait(screen tcell.Screen) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case nil:
			return
		}
	}
}

func draw(screen tcell.Screen, depth int, seed uint64, colored bool) error {
	t, err := term.New(screen, surface.DefaultOptions(1, 1))
	if err != nil {
		return err
	}
	defer func() { _ = t.Close() }()

	var opts []sierpinski.RenderOption
	if colored {
		opts = append(opts,
			sierpinski.WithPaint(sierpinski.PaintStrokeFill),
			sierpinski.WithColors(sierpinski.NewRandSource(seed)))
	}
	stats, err := sierpinski.NewRenderer(opts...).
		Render(t, sierpinski.Root(float64(t.Width()), float64(t.Height())), depth)
	if err != nil {
		return err
	}
	_ = t.Caption(fmt.Sprintf("depth %d: %d triangles  [q] quit", depth, stats.Draws))
	return t.Flush()
}
