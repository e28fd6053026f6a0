package sierpinski

import (
	"errors"
	"fmt"
	"log/slog"
)

// Errors returned by Render.
var (
	// ErrNilSurface is returned when Render is called without a surface.
	ErrNilSurface = errors.New("sierpinski: nil surface")

	// ErrNegativeDepth is returned for depths below zero.
	ErrNegativeDepth = errors.New("sierpinski: negative depth")
)

// Stats summarizes a completed render.
type Stats struct {
	Draws  int // Triangles drawn
	Leaves int // Triangles visited at depth 0
	Depth  int // Requested depth
}

// Renderer draws Sierpinski triangles onto a Surface.
//
// A Renderer is immutable after NewRenderer and holds no per-render state,
// so one Renderer may render any number of times. The configured
// ColorSource, if any, is the only state that advances between renders.
type Renderer struct {
	opts renderOptions
}

// NewRenderer creates a renderer. Without options it strokes the 3^d leaf
// triangles without color.
func NewRenderer(opts ...RenderOption) *Renderer {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Renderer{opts: options}
}

// Policy returns the configured draw policy.
func (r *Renderer) Policy() Policy { return r.opts.policy }

// Paint returns the configured paint mode.
func (r *Renderer) Paint() PaintMode { return r.opts.paint }

// Traversal returns the configured traversal.
func (r *Renderer) Traversal() Traversal { return r.opts.traversal }

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// Render draws root subdivided to depth levels onto s.
//
// When a ColorSource is configured and root carries no color, root is
// colored with the first sample. Rendering stops at the first Stroke or
// Fill error from the surface; that error is returned wrapped, together
// with the stats of the triangles drawn so far.
func (r *Renderer) Render(s Surface, root Triangle, depth int) (Stats, error) {
	if s == nil {
		return Stats{}, ErrNilSurface
	}
	if depth < 0 {
		return Stats{}, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	if r.opts.colors != nil && !root.Colored {
		if ls, ok := r.opts.colors.(LevelSource); ok {
			root = root.WithColor(ls.LevelColor(0))
		} else {
			root = root.WithColor(r.opts.colors.NextColor())
		}
	}

	log := r.logger()
	log.Debug("sierpinski: render start",
		"policy", r.opts.policy,
		"paint", r.opts.paint,
		"traversal", r.opts.traversal,
		"depth", depth,
		"expected", DrawCount(r.opts.policy, depth))

	w := &walker{r: r, s: s, stats: Stats{Depth: depth}}
	var err error
	if r.opts.traversal == TraverseStack {
		err = w.iterate(root, depth)
	} else {
		err = w.recurse(root, depth)
	}
	if err != nil {
		log.Debug("sierpinski: render aborted", "draws", w.stats.Draws, "err", err)
		return w.stats, err
	}

	log.Debug("sierpinski: render done", "draws", w.stats.Draws, "leaves", w.stats.Leaves)
	return w.stats, nil
}

// walker carries the state of one render.
type walker struct {
	r     *Renderer
	s     Surface
	stats Stats
}

func (w *walker) recurse(t Triangle, depth int) error {
	if err := w.visit(t, depth); err != nil {
		return err
	}
	if depth == 0 {
		return nil
	}
	for _, c := range w.r.children(t, w.stats.Depth-depth+1) {
		if err := w.recurse(c, depth-1); err != nil {
			return err
		}
	}
	return nil
}

// iterate is recurse with an explicit stack. Children are pushed in
// reverse so they pop in the same order recursion visits them.
func (w *walker) iterate(root Triangle, depth int) error {
	type frame struct {
		t     Triangle
		depth int
	}
	stack := make([]frame, 0, 2*depth+1)
	stack = append(stack, frame{root, depth})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := w.visit(f.t, f.depth); err != nil {
			return err
		}
		if f.depth == 0 {
			continue
		}
		c := w.r.children(f.t, w.stats.Depth-f.depth+1)
		for i := len(c) - 1; i >= 0; i-- {
			stack = append(stack, frame{c[i], f.depth - 1})
		}
	}
	return nil
}

// visit draws t if the policy calls for it at this depth.
func (w *walker) visit(t Triangle, depth int) error {
	if depth == 0 {
		w.stats.Leaves++
	}
	if depth != 0 && w.r.opts.policy != DrawEveryLevel {
		return nil
	}
	if err := DrawTriangle(w.s, t, w.r.opts.paint); err != nil {
		return fmt.Errorf("sierpinski: draw %d: %w", w.stats.Draws, err)
	}
	w.stats.Draws++
	return nil
}

// children subdivides t and colors the children, which sit at level, from
// the configured source.
func (r *Renderer) children(t Triangle, level int) [3]Triangle {
	top, left, right := Subdivide(t)
	c := [3]Triangle{top, left, right}
	if r.opts.colors == nil {
		return c
	}
	if ls, ok := r.opts.colors.(LevelSource); ok {
		col := ls.LevelColor(level)
		for i := range c {
			c[i] = c[i].WithColor(col)
		}
		return c
	}
	switch r.opts.colorMode {
	case ColorPerGeneration:
		col := r.opts.colors.NextColor()
		for i := range c {
			c[i] = c[i].WithColor(col)
		}
	default:
		for i := range c {
			c[i] = c[i].WithColor(r.opts.colors.NextColor())
		}
	}
	return c
}

// DrawTriangle issues the path for t to s and paints it.
//
// The sequence is: SetFillStyle (if t is colored and s is a FillStyler),
// BeginPath, MoveTo the first point, LineTo the second, third and first
// points, ClosePath, Stroke, and Fill when paint is PaintStrokeFill.
func DrawTriangle(s Surface, t Triangle, paint PaintMode) error {
	if t.Colored {
		if fs, ok := s.(FillStyler); ok {
			fs.SetFillStyle(t.Color)
		}
	}

	p0, p1, p2 := t.Points[0], t.Points[1], t.Points[2]
	s.BeginPath()
	s.MoveTo(p0.X, p0.Y)
	s.LineTo(p1.X, p1.Y)
	s.LineTo(p2.X, p2.Y)
	s.LineTo(p0.X, p0.Y)
	s.ClosePath()

	if err := s.Stroke(); err != nil {
		return err
	}
	if paint == PaintStrokeFill {
		return s.Fill()
	}
	return nil
}
