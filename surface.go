package sierpinski

// Surface is the drawing capability the renderer needs from its host.
//
// It follows HTML canvas path semantics: BeginPath discards the current
// path, and Stroke and Fill paint the current path without consuming it, so
// a triangle may be stroked and then filled.
//
// Surfaces are NOT thread-safe. A render owns its surface for the whole call.
type Surface interface {
	// BeginPath discards the current path and starts a new one.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment to (x, y).
	LineTo(x, y float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// Stroke outlines the current path.
	Stroke() error

	// Fill paints the interior of the current path with the fill style.
	Fill() error
}

// FillStyler is implemented by surfaces that accept a per-triangle fill
// color. Surfaces without it are drawn with whatever style the host set.
type FillStyler interface {
	SetFillStyle(c Color)
}
