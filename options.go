package sierpinski

import "log/slog"

// RenderOption configures a Renderer during creation.
// Use functional options to customize rendering behavior.
//
// Example:
//
//	// Stroke-only outline of the leaves
//	r := sierpinski.NewRenderer()
//
//	// Every level, filled with random colors
//	r := sierpinski.NewRenderer(
//		sierpinski.WithPolicy(sierpinski.DrawEveryLevel),
//		sierpinski.WithPaint(sierpinski.PaintStrokeFill),
//		sierpinski.WithColors(sierpinski.NewRandSource(42)),
//	)
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Renderer creation.
type renderOptions struct {
	policy    Policy
	paint     PaintMode
	colors    ColorSource
	colorMode ColorMode
	traversal Traversal
	logger    *slog.Logger
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		policy:    DrawLeavesOnly,
		paint:     PaintStroke,
		colorMode: ColorPerChild,
		traversal: TraverseRecursive,
	}
}

// WithPolicy sets which levels of the tree are drawn.
func WithPolicy(p Policy) RenderOption {
	return func(o *renderOptions) {
		o.policy = p
	}
}

// WithPaint sets whether triangles are stroked only or stroked and filled.
func WithPaint(m PaintMode) RenderOption {
	return func(o *renderOptions) {
		o.paint = m
	}
}

// WithColors enables per-triangle fill colors drawn from src.
// Passing nil disables coloring.
//
// The source is called from the rendering goroutine only, but a Renderer
// shared between goroutines shares its source too; give each goroutine its
// own Renderer when the source is stateful.
func WithColors(src ColorSource) RenderOption {
	return func(o *renderOptions) {
		o.colors = src
	}
}

// WithColorMode sets how children are colored when a ColorSource is set.
// It has no effect for a LevelSource.
func WithColorMode(m ColorMode) RenderOption {
	return func(o *renderOptions) {
		o.colorMode = m
	}
}

// WithTraversal sets how the subdivision tree is walked.
func WithTraversal(t Traversal) RenderOption {
	return func(o *renderOptions) {
		o.traversal = t
	}
}

// WithLogger sets a logger for this renderer only. Without it the renderer
// logs to the package logger (see SetLogger).
func WithLogger(l *slog.Logger) RenderOption {
	return func(o *renderOptions) {
		o.logger = l
	}
}
