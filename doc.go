// Package sierpinski renders the Sierpinski triangle by recursive midpoint
// subdivision onto an abstract 2D drawing surface.
//
// # Overview
//
// The package has two parts. Subdivide splits a triangle into the three
// corner triangles formed by its edge midpoints, leaving the middle one
// undrawn. A Renderer walks the subdivision tree to a caller-supplied depth
// and issues canvas-style drawing commands (BeginPath, MoveTo, LineTo,
// ClosePath, Stroke, Fill) to a Surface owned by the host.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/sierpinski"
//		"github.com/gogpu/sierpinski/surface/ggctx"
//	)
//
//	s := ggctx.New(600, 600)
//	r := sierpinski.NewRenderer(
//		sierpinski.WithPolicy(sierpinski.DrawEveryLevel),
//		sierpinski.WithPaint(sierpinski.PaintStrokeFill),
//		sierpinski.WithColors(sierpinski.NewRandSource(1)),
//	)
//	if _, err := r.Render(s, sierpinski.Root(600, 600), 6); err != nil {
//		// the surface failed to stroke or fill
//	}
//	_ = s.SavePNG("sierpinski.png")
//
// # Policies
//
// DrawLeavesOnly draws only the 3^d triangles at the final depth.
// DrawEveryLevel draws every node of the tree, (3^(d+1)-1)/2 triangles in
// total, so deeper levels paint over shallower ones. Use DrawCount to size
// buffers or report progress.
//
// # Surfaces
//
// The core depends on nothing but the Surface interface. Backends live in
// sub-packages of surface/: a software raster context (ggctx), a command
// recorder (vector), tinygo displays (display), terminals (term), ebiten
// windows (ebitensurf) and an in-memory trace for tests (trace).
//
// # Coordinate System
//
// Coordinates are passed to the surface untouched. With the default Root the
// apex is at the top edge and the base along the bottom edge, matching the
// usual top-left origin with Y increasing down.
package sierpinski

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
