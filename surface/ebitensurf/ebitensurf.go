// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitensurf draws onto an ebiten image with vector paths.
//
// Paths are tessellated with ebiten's vector package and drawn as colored
// triangles, so the image can be shown in a window by an ebiten Game. The
// target must be used from the ebiten game loop (Update or Draw), like any
// other ebiten image operation.
package ebitensurf

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/sierpinski"
)

// Target draws onto an *ebiten.Image.
type Target struct {
	dst       *ebiten.Image
	src       *ebiten.Image
	path      vector.Path
	lineWidth float32
	stroke    sierpinski.Color
	fill      sierpinski.Color

	vs []ebiten.Vertex
	is []uint16
}

var _ sierpinski.Surface = (*Target)(nil)
var _ sierpinski.FillStyler = (*Target)(nil)

// New creates a target drawing onto dst with the given outline width and
// colors.
func New(dst *ebiten.Image, lineWidth float64, stroke, fill sierpinski.Color) *Target {
	if lineWidth <= 0 {
		lineWidth = 1
	}
	src := ebiten.NewImage(1, 1)
	src.Fill(color.White)
	return &Target{
		dst:       dst,
		src:       src,
		lineWidth: float32(lineWidth),
		stroke:    stroke,
		fill:      fill,
	}
}

// Image returns the destination image.
func (t *Target) Image() *ebiten.Image { return t.dst }

// Width returns the destination width in pixels.
func (t *Target) Width() int { return t.dst.Bounds().Dx() }

// Height returns the destination height in pixels.
func (t *Target) Height() int { return t.dst.Bounds().Dy() }

// Clear fills the destination with c.
func (t *Target) Clear(c sierpinski.Color) {
	t.dst.Fill(c.RGBA())
}

// SetFillStyle implements sierpinski.FillStyler.
func (t *Target) SetFillStyle(c sierpinski.Color) { t.fill = c }

// SetStrokeStyle sets the outline color.
func (t *Target) SetStrokeStyle(c sierpinski.Color) { t.stroke = c }

// BeginPath implements sierpinski.Surface.
func (t *Target) BeginPath() { t.path = vector.Path{} }

// MoveTo implements sierpinski.Surface.
func (t *Target) MoveTo(x, y float64) { t.path.MoveTo(float32(x), float32(y)) }

// LineTo implements sierpinski.Surface.
func (t *Target) LineTo(x, y float64) { t.path.LineTo(float32(x), float32(y)) }

// ClosePath implements sierpinski.Surface.
func (t *Target) ClosePath() { t.path.Close() }

// Stroke implements sierpinski.Surface.
func (t *Target) Stroke() error {
	t.vs, t.is = t.path.AppendVerticesAndIndicesForStroke(t.vs[:0], t.is[:0], &vector.StrokeOptions{
		Width:      t.lineWidth,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	t.draw(t.stroke)
	return nil
}

// Fill implements sierpinski.Surface.
func (t *Target) Fill() error {
	t.vs, t.is = t.path.AppendVerticesAndIndicesForFilling(t.vs[:0], t.is[:0])
	t.draw(t.fill)
	return nil
}

func (t *Target) draw(c sierpinski.Color) {
	r, g, b := c.Float()
	for i := range t.vs {
		t.vs[i].SrcX = 0
		t.vs[i].SrcY = 0
		t.vs[i].ColorR = float32(r)
		t.vs[i].ColorG = float32(g)
		t.vs[i].ColorB = float32(b)
		t.vs[i].ColorA = 1
	}
	t.dst.DrawTriangles(t.vs, t.is, t.src, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
