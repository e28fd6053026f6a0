// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggctx provides a software raster target backed by a gogpu/gg
// Context.
//
// Importing the package registers the "context" backend with the surface
// registry:
//
//	import _ "github.com/gogpu/sierpinski/surface/ggctx"
//
// gg's Fill and Stroke consume the current path; this target maps the
// canvas model onto FillPreserve and StrokePreserve so a triangle can be
// stroked and then filled, and maps BeginPath onto ClearPath.
package ggctx

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
)

// Name is the registry name of this backend.
const Name = "context"

func init() {
	surface.Register(Name, 10, func(opts surface.Options) (surface.Target, error) {
		return NewWithOptions(opts), nil
	}, nil)
}

// Target draws onto a gg.Context.
type Target struct {
	dc     *gg.Context
	owned  bool
	stroke sierpinski.Color
	fill   sierpinski.Color
	closed bool
}

var _ surface.Target = (*Target)(nil)
var _ surface.Captioner = (*Target)(nil)

// New creates a width x height target with default options.
func New(width, height int) *Target {
	return NewWithOptions(surface.DefaultOptions(width, height))
}

// NewWithOptions creates a target with its own gg.Context, cleared to
// opts.Background.
func NewWithOptions(opts surface.Options) *Target {
	t := Wrap(gg.NewContext(opts.Width, opts.Height), opts)
	t.owned = true
	t.Clear(opts.Background)
	return t
}

// Wrap adapts an existing context. The context is not cleared, and Close
// does not close it.
func Wrap(dc *gg.Context, opts surface.Options) *Target {
	lw := opts.LineWidth
	if lw <= 0 {
		lw = 1
	}
	dc.SetLineWidth(lw)
	dc.SetLineJoin(gg.LineJoinMiter)
	return &Target{dc: dc, stroke: opts.Stroke, fill: opts.Fill}
}

// Context returns the underlying gg context.
func (t *Target) Context() *gg.Context { return t.dc }

// Width implements surface.Target.
func (t *Target) Width() int { return t.dc.Width() }

// Height implements surface.Target.
func (t *Target) Height() int { return t.dc.Height() }

// Clear implements surface.Target.
func (t *Target) Clear(c sierpinski.Color) {
	t.dc.ClearPath()
	t.dc.ClearWithColor(toRGBA(c))
}

// SetFillStyle implements sierpinski.FillStyler.
func (t *Target) SetFillStyle(c sierpinski.Color) { t.fill = c }

// SetStrokeStyle sets the outline color.
func (t *Target) SetStrokeStyle(c sierpinski.Color) { t.stroke = c }

// BeginPath implements sierpinski.Surface.
func (t *Target) BeginPath() { t.dc.ClearPath() }

// MoveTo implements sierpinski.Surface.
func (t *Target) MoveTo(x, y float64) { t.dc.MoveTo(x, y) }

// LineTo implements sierpinski.Surface.
func (t *Target) LineTo(x, y float64) { t.dc.LineTo(x, y) }

// ClosePath implements sierpinski.Surface.
func (t *Target) ClosePath() { t.dc.ClosePath() }

// Stroke implements sierpinski.Surface.
func (t *Target) Stroke() error {
	t.dc.SetColor(t.stroke.RGBA())
	if err := t.dc.StrokePreserve(); err != nil {
		return fmt.Errorf("ggctx: stroke: %w", err)
	}
	return nil
}

// Fill implements sierpinski.Surface.
func (t *Target) Fill() error {
	t.dc.SetColor(t.fill.RGBA())
	if err := t.dc.FillPreserve(); err != nil {
		return fmt.Errorf("ggctx: fill: %w", err)
	}
	return nil
}

// Flush pushes pending GPU work, if an accelerator is registered.
func (t *Target) Flush() error {
	return t.dc.FlushGPU()
}

// Snapshot implements surface.Target.
func (t *Target) Snapshot() *image.RGBA {
	_ = t.dc.FlushGPU()
	src := t.dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, t.Width(), t.Height()))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// EncodePNG writes the current image as PNG.
func (t *Target) EncodePNG(w io.Writer) error {
	_ = t.dc.FlushGPU()
	return t.dc.EncodePNG(w)
}

// SavePNG writes the current image to a PNG file.
func (t *Target) SavePNG(path string) error {
	return t.dc.SavePNG(path)
}

// Caption draws s in the top-left corner in Go Regular, sized to the target.
func (t *Target) Caption(s string) error {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("ggctx: caption font: %w", err)
	}
	defer func() { _ = src.Close() }()

	// text is rasterized on the CPU; queued GPU shapes must land first
	if err := t.dc.FlushGPU(); err != nil {
		return fmt.Errorf("ggctx: caption: %w", err)
	}

	size := math.Max(10, float64(t.Height())/40)
	t.dc.ClearPath()
	t.dc.SetFont(src.Face(size))
	t.dc.SetColor(t.stroke.RGBA())
	t.dc.DrawString(s, size/2, size*1.25)
	t.dc.SetFont(nil)
	return nil
}

// Close implements surface.Target. It closes the context only if the
// target created it.
func (t *Target) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.owned {
		return t.dc.Close()
	}
	return nil
}

func toRGBA(c sierpinski.Color) gg.RGBA {
	r, g, b := c.Float()
	return gg.RGB(r, g, b)
}
