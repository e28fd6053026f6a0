// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display renders onto tinygo.org/x/drivers displays.
//
// Drawing is rasterized in memory at the panel's resolution; Flush pushes
// every pixel to the panel with SetPixel and then calls Display. Panels
// that only support SetPixel, such as SPI LCDs driven from a
// microcontroller, can therefore show the fractal without a path API.
//
// Framebuffer is a host-side Displayer over an image, optionally quantized
// to RGB565 like most small panels. Importing the package registers the
// "display" backend, which renders into a Framebuffer.
package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
	"github.com/gogpu/sierpinski/surface/ggctx"
)

// Name is the registry name of this backend.
const Name = "display"

// OptionRGB565 is the surface.Options.Custom key enabling RGB565
// quantization of the registry-created framebuffer.
const OptionRGB565 = "display.rgb565"

// ErrNoDisplay is returned when the display reports a zero size.
var ErrNoDisplay = errors.New("display: display has zero size")

// ErrTooLarge is returned for framebuffer sizes that do not fit the int16
// coordinates of drivers.Displayer.
var ErrTooLarge = errors.New("display: size exceeds int16 coordinates")

func init() {
	surface.Register(Name, 1, func(opts surface.Options) (surface.Target, error) {
		if opts.Width > math.MaxInt16 || opts.Height > math.MaxInt16 {
			return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, opts.Width, opts.Height)
		}
		fb := NewFramebuffer(opts.Width, opts.Height, opts.Bool(OptionRGB565, false))
		return New(fb, opts)
	}, nil)
}

// Target draws onto a drivers.Displayer.
type Target struct {
	*ggctx.Target

	d       drivers.Displayer
	stroke  sierpinski.Color
	caption string
}

var _ surface.Target = (*Target)(nil)
var _ surface.Captioner = (*Target)(nil)

// New creates a target for d. opts.Width and opts.Height are ignored; the
// target always matches the display size.
func New(d drivers.Displayer, opts surface.Options) (*Target, error) {
	w, h := d.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrNoDisplay
	}
	opts.Width, opts.Height = int(w), int(h)
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	return &Target{
		Target: ggctx.NewWithOptions(opts),
		d:      d,
		stroke: opts.Stroke,
	}, nil
}

// Display returns the underlying display.
func (t *Target) Display() drivers.Displayer { return t.d }

// SetStrokeStyle sets the outline and caption color.
func (t *Target) SetStrokeStyle(c sierpinski.Color) {
	t.stroke = c
	t.Target.SetStrokeStyle(c)
}

// Caption sets a label written with the TomThumb font on every Flush,
// on top of the drawing.
func (t *Target) Caption(s string) error {
	t.caption = s
	return nil
}

// Flush copies the raster to the display and presents it.
func (t *Target) Flush() error {
	if err := t.Target.Flush(); err != nil {
		return err
	}
	img := t.Target.Snapshot()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.d.SetPixel(int16(x), int16(y), img.RGBAAt(x, y))
		}
	}
	if t.caption != "" {
		// centered on the first text row; TomThumb glyphs are 6px tall
		inner, _ := tinyfont.LineWidth(&tinyfont.TomThumb, t.caption)
		x := (int16(b.Dx()) - int16(inner)) / 2
		if x < 0 {
			x = 0
		}
		tinyfont.WriteLine(t.d, &tinyfont.TomThumb, x, 6, t.caption, t.stroke.RGBA())
	}
	return t.d.Display()
}

// Snapshot returns what the display shows when it can be read back
// (Framebuffer can), otherwise the in-memory raster.
func (t *Target) Snapshot() *image.RGBA {
	if r, ok := t.d.(interface{ Image() *image.RGBA }); ok {
		if err := t.Flush(); err != nil {
			sierpinski.Logger().Warn("display: flush before snapshot failed", "err", err)
		}
		src := r.Image()
		dst := image.NewRGBA(src.Bounds())
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	return t.Target.Snapshot()
}

// Framebuffer is an in-memory drivers.Displayer.
type Framebuffer struct {
	img      *image.RGBA
	rgb565   bool
	presents int
}

var _ drivers.Displayer = (*Framebuffer)(nil)

// NewFramebuffer creates a width x height framebuffer. With rgb565 set,
// pixels are quantized to 5-6-5 bits on write. Both sizes must be at most
// math.MaxInt16.
func NewFramebuffer(width, height int, rgb565 bool) *Framebuffer {
	return &Framebuffer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		rgb565: rgb565,
	}
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. Out-of-range pixels are ignored.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(f.img.Bounds()) {
		return
	}
	if f.rgb565 {
		c = quantize565(c)
	}
	c.A = 0xff
	f.img.SetRGBA(int(x), int(y), c)
}

// Display implements drivers.Displayer.
func (f *Framebuffer) Display() error {
	f.presents++
	return nil
}

// Presents returns how many times Display was called.
func (f *Framebuffer) Presents() int { return f.presents }

// Image returns the framebuffer contents. The image is shared, not copied.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// quantize565 drops the low bits each channel loses in RGB565 and expands
// the result back to 8 bits.
func quantize565(c color.RGBA) color.RGBA {
	r := c.R >> 3
	g := c.G >> 2
	b := c.B >> 3
	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: c.A,
	}
}
