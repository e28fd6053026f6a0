// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package term renders onto a terminal through gdamore/tcell.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block rune: the foreground color is the top pixel and the background
// color the bottom one. Drawing is rasterized by a gg context of
// cols x 2*rows pixels and converted to cells on Flush.
package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
	"github.com/gogpu/sierpinski/surface/ggctx"
)

// HalfBlock is the rune drawn in every cell.
const HalfBlock = '▀'

// ErrNoScreen is returned when the screen is nil or has no cells.
var ErrNoScreen = errors.New("term: screen has zero size")

// Target draws onto a tcell screen.
type Target struct {
	*ggctx.Target

	screen  tcell.Screen
	cols    int
	rows    int
	stroke  sierpinski.Color
	caption string
}

var _ surface.Target = (*Target)(nil)
var _ surface.Captioner = (*Target)(nil)

// New creates a target covering the whole screen. The screen must already
// be initialized. opts.Width and opts.Height are ignored; the raster is
// cols x 2*rows pixels.
func New(screen tcell.Screen, opts surface.Options) (*Target, error) {
	if screen == nil {
		return nil, ErrNoScreen
	}
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, ErrNoScreen
	}
	opts.Width, opts.Height = cols, 2*rows
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	return &Target{
		Target: ggctx.NewWithOptions(opts),
		screen: screen,
		cols:   cols,
		rows:   rows,
		stroke: opts.Stroke,
	}, nil
}

// Screen returns the underlying screen.
func (t *Target) Screen() tcell.Screen { return t.screen }

// Cells returns the screen size in cells.
func (t *Target) Cells() (cols, rows int) { return t.cols, t.rows }

// SetStrokeStyle sets the outline and caption color.
func (t *Target) SetStrokeStyle(c sierpinski.Color) {
	t.stroke = c
	t.Target.SetStrokeStyle(c)
}

// Caption sets a label written into the top row on every Flush.
func (t *Target) Caption(s string) error {
	t.caption = s
	return nil
}

// Flush converts the raster to half-block cells and shows the screen.
func (t *Target) Flush() error {
	if err := t.Target.Flush(); err != nil {
		return err
	}
	img := t.Target.Snapshot()
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			top := img.RGBAAt(col, 2*row)
			bottom := img.RGBAAt(col, 2*row+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(col, row, HalfBlock, nil, style)
		}
	}
	if t.caption != "" {
		bg := img.RGBAAt(0, 1)
		t.drawCaption(bg.R, bg.G, bg.B)
	}
	t.screen.Show()
	return nil
}

// drawCaption writes the caption on row 0 over the given background.
func (t *Target) drawCaption(r, g, b uint8) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(t.stroke.R), int32(t.stroke.G), int32(t.stroke.B))).
		Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	col := 0
	for _, ch := range t.caption {
		if col >= t.cols {
			break
		}
		t.screen.SetContent(col, 0, ch, nil, style)
		col++
	}
}
