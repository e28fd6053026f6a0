// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vector provides a target that records drawing commands with
// gogpu/gg/recording instead of rasterizing them immediately.
//
// The recording can be replayed to any registered recording backend. Flush
// and Snapshot replay it to the playback backend (by default the built-in
// "raster" backend); other backends, such as SVG or PDF writers, can be
// driven through Recording.
//
// Importing the package registers the "recording" backend with the surface
// registry.
package vector

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
)

// Name is the registry name of this backend.
const Name = "recording"

// DefaultPlayback is the recording backend used by Flush and Snapshot.
const DefaultPlayback = "raster"

// OptionPlayback is the surface.Options.Custom key selecting the playback
// backend by its recording registry name.
const OptionPlayback = "vector.playback"

func init() {
	surface.Register(Name, 5, func(opts surface.Options) (surface.Target, error) {
		return New(opts)
	}, func() bool {
		return recording.IsRegistered(DefaultPlayback)
	})
}

// Target records drawing commands.
//
// Commands are kept as a list of canvas operations. Each call to Recording
// replays them into a new recording.Recorder and finishes it, so the
// returned Recording is immutable and the target can keep drawing.
type Target struct {
	ops       []op
	width     int
	height    int
	lineWidth float64
	playback  string

	stroke sierpinski.Color
	fill   sierpinski.Color

	// finished recording and image from the last playback; nil when
	// commands were added since
	rec    *recording.Recording
	img    image.Image
	closed bool
}

type opKind uint8

const (
	opClear opKind = iota
	opBeginPath
	opMoveTo
	opLineTo
	opClosePath
	opStroke
	opFill
)

type op struct {
	kind opKind
	x, y float64
	c    sierpinski.Color
}

var _ surface.Target = (*Target)(nil)

// New creates a recording target cleared to opts.Background.
func New(opts surface.Options) (*Target, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	playback := DefaultPlayback
	if name, ok := opts.Custom[OptionPlayback].(string); ok && name != "" {
		playback = name
	}
	if !recording.IsRegistered(playback) {
		return nil, fmt.Errorf("vector: playback backend %q not registered", playback)
	}

	t := &Target{
		width:     opts.Width,
		height:    opts.Height,
		lineWidth: opts.LineWidth,
		playback:  playback,
		stroke:    opts.Stroke,
		fill:      opts.Fill,
	}
	t.Clear(opts.Background)
	return t, nil
}

// Width implements surface.Target.
func (t *Target) Width() int { return t.width }

// Height implements surface.Target.
func (t *Target) Height() int { return t.height }

// Clear records a full-canvas rectangle fill.
func (t *Target) Clear(c sierpinski.Color) { t.add(op{kind: opClear, c: c}) }

// SetFillStyle implements sierpinski.FillStyler.
func (t *Target) SetFillStyle(c sierpinski.Color) { t.fill = c }

// SetStrokeStyle sets the outline color.
func (t *Target) SetStrokeStyle(c sierpinski.Color) { t.stroke = c }

// BeginPath implements sierpinski.Surface.
func (t *Target) BeginPath() { t.add(op{kind: opBeginPath}) }

// MoveTo implements sierpinski.Surface.
func (t *Target) MoveTo(x, y float64) { t.add(op{kind: opMoveTo, x: x, y: y}) }

// LineTo implements sierpinski.Surface.
func (t *Target) LineTo(x, y float64) { t.add(op{kind: opLineTo, x: x, y: y}) }

// ClosePath implements sierpinski.Surface.
func (t *Target) ClosePath() { t.add(op{kind: opClosePath}) }

// Stroke implements sierpinski.Surface.
func (t *Target) Stroke() error {
	t.add(op{kind: opStroke, c: t.stroke})
	return nil
}

// Fill implements sierpinski.Surface.
func (t *Target) Fill() error {
	t.add(op{kind: opFill, c: t.fill})
	return nil
}

func (t *Target) add(o op) {
	t.ops = append(t.ops, o)
	t.rec = nil
	t.img = nil
}

// Recording returns the commands recorded so far as an immutable
// Recording. It is cached until the next drawing call.
func (t *Target) Recording() *recording.Recording {
	if t.rec != nil {
		return t.rec
	}
	r := recording.NewRecorder(t.width, t.height)
	r.SetLineWidth(t.lineWidth)
	for _, o := range t.ops {
		switch o.kind {
		case opClear:
			r.ClearPath()
			r.SetFillStyle(solid(o.c))
			r.FillRectangle(0, 0, float64(t.width), float64(t.height))
		case opBeginPath:
			r.ClearPath()
		case opMoveTo:
			r.MoveTo(o.x, o.y)
		case opLineTo:
			r.LineTo(o.x, o.y)
		case opClosePath:
			r.ClosePath()
		case opStroke:
			r.SetStrokeStyle(solid(o.c))
			r.StrokePreserve()
		case opFill:
			r.SetFillStyle(solid(o.c))
			r.FillPreserve()
		}
	}
	t.rec = r.FinishRecording()
	return t.rec
}

// Commands returns the number of recorded commands.
func (t *Target) Commands() int {
	return len(t.Recording().Commands())
}

// Playback replays the recording to backend.
func (t *Target) Playback(backend recording.Backend) error {
	if err := t.Recording().Playback(backend); err != nil {
		return fmt.Errorf("vector: playback: %w", err)
	}
	return nil
}

// Flush replays the recording to the playback backend and caches the image.
func (t *Target) Flush() error {
	if t.img != nil {
		return nil
	}
	b, err := recording.NewBackend(t.playback)
	if err != nil {
		return fmt.Errorf("vector: %w", err)
	}
	if err := t.Playback(b); err != nil {
		return err
	}
	switch pb := b.(type) {
	case interface{ Image() image.Image }:
		t.img = pb.Image()
	case recording.PixmapBackend:
		t.img = pb.Pixmap().ToImage()
	default:
		return fmt.Errorf("vector: playback backend %q produces no image", t.playback)
	}
	sierpinski.Logger().Debug("vector: playback done", "backend", t.playback, "commands", t.Commands())
	return nil
}

// Snapshot implements surface.Target. It returns a blank image if the
// playback fails.
func (t *Target) Snapshot() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	if err := t.Flush(); err != nil {
		sierpinski.Logger().Warn("vector: snapshot playback failed", "err", err)
		return dst
	}
	draw.Draw(dst, dst.Bounds(), t.img, t.img.Bounds().Min, draw.Src)
	return dst
}

// Close implements surface.Target.
func (t *Target) Close() error {
	t.closed = true
	t.ops = nil
	t.rec = nil
	t.img = nil
	return nil
}

func solid(c sierpinski.Color) recording.Brush {
	r, g, b := c.Float()
	return recording.NewSolidBrush(gg.RGB(r, g, b))
}
