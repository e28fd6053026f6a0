// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package trace provides an in-memory sierpinski.Surface that records every
// drawing call.
//
// A trace Surface is the test double for renderer properties (draw counts,
// draw order, colors) and doubles as a debugging aid: WriteTo dumps the
// call sequence one operation per line.
//
//	s := trace.New()
//	_, _ = sierpinski.NewRenderer().Render(s, sierpinski.Root(600, 600), 2)
//	fmt.Println(s.Draws()) // 9
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/sierpinski"
)

// Kind identifies the type of a recorded operation.
type Kind uint8

const (
	KindSetFillStyle Kind = iota // SetFillStyle
	KindBeginPath                // BeginPath
	KindMoveTo                   // MoveTo
	KindLineTo                   // LineTo
	KindClosePath                // ClosePath
	KindStroke                   // Stroke
	KindFill                     // Fill
)

var kindNames = [...]string{
	KindSetFillStyle: "style",
	KindBeginPath:    "begin",
	KindMoveTo:       "move",
	KindLineTo:       "line",
	KindClosePath:    "close",
	KindStroke:       "stroke",
	KindFill:         "fill",
}

// String returns the short name used by WriteTo.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Op is one recorded call. X and Y are set for MoveTo and LineTo,
// Color for SetFillStyle.
type Op struct {
	Kind  Kind
	X, Y  float64
	Color sierpinski.Color
}

// Drawn is a path that was painted at least once.
type Drawn struct {
	Points  []sierpinski.Position
	Color   sierpinski.Color
	Colored bool
	Stroked bool
	Filled  bool
}

// Triangle converts d to a Triangle. ok is false when the path does not
// start with three points.
func (d Drawn) Triangle() (t sierpinski.Triangle, ok bool) {
	if len(d.Points) < 3 {
		return sierpinski.Triangle{}, false
	}
	t = sierpinski.NewTriangle(d.Points[0], d.Points[1], d.Points[2])
	if d.Colored {
		t = t.WithColor(d.Color)
	}
	return t, true
}

type failure struct {
	n   int
	err error
}

// Surface records drawing calls. The zero value is ready to use.
type Surface struct {
	ops   []Op
	drawn []Drawn

	path    []sierpinski.Position
	painted bool // current path already appended to drawn

	fill    sierpinski.Color
	hasFill bool

	counts   [len(kindNames)]int
	failures map[Kind]failure
}

var (
	_ sierpinski.Surface    = (*Surface)(nil)
	_ sierpinski.FillStyler = (*Surface)(nil)
)

// New creates an empty trace surface.
func New() *Surface {
	return &Surface{}
}

// FailOn makes the n-th call (1-based) of kind return err. Only KindStroke
// and KindFill can fail; other kinds are ignored.
func (s *Surface) FailOn(kind Kind, n int, err error) {
	if kind != KindStroke && kind != KindFill {
		return
	}
	if s.failures == nil {
		s.failures = make(map[Kind]failure)
	}
	s.failures[kind] = failure{n: n, err: err}
}

// Reset discards all recorded operations and injected failures.
func (s *Surface) Reset() {
	*s = Surface{}
}

func (s *Surface) record(op Op) {
	s.ops = append(s.ops, op)
	s.counts[op.Kind]++
}

// SetFillStyle implements sierpinski.FillStyler.
func (s *Surface) SetFillStyle(c sierpinski.Color) {
	s.record(Op{Kind: KindSetFillStyle, Color: c})
	s.fill = c
	s.hasFill = true
}

// BeginPath implements sierpinski.Surface.
func (s *Surface) BeginPath() {
	s.record(Op{Kind: KindBeginPath})
	s.path = nil
	s.painted = false
}

// MoveTo implements sierpinski.Surface.
func (s *Surface) MoveTo(x, y float64) {
	s.record(Op{Kind: KindMoveTo, X: x, Y: y})
	s.path = append(s.path, sierpinski.Pos(x, y))
}

// LineTo implements sierpinski.Surface.
func (s *Surface) LineTo(x, y float64) {
	s.record(Op{Kind: KindLineTo, X: x, Y: y})
	s.path = append(s.path, sierpinski.Pos(x, y))
}

// ClosePath implements sierpinski.Surface.
func (s *Surface) ClosePath() {
	s.record(Op{Kind: KindClosePath})
}

// Stroke implements sierpinski.Surface.
func (s *Surface) Stroke() error {
	s.record(Op{Kind: KindStroke})
	if err := s.failed(KindStroke); err != nil {
		return err
	}
	s.current().Stroked = true
	return nil
}

// Fill implements sierpinski.Surface.
func (s *Surface) Fill() error {
	s.record(Op{Kind: KindFill})
	if err := s.failed(KindFill); err != nil {
		return err
	}
	d := s.current()
	d.Filled = true
	d.Color, d.Colored = s.fill, s.hasFill
	return nil
}

func (s *Surface) failed(kind Kind) error {
	f, ok := s.failures[kind]
	if ok && s.counts[kind] == f.n {
		return f.err
	}
	return nil
}

// current returns the Drawn entry for the current path, creating it on the
// first paint after BeginPath.
func (s *Surface) current() *Drawn {
	if !s.painted {
		s.drawn = append(s.drawn, Drawn{
			Points:  append([]sierpinski.Position(nil), s.path...),
			Color:   s.fill,
			Colored: s.hasFill,
		})
		s.painted = true
	}
	return &s.drawn[len(s.drawn)-1]
}

// Ops returns the recorded operations in call order.
func (s *Surface) Ops() []Op {
	return s.ops
}

// Count returns how many times kind was called.
func (s *Surface) Count(kind Kind) int {
	if int(kind) >= len(s.counts) {
		return 0
	}
	return s.counts[kind]
}

// Drawn returns the painted paths in paint order.
func (s *Surface) Drawn() []Drawn {
	return s.drawn
}

// Draws returns the number of painted paths.
func (s *Surface) Draws() int {
	return len(s.drawn)
}

// Triangles returns the painted paths as triangles, skipping paths with
// fewer than three points.
func (s *Surface) Triangles() []sierpinski.Triangle {
	out := make([]sierpinski.Triangle, 0, len(s.drawn))
	for _, d := range s.drawn {
		if t, ok := d.Triangle(); ok {
			out = append(out, t)
		}
	}
	return out
}

// FillStyles returns the colors passed to SetFillStyle in call order.
func (s *Surface) FillStyles() []sierpinski.Color {
	var out []sierpinski.Color
	for _, op := range s.ops {
		if op.Kind == KindSetFillStyle {
			out = append(out, op.Color)
		}
	}
	return out
}

// WriteTo writes one line per operation, e.g. "move 300 0" or
// "style #ff8000". It implements io.WriterTo.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	for _, op := range s.ops {
		switch op.Kind {
		case KindMoveTo, KindLineTo:
			fmt.Fprintf(bw, "%s %g %g\n", op.Kind, op.X, op.Y)
		case KindSetFillStyle:
			fmt.Fprintf(bw, "%s %s\n", op.Kind, op.Color.Hex())
		default:
			fmt.Fprintln(bw, op.Kind)
		}
	}
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
