// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"testing"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/surface"
)

func newTarget(t *testing.T, w, h int) *Target {
	t.Helper()
	tg, err := New(surface.DefaultOptions(w, h))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = tg.Close() })
	return tg
}

func TestRegistered(t *testing.T) {
	entry, ok := surface.Get(Name)
	if !ok {
		t.Fatalf("%q not registered", Name)
	}
	if entry.Priority != 5 {
		t.Errorf("Priority = %d, want 5", entry.Priority)
	}
	if !entry.Available() {
		t.Errorf("%q unavailable although the raster playback backend is linked", Name)
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New(surface.DefaultOptions(0, 5)); err == nil {
		t.Error("New accepted a zero width")
	}
	opts := surface.DefaultOptions(5, 5)
	opts.Custom = map[string]any{OptionPlayback: "no-such-backend"}
	if _, err := New(opts); err == nil {
		t.Error("New accepted an unregistered playback backend")
	}
}

func TestRecordsCommands(t *testing.T) {
	tg := newTarget(t, 60, 60)
	cleared := tg.Commands()
	if cleared == 0 {
		t.Fatal("Clear recorded no commands")
	}

	if _, err := sierpinski.NewRenderer().Render(tg, sierpinski.Root(60, 60), 1); err != nil {
		t.Fatal(err)
	}
	if tg.Commands() <= cleared {
		t.Errorf("render added no commands: %d -> %d", cleared, tg.Commands())
	}
}

func TestPlaybackMatchesDrawing(t *testing.T) {
	red := sierpinski.RGB(255, 0, 0)
	tg := newTarget(t, 100, 100)
	r := sierpinski.NewRenderer(
		sierpinski.WithPaint(sierpinski.PaintStrokeFill),
		sierpinski.WithColors(sierpinski.NewPalette(red)))
	if _, err := r.Render(tg, sierpinski.Root(100, 100), 0); err != nil {
		t.Fatal(err)
	}
	if err := tg.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	img := tg.Snapshot()
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("snapshot size = %v", b)
	}
	if got := img.RGBAAt(50, 70); got != red.RGBA() {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got != sierpinski.White.RGBA() {
		t.Errorf("exterior pixel = %v, want white", got)
	}
}

func TestFlushCachesUntilNextDraw(t *testing.T) {
	tg := newTarget(t, 20, 20)
	if err := tg.Flush(); err != nil {
		t.Fatal(err)
	}
	first := tg.img
	if err := tg.Flush(); err != nil {
		t.Fatal(err)
	}
	if tg.img != first {
		t.Error("second Flush replayed an unchanged recording")
	}

	tg.BeginPath()
	tg.MoveTo(0, 0)
	tg.LineTo(20, 20)
	if err := tg.Stroke(); err != nil {
		t.Fatal(err)
	}
	if tg.img != nil {
		t.Error("Stroke did not invalidate the cached image")
	}
}

func TestRecordingIsImmutable(t *testing.T) {
	tg := newTarget(t, 30, 30)
	first := tg.Recording()
	if tg.Recording() != first {
		t.Error("unchanged target built a second recording")
	}
	n := len(first.Commands())

	tg.BeginPath()
	tg.MoveTo(0, 0)
	tg.LineTo(30, 0)
	tg.LineTo(0, 30)
	tg.ClosePath()
	if err := tg.Fill(); err != nil {
		t.Fatal(err)
	}

	if got := len(first.Commands()); got != n {
		t.Errorf("earlier recording changed: %d commands, want %d", got, n)
	}
	if tg.Commands() <= n {
		t.Errorf("Commands() = %d after drawing, want more than %d", tg.Commands(), n)
	}
	if tg.Recording() == first {
		t.Error("drawing did not invalidate the cached recording")
	}
}
