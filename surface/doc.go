// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides host-side drawing targets for the sierpinski
// renderer and a registry for selecting them by name.
//
// A Target is a sierpinski.Surface that a host can also size, clear, flush
// and snapshot. The renderer only sees the Surface half; the host owns the
// rest of the lifecycle. This keeps surface acquisition, and its failures,
// out of the core.
//
// # Backends
//
// Backends live in sub-packages and register themselves on import:
//
//   - ggctx: software rasterization on a gogpu/gg Context ("context")
//   - vector: command recording with gogpu/gg/recording, played back to
//     the raster backend ("recording")
//   - display: tinygo drivers.Displayer panels, emulated on the host by a
//     framebuffer ("display")
//
// The term and ebitensurf packages need a live terminal or window and are
// constructed directly by their hosts instead of through the registry.
//
// # Usage
//
//	import (
//		"github.com/gogpu/sierpinski/surface"
//		_ "github.com/gogpu/sierpinski/surface/ggctx"
//	)
//
//	t, err := surface.NewByName("context", surface.DefaultOptions(600, 600))
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
//	t.Clear(sierpinski.White)
//	_, err = sierpinski.NewRenderer().Render(t, sierpinski.Root(600, 600), 6)
//	...
//	err = surface.SavePNG("out.png", t)
package surface
