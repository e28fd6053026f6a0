// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/sierpinski"
)

// Target is a drawing surface owned by a host.
//
// Targets are NOT thread-safe. Each target should be used from a single
// goroutine, or external synchronization must be used.
type Target interface {
	sierpinski.Surface
	sierpinski.FillStyler

	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Clear fills the entire target with the given color and discards the
	// current path.
	Clear(c sierpinski.Color)

	// Flush makes everything drawn so far visible on the underlying device,
	// file or recording. For plain raster targets it is a no-op.
	Flush() error

	// Snapshot returns the current contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the target.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the target.
	// After Close, the target must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// Captioner is an optional interface for targets that can draw a text label.
type Captioner interface {
	// Caption draws s in the top-left corner using the stroke color.
	Caption(s string) error
}
