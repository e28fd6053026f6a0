// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/sierpinski"
)

// Errors returned by Options.Validate.
var (
	// ErrInvalidSize is returned for non-positive widths or heights.
	ErrInvalidSize = errors.New("surface: invalid size")

	// ErrInvalidLineWidth is returned for non-positive line widths.
	ErrInvalidLineWidth = errors.New("surface: invalid line width")
)

// Options configures target creation.
type Options struct {
	// Width is the target width in pixels.
	Width int

	// Height is the target height in pixels.
	Height int

	// Background is the color the target is cleared to on creation.
	// Default: white
	Background sierpinski.Color

	// Stroke is the outline color for Stroke.
	// Default: black
	Stroke sierpinski.Color

	// Fill is the fill color used until SetFillStyle is called.
	// Default: black
	Fill sierpinski.Color

	// LineWidth is the outline width in pixels.
	// Default: 1
	LineWidth float64

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:      width,
		Height:     height,
		Background: sierpinski.White,
		Stroke:     sierpinski.Black,
		Fill:       sierpinski.Black,
		LineWidth:  1,
	}
}

// Validate reports whether the options describe a usable target.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidLineWidth, o.LineWidth)
	}
	return nil
}

// Bool returns the custom boolean option key, or def when unset.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o.Custom[key].(bool); ok {
		return v
	}
	return def
}
