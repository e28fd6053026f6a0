// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG flushes t and writes its snapshot to w as PNG.
func EncodePNG(w io.Writer, t Target) error {
	if err := t.Flush(); err != nil {
		return fmt.Errorf("surface: flush: %w", err)
	}
	return png.Encode(w, t.Snapshot())
}

// SavePNG flushes t and writes its snapshot to the file at path.
func SavePNG(path string, t Target) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := EncodePNG(bw, t); err != nil {
		return err
	}
	return bw.Flush()
}
