//go:build !nogpu

package main

import _ "github.com/gogpu/gg/gpu" // GPU acceleration, falls back to CPU when unavailable
