package sierpinski

import (
	"fmt"
	"strings"
)

// Policy selects which levels of the subdivision tree are drawn.
type Policy int

const (
	// DrawLeavesOnly recurses to depth 0 and draws only the leaves.
	// A depth-d render issues 3^d draws.
	DrawLeavesOnly Policy = iota

	// DrawEveryLevel draws each triangle before recursing into its children.
	// A depth-d render issues (3^(d+1)-1)/2 draws.
	DrawEveryLevel
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case DrawLeavesOnly:
		return "leaves"
	case DrawEveryLevel:
		return "every-level"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name as produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leaves", "leaves-only":
		return DrawLeavesOnly, nil
	case "every-level", "every", "all":
		return DrawEveryLevel, nil
	}
	return 0, fmt.Errorf("sierpinski: unknown policy %q", s)
}

// PaintMode selects how a drawn triangle is painted.
type PaintMode int

const (
	// PaintStroke outlines triangles only.
	PaintStroke PaintMode = iota

	// PaintStrokeFill outlines and then fills triangles.
	PaintStrokeFill
)

// String returns the paint mode name.
func (m PaintMode) String() string {
	switch m {
	case PaintStroke:
		return "stroke"
	case PaintStrokeFill:
		return "stroke-fill"
	default:
		return "unknown"
	}
}

// ParsePaintMode parses a paint mode name as produced by PaintMode.String.
func ParsePaintMode(s string) (PaintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stroke":
		return PaintStroke, nil
	case "stroke-fill", "fill":
		return PaintStrokeFill, nil
	}
	return 0, fmt.Errorf("sierpinski: unknown paint mode %q", s)
}

// ColorMode selects how colors are sampled for children when a
// ColorSource is configured.
type ColorMode int

const (
	// ColorPerChild samples a fresh color for every child.
	ColorPerChild ColorMode = iota

	// ColorPerGeneration samples one color per subdivision and gives it to
	// all three siblings.
	ColorPerGeneration
)

// String returns the color mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorPerChild:
		return "per-child"
	case ColorPerGeneration:
		return "per-generation"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a color mode name as produced by ColorMode.String.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per-child", "child":
		return ColorPerChild, nil
	case "per-generation", "generation", "siblings":
		return ColorPerGeneration, nil
	}
	return 0, fmt.Errorf("sierpinski: unknown color mode %q", s)
}

// Traversal selects how the renderer walks the subdivision tree.
// Both traversals issue identical draw sequences.
type Traversal int

const (
	// TraverseRecursive walks the tree with Go recursion.
	TraverseRecursive Traversal = iota

	// TraverseStack walks the tree with an explicit LIFO work stack, for
	// depths where call-stack growth is undesirable.
	TraverseStack
)

// String returns the traversal name.
func (t Traversal) String() string {
	switch t {
	case TraverseRecursive:
		return "recursive"
	case TraverseStack:
		return "stack"
	default:
		return "unknown"
	}
}

// ParseTraversal parses a traversal name as produced by Traversal.String.
func ParseTraversal(s string) (Traversal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "recursive":
		return TraverseRecursive, nil
	case "stack", "iterative":
		return TraverseStack, nil
	}
	return 0, fmt.Errorf("sierpinski: unknown traversal %q", s)
}

// DrawCount returns the number of triangles a render of the given depth
// draws under policy p. It returns 0 for negative depths.
func DrawCount(p Policy, depth int) int {
	if depth < 0 {
		return 0
	}
	pow := 1
	for range depth {
		pow *= 3
	}
	if p == DrawEveryLevel {
		return (pow*3 - 1) / 2
	}
	return pow
}
