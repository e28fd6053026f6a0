package sierpinski

import "math"

// Triangle is three positions ordered apex, left base, right base, with an
// optional fill color. The order only matters for consistent edge
// construction; no orientation is assumed.
type Triangle struct {
	Points [3]Position

	// Color is meaningful only when Colored is true.
	Color   Color
	Colored bool
}

// NewTriangle creates an uncolored triangle.
func NewTriangle(apex, left, right Position) Triangle {
	return Triangle{Points: [3]Position{apex, left, right}}
}

// Root returns the triangle spanning a width x height canvas: apex at the
// middle of the top edge, base along the bottom edge.
func Root(width, height float64) Triangle {
	return NewTriangle(Pos(width/2, 0), Pos(0, height), Pos(width, height))
}

// Apex returns the first point.
func (t Triangle) Apex() Position { return t.Points[0] }

// Left returns the second point.
func (t Triangle) Left() Position { return t.Points[1] }

// Right returns the third point.
func (t Triangle) Right() Position { return t.Points[2] }

// WithColor returns a copy of t carrying color c.
func (t Triangle) WithColor(c Color) Triangle {
	t.Color = c
	t.Colored = true
	return t
}

// WithoutColor returns a copy of t with the color cleared.
func (t Triangle) WithoutColor() Triangle {
	t.Color = Color{}
	t.Colored = false
	return t
}

// SignedArea returns the signed area; positive when the points wind
// counter-clockwise in a Y-up frame.
func (t Triangle) SignedArea() float64 {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Degenerate reports whether the three points are collinear.
func (t Triangle) Degenerate() bool {
	return t.SignedArea() == 0
}

// Eq reports whether both triangles have the same points, in order, within eps.
// Colors are ignored.
func (t Triangle) Eq(u Triangle, eps float64) bool {
	for i := range t.Points {
		if !t.Points[i].Eq(u.Points[i], eps) {
			return false
		}
	}
	return true
}
