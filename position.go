package sierpinski

import "math"

// Position is a point on the drawing surface.
type Position struct {
	X, Y float64
}

// Pos is a convenience function to create a Position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Mid returns the midpoint of the segment from a to b.
func Mid(a, b Position) Position {
	return Position{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Add returns the sum of two positions (vector addition).
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two positions (vector subtraction).
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2D cross product (scalar).
func (p Position) Cross(q Position) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance returns the distance between two positions.
func (p Position) Distance(q Position) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Lerp performs linear interpolation between two positions.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Position) Lerp(q Position, t float64) Position {
	return Position{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Eq reports whether p and q are within eps of each other on both axes.
func (p Position) Eq(q Position, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
