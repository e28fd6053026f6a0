package sierpinski

// Midpoints returns the edge midpoints of t in the order
// apex-left, apex-right, left-right.
func Midpoints(t Triangle) [3]Position {
	apex, left, right := t.Points[0], t.Points[1], t.Points[2]
	return [3]Position{
		Mid(apex, left),
		Mid(apex, right),
		Mid(left, right),
	}
}

// Subdivide splits t into the three corner triangles of its medial
// subdivision. Each child keeps one vertex of t plus the two midpoints
// adjacent to it; the middle triangle is omitted.
//
// Children inherit t's color state. Degenerate input yields degenerate
// children.
func Subdivide(t Triangle) (top, left, right Triangle) {
	m := Midpoints(t)
	al, ar, lr := m[0], m[1], m[2]

	top, left, right = t, t, t
	top.Points = [3]Position{t.Points[0], al, ar}
	left.Points = [3]Position{t.Points[1], al, lr}
	right.Points = [3]Position{t.Points[2], ar, lr}
	return top, left, right
}
