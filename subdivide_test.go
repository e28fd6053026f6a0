package sierpinski

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestMid(t *testing.T) {
	tests := []struct {
		a, b, want Position
	}{
		{Pos(0, 0), Pos(600, 600), Pos(300, 300)},
		{Pos(300, 0), Pos(0, 600), Pos(150, 300)},
		{Pos(-1, 1), Pos(1, -1), Pos(0, 0)},
		{Pos(5, 5), Pos(5, 5), Pos(5, 5)},
	}
	for _, tt := range tests {
		if got := Mid(tt.a, tt.b); !got.Eq(tt.want, eps) {
			t.Errorf("Mid(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := Mid(tt.b, tt.a); !got.Eq(tt.want, eps) {
			t.Errorf("Mid is not symmetric for %v, %v", tt.a, tt.b)
		}
	}
}

func TestPositionOps(t *testing.T) {
	p, q := Pos(3, 4), Pos(1, 1)
	if got := p.Add(q); got != Pos(4, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != Pos(2, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Cross(q); got != -1 {
		t.Errorf("Cross = %v", got)
	}
	if got := Pos(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v", got)
	}
	if got := q.Lerp(p, 0.5); got != Mid(q, p) {
		t.Errorf("Lerp(0.5) = %v, want midpoint", got)
	}
}

func TestRoot(t *testing.T) {
	got := Root(600, 600)
	want := NewTriangle(Pos(300, 0), Pos(0, 600), Pos(600, 600))
	if !got.Eq(want, 0) {
		t.Errorf("Root(600, 600) = %v, want %v", got.Points, want.Points)
	}
	if got.Colored {
		t.Error("Root should be uncolored")
	}
}

func TestSubdivideExample(t *testing.T) {
	top, left, right := Subdivide(Root(600, 600))
	tests := []struct {
		name string
		got  Triangle
		want Triangle
	}{
		{"top", top, NewTriangle(Pos(300, 0), Pos(150, 300), Pos(450, 300))},
		{"left", left, NewTriangle(Pos(0, 600), Pos(150, 300), Pos(300, 600))},
		{"right", right, NewTriangle(Pos(600, 600), Pos(450, 300), Pos(300, 600))},
	}
	for _, tt := range tests {
		if !tt.got.Eq(tt.want, eps) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got.Points, tt.want.Points)
		}
	}
}

func TestSubdivideProperties(t *testing.T) {
	parents := []Triangle{
		Root(600, 600),
		Root(800, 300),
		NewTriangle(Pos(-5, 7), Pos(13, -2), Pos(0.5, 40)),
	}
	for _, p := range parents {
		top, left, right := Subdivide(p)
		children := [3]Triangle{top, left, right}

		// each child keeps its parent vertex
		for i, c := range children {
			if c.Points[0] != p.Points[i] {
				t.Errorf("child %d keeps %v, want %v", i, c.Points[0], p.Points[i])
			}
		}

		// siblings share midpoints exactly
		m := Midpoints(p)
		if top.Points[1] != left.Points[1] || top.Points[1] != m[0] {
			t.Errorf("top and left do not share apex-left midpoint")
		}
		if top.Points[2] != right.Points[1] || top.Points[2] != m[1] {
			t.Errorf("top and right do not share apex-right midpoint")
		}
		if left.Points[2] != right.Points[2] || left.Points[2] != m[2] {
			t.Errorf("left and right do not share left-right midpoint")
		}

		// each child is a quarter of the parent
		for i, c := range children {
			if math.Abs(c.Area()*4-p.Area()) > 1e-6 {
				t.Errorf("child %d area %v, parent %v", i, c.Area(), p.Area())
			}
		}
	}
}

func TestSubdivideDeterministic(t *testing.T) {
	p := NewTriangle(Pos(0.1, 0.2), Pos(0.3, 0.7), Pos(0.9, 0.4))
	a1, b1, c1 := Subdivide(p)
	a2, b2, c2 := Subdivide(p)
	if a1 != a2 || b1 != b2 || c1 != c2 {
		t.Error("Subdivide is not deterministic")
	}
}

func TestSubdivideDegenerate(t *testing.T) {
	line := NewTriangle(Pos(0, 0), Pos(1, 1), Pos(2, 2))
	if !line.Degenerate() {
		t.Fatal("collinear triangle should be degenerate")
	}
	top, left, right := Subdivide(line)
	for i, c := range []Triangle{top, left, right} {
		if !c.Degenerate() {
			t.Errorf("child %d of degenerate triangle is not degenerate: %v", i, c.Points)
		}
	}

	point := NewTriangle(Pos(3, 3), Pos(3, 3), Pos(3, 3))
	top, _, _ = Subdivide(point)
	if !top.Eq(point, 0) {
		t.Errorf("child of a point = %v", top.Points)
	}
}

func TestSubdivideInheritsColor(t *testing.T) {
	red := RGB(255, 0, 0)
	top, left, right := Subdivide(Root(10, 10).WithColor(red))
	for i, c := range []Triangle{top, left, right} {
		if !c.Colored || c.Color != red {
			t.Errorf("child %d color = %v (colored %v), want %v", i, c.Color, c.Colored, red)
		}
	}
	top, _, _ = Subdivide(Root(10, 10))
	if top.Colored {
		t.Error("child of uncolored triangle is colored")
	}
}

func TestTriangleColor(t *testing.T) {
	tri := Root(4, 4).WithColor(White)
	if !tri.Colored || tri.Color != White {
		t.Errorf("WithColor: %+v", tri)
	}
	tri = tri.WithoutColor()
	if tri.Colored || tri.Color != (Color{}) {
		t.Errorf("WithoutColor: %+v", tri)
	}
}
