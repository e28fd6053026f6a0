package sierpinski

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func sample(src ColorSource, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = src.NextColor()
	}
	return out
}

func TestRandSourceDeterministic(t *testing.T) {
	a := sample(NewRandSource(42), 16)
	b := sample(NewRandSource(42), 16)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d: %v != %v with the same seed", i, a[i], b[i])
		}
	}

	c := sample(NewRandSource(43), 16)
	same := 0
	for i := range a {
		if a[i] == c[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRandSourceCoversRange(t *testing.T) {
	var lo, hi uint8 = 255, 0
	for _, c := range sample(NewRandSource(7), 4096) {
		lo = min(lo, c.R, c.G, c.B)
		hi = max(hi, c.R, c.G, c.B)
	}
	if lo > 2 || hi < 253 {
		t.Errorf("channel range [%d, %d], want close to [0, 255]", lo, hi)
	}
}

func TestHueSource(t *testing.T) {
	src := NewHueSource(1, 1, 1)
	for i, c := range sample(src, 64) {
		_, s, v := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsv()
		if s < 0.98 || v < 0.98 {
			t.Errorf("sample %d = %v: saturation %.3f value %.3f, want 1", i, c, s, v)
		}
	}

	clamped := NewHueSource(1, 2, -1)
	if clamped.saturation != 1 || clamped.value != 0 {
		t.Errorf("clamp: saturation %v value %v", clamped.saturation, clamped.value)
	}
	if c := clamped.NextColor(); c != Black {
		t.Errorf("value 0 gives %v, want black", c)
	}
}

func TestPalette(t *testing.T) {
	red, green := RGB(255, 0, 0), RGB(0, 255, 0)
	p := NewPalette(red, green)
	want := []Color{red, green, red, green, red}
	for i, got := range sample(p, len(want)) {
		if got != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got, want[i])
		}
	}

	if got := NewPalette().NextColor(); got != Black {
		t.Errorf("empty palette = %v, want black", got)
	}
}

func TestGradient(t *testing.T) {
	if got := Gradient(Black, White, 0); got != nil {
		t.Errorf("Gradient(n=0) = %v, want nil", got)
	}
	if got := Gradient(Black, White, 1); len(got) != 1 || got[0] != Black {
		t.Errorf("Gradient(n=1) = %v", got)
	}

	g := Gradient(Black, White, 5)
	if len(g) != 5 {
		t.Fatalf("len = %d, want 5", len(g))
	}
	if g[0] != Black || g[4] != White {
		t.Errorf("endpoints = %v, %v", g[0], g[4])
	}
	for i := 1; i < len(g); i++ {
		if g[i].R < g[i-1].R {
			t.Errorf("gradient not monotonic at %d: %v", i, g)
		}
	}
}

func TestColorFunc(t *testing.T) {
	n := 0
	f := ColorFunc(func() Color {
		n++
		return RGB(uint8(n), 0, 0)
	})
	if got := f.NextColor(); got != RGB(1, 0, 0) {
		t.Errorf("NextColor() = %v", got)
	}
}

func TestLevels(t *testing.T) {
	red, green := RGB(255, 0, 0), RGB(0, 255, 0)
	l := Levels{red, green}
	tests := []struct {
		level int
		want  Color
	}{
		{-1, red},
		{0, red},
		{1, green},
		{5, green},
	}
	for _, tt := range tests {
		if got := l.LevelColor(tt.level); got != tt.want {
			t.Errorf("LevelColor(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
	if got := l.NextColor(); got != red {
		t.Errorf("NextColor() = %v, want the root color", got)
	}
	if got := (Levels{}).LevelColor(2); got != Black {
		t.Errorf("empty LevelColor = %v, want black", got)
	}
}
