package sierpinski

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSource supplies fill colors to the renderer. Sources are consulted
// in draw order, so a deterministic source yields a reproducible image.
type ColorSource interface {
	NextColor() Color
}

// LevelSource is a ColorSource that colors by subdivision level: 0 for the
// root, 1 for its children and so on. When the configured source is a
// LevelSource the renderer calls LevelColor instead of NextColor, so every
// triangle of a level shares one color regardless of traversal order.
type LevelSource interface {
	ColorSource
	LevelColor(level int) Color
}

// Levels colors level i with Levels[i]. Levels deeper than the list reuse
// the last color.
type Levels []Color

// LevelColor implements LevelSource.
func (l Levels) LevelColor(level int) Color {
	if len(l) == 0 {
		return Color{}
	}
	return l[min(max(level, 0), len(l)-1)]
}

// NextColor returns the root color.
func (l Levels) NextColor() Color { return l.LevelColor(0) }

// ColorFunc adapts a function to ColorSource.
type ColorFunc func() Color

// NextColor calls f.
func (f ColorFunc) NextColor() Color { return f() }

// RandSource samples each channel uniformly from 0..255.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a RandSource seeded with seed.
func NewRandSource(seed uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextColor returns a uniformly random color.
func (s *RandSource) NextColor() Color {
	return Color{
		R: uint8(s.rng.IntN(256)),
		G: uint8(s.rng.IntN(256)),
		B: uint8(s.rng.IntN(256)),
	}
}

// HueSource samples a random hue at fixed saturation and value, which keeps
// neighbouring triangles distinguishable where uniform RGB tends to produce
// muddy browns and greys.
type HueSource struct {
	rng        *rand.Rand
	saturation float64
	value      float64
}

// NewHueSource creates a HueSource. saturation and value are clamped to [0, 1].
func NewHueSource(seed uint64, saturation, value float64) *HueSource {
	return &HueSource{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		saturation: clamp01(saturation),
		value:      clamp01(value),
	}
}

// NextColor returns a color with a random hue.
func (s *HueSource) NextColor() Color {
	c := colorful.Hsv(s.rng.Float64()*360, s.saturation, s.value).Clamped()
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

// Palette cycles through a fixed list of colors. An empty palette yields Black.
type Palette struct {
	colors []Color
	next   int
}

// NewPalette creates a Palette over a copy of colors.
func NewPalette(colors ...Color) *Palette {
	return &Palette{colors: append([]Color(nil), colors...)}
}

// NextColor returns the next palette entry, wrapping around.
func (p *Palette) NextColor() Color {
	if len(p.colors) == 0 {
		return Black
	}
	c := p.colors[p.next%len(p.colors)]
	p.next++
	return c
}

// Gradient returns n colors blended in CIE L*a*b* space from a to b.
// As Levels it shades the fractal from a at the root to b at the leaves.
func Gradient(a, b Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{a}
	}
	ca, cb := toColorful(a), toColorful(b)
	out := make([]Color, n)
	for i := range out {
		t := float64(i) / float64(n-1)
		r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
		out[i] = Color{R: r, G: g, B: bl}
	}
	return out
}

func toColorful(c Color) colorful.Color {
	r, g, b := c.Float()
	return colorful.Color{R: r, G: g, B: b}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
