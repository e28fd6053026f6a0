package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sierpinski"
)

func testConfig(t *testing.T) config {
	return config{
		width:     60,
		height:    30,
		depth:     3,
		policy:    "leaves",
		paint:     "stroke-fill",
		colors:    "hue",
		colorMode: "per-child",
		traversal: "stack",
		seed:      1,
		from:      "#000",
		to:        "#fff",
		backend:   "context",
		output:    filepath.Join(t.TempDir(), "out.png"),
		lineWidth: 1,
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.width != 600 || cfg.height != 600 {
		t.Errorf("default size = %dx%d, want 600x600", cfg.width, cfg.height)
	}
	if cfg.depth != 6 || cfg.policy != "leaves" || cfg.backend != "" {
		t.Errorf("defaults = %+v", cfg)
	}

	cfg, err = parseFlags([]string{"-height", "300", "-colors", "gradient", "-caption"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.height != 300 || cfg.colors != "gradient" || !cfg.caption {
		t.Errorf("parsed = %+v", cfg)
	}

	if _, err := parseFlags([]string{"-depth", "deep"}); err == nil {
		t.Error("non-numeric depth accepted")
	}
}

func TestRenderOptionsRejectsUnknownValues(t *testing.T) {
	for _, mod := range []func(*config){
		func(c *config) { c.policy = "sometimes" },
		func(c *config) { c.paint = "spray" },
		func(c *config) { c.colorMode = "per-leaf" },
		func(c *config) { c.traversal = "bfs" },
		func(c *config) { c.colors = "plaid" },
		func(c *config) { c.colors, c.from = "gradient", "#zzz" },
	} {
		cfg := testConfig(t)
		mod(&cfg)
		if _, err := renderOptions(cfg); err == nil {
			t.Errorf("renderOptions(%+v) succeeded", cfg)
		}
	}
}

func TestColorSource(t *testing.T) {
	cfg := testConfig(t)
	for _, name := range []string{"none", ""} {
		cfg.colors = name
		if src, err := colorSource(cfg); err != nil || src != nil {
			t.Errorf("colorSource(%q) = %v, %v; want nil, nil", name, src, err)
		}
	}

	cfg.colors = "gradient"
	src, err := colorSource(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := src.NextColor(); got != sierpinski.Black {
		t.Errorf("gradient starts at %v, want black", got)
	}

	cfg.colors = "rand"
	a, _ := colorSource(cfg)
	b, _ := colorSource(cfg)
	if a.NextColor() != b.NextColor() {
		t.Error("same seed produced different colors")
	}
}

func TestRun(t *testing.T) {
	for _, backend := range []string{"context", "recording", "display", ""} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.backend = backend
			cfg.caption = true
			if err := run(cfg); err != nil {
				t.Fatalf("run: %v", err)
			}
			fi, err := os.Stat(cfg.output)
			if err != nil {
				t.Fatal(err)
			}
			if fi.Size() == 0 {
				t.Error("empty output file")
			}
		})
	}
}

func TestRunRepeatedWithCaption(t *testing.T) {
	for _, backend := range []string{"context", "display", ""} {
		for i := range 3 {
			cfg := testConfig(t)
			cfg.backend = backend
			cfg.caption = true
			if err := run(cfg); err != nil {
				t.Fatalf("run %d with backend %q: %v", i+1, backend, err)
			}
		}
	}
}

func TestRunUnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.backend = "plotter"
	if err := run(cfg); err == nil {
		t.Error("run with an unknown backend succeeded")
	}
}
