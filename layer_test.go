package mirror

import (
	"bytes"
	"math"
	"testing"
)

func newTestEnv(w, h int) *layerEnv {
	s := NewSurface(w, h)
	for i := range s.img.Pix {
		s.img.Pix[i] = 128
	}
	r := NewResolver(Sparse68, ring(Sparse68, float64(w)/2, float64(h)/2, float64(w)/3), w, h, false)
	return &layerEnv{s: s, c: newCanvas(w, h), r: r, u: r.Unit()}
}

func TestLayersNoOp(t *testing.T) {
	renderers := map[string]func(e *layerEnv, hex string, op float64) int{
		"blush":       renderBlush,
		"highlighter": renderHighlighter,
		"eyeshadow":   renderEyeshadow,
		"eyeliner": func(e *layerEnv, hex string, op float64) int {
			return renderEyeliner(e, hex, op, LinerWinged)
		},
		"lipstick": func(e *layerEnv, hex string, op float64) int {
			return renderLipstick(e, hex, op, FinishGloss)
		},
	}
	inputs := []struct {
		name string
		hex  string
		op   float64
	}{
		{"zero opacity", "#C84646", 0},
		{"negative opacity", "#C84646", -0.5},
		{"NaN opacity", "#C84646", math.NaN()},
		{"empty colour", "", 0.8},
		{"bad colour", "#nothex", 0.8},
	}
	for name, render := range renderers {
		for _, in := range inputs {
			t.Run(name+"/"+in.name, func(t *testing.T) {
				e := newTestEnv(64, 64)
				before := bytes.Clone(e.s.img.Pix)
				if n := render(e, in.hex, in.op); n != 0 {
					t.Errorf("composites = %d, want 0", n)
				}
				if !bytes.Equal(before, e.s.img.Pix) {
					t.Error("surface changed")
				}
			})
		}
	}
}

func TestLayersDraw(t *testing.T) {
	e := newTestEnv(64, 64)
	before := bytes.Clone(e.s.img.Pix)
	n := renderBlush(e, "#FF0000", 1)
	if n != 1 {
		t.Fatalf("renderBlush() composites = %d, want 1", n)
	}
	if bytes.Equal(before, e.s.img.Pix) {
		t.Error("renderBlush() left the surface unchanged")
	}
	if !e.c.dirty.Empty() || e.c.busy {
		t.Error("canvas not released after the layer")
	}
}

func TestLipstickGlossAddsHighlight(t *testing.T) {
	tests := []struct {
		finish Finish
		want   int
	}{
		{FinishMatte, 1},
		{FinishSatin, 1},
		{FinishGloss, 2},
		{"", 1},
	}
	for _, tt := range tests {
		e := newTestEnv(64, 64)
		if got := renderLipstick(e, "#C84646", 0.6, tt.finish); got != tt.want {
			t.Errorf("renderLipstick(%q) composites = %d, want %d", tt.finish, got, tt.want)
		}
	}
}

func TestWingTip(t *testing.T) {
	outer := Point{X: 100, Y: 100}
	tail := Point{X: 140, Y: 80}
	tests := []struct {
		style LinerStyle
		want  float64
	}{
		{LinerWinged, 11.18},
		{LinerClassic, 6.71},
		{LinerSmoky, 6.71},
	}
	for _, tt := range tests {
		tip := wingTip(outer, tail, linerShapeOf(tt.style).wing)
		if got := tip.Sub(outer).Len(); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("%s wing length = %.3f, want %.2f", tt.style, got, tt.want)
		}
	}
	if w := linerShapeOf(LinerNatural).wing; w != 0 {
		t.Errorf("natural wing = %v, want 0", w)
	}
	if got := wingTip(outer, tail, 0.25); got != (Point{X: 110, Y: 95}) {
		t.Errorf("wingTip(0.25) = %v, want (110, 95)", got)
	}
}

func TestFinishMode(t *testing.T) {
	tests := []struct {
		f    Finish
		want string
	}{
		{FinishMatte, "multiply"},
		{FinishSatin, "soft-light"},
		{FinishGloss, "overlay"},
		{"velvet", "multiply"},
	}
	for _, tt := range tests {
		if got := finishMode(tt.f).String(); got != tt.want {
			t.Errorf("finishMode(%q) = %s, want %s", tt.f, got, tt.want)
		}
	}
}

func TestCanvasAcquireTwicePanics(t *testing.T) {
	c := newCanvas(8, 8)
	c.acquire()
	defer func() {
		if recover() == nil {
			t.Error("second acquire did not panic")
		}
	}()
	c.acquire()
}

func TestCanvasFlushEmpty(t *testing.T) {
	c := newCanvas(8, 8).acquire()
	defer c.release()
	if _, ok := c.flush(2); ok {
		t.Error("flush() of an empty canvas reported a layer")
	}
}

func TestCanvasShadeAndRelease(t *testing.T) {
	c := newCanvas(32, 32).acquire()
	c.circle(Point{X: 16, Y: 16}, 6, solid(RGB{R: 255}, 1))

	o := c.layer.PixOffset(16, 16)
	if px := c.layer.Pix[o : o+4]; px[0] != 255 || px[3] != 255 {
		t.Errorf("layer centre = %v, want opaque red", px)
	}
	if c.cov.Data()[(16*32+16)*4+3] != 0 {
		t.Error("coverage not cleared after shading")
	}
	img, ok := c.flush(0)
	if !ok || !img.Bounds().In(c.bounds()) {
		t.Fatalf("flush() = %v, %v", img.Bounds(), ok)
	}

	c.release()
	for i, v := range c.layer.Pix {
		if v != 0 {
			t.Fatalf("layer byte %d = %d after release, want 0", i, v)
		}
	}
}
