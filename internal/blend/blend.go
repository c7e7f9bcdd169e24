// Package blend provides the colour blending operations used to composite
// makeup layers onto the video surface.
//
// Colours are straight (non-premultiplied) alpha throughout. Separable
// modes follow the W3C Compositing and Blending Level 1 formulas:
//
//	Cs' = (1 - ab) * Cs + ab * B(Cb, Cs)
//	co  = as * Cs' + ab * Cb * (1 - as)
//	ao  = as + ab * (1 - as)
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/gg"

// Mode represents a blending mode.
type Mode int

const (
	// ModeSourceOver is the default alpha blending mode.
	ModeSourceOver Mode = iota
	// ModeMultiply darkens: B = Cs * Cb.
	ModeMultiply
	// ModeScreen lightens: B = Cs + Cb - Cs*Cb.
	ModeScreen
	// ModeOverlay is HardLight with the layers swapped.
	ModeOverlay
	// ModeSoftLight is a soft version of HardLight.
	ModeSoftLight
)

var modeNames = [...]string{
	ModeSourceOver: "source-over",
	ModeMultiply:   "multiply",
	ModeScreen:     "screen",
	ModeOverlay:    "overlay",
	ModeSoftLight:  "soft-light",
}

// String returns the CSS name of the mode.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Blend blends src onto dst using the specified mode.
// Unknown modes behave as ModeSourceOver.
func Blend(src, dst gg.RGBA, mode Mode) gg.RGBA {
	if mode == ModeSourceOver {
		return sourceOver(src, dst)
	}
	fn := channelFunc(mode)
	if fn == nil {
		return sourceOver(src, dst)
	}
	return separable(src, dst, fn)
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst gg.RGBA) gg.RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return gg.RGBA{}
	}

	return gg.RGBA{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// separable applies a per-channel blend function B(Cb, Cs).
func separable(src, dst gg.RGBA, fn func(cb, cs float64) float64) gg.RGBA {
	sa, da := src.A, dst.A
	if sa == 0 {
		return dst
	}
	outA := sa + da*(1-sa)
	if outA == 0 {
		return gg.RGBA{}
	}
	mix := func(cs, cb float64) float64 {
		c := (1-da)*cs + da*fn(cb, cs)
		return (sa*c + da*cb*(1-sa)) / outA
	}
	return gg.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: outA,
	}
}
