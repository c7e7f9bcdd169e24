package blend

import (
	"math"

	"github.com/gogpu/gg"
)

// Span composites a row of straight-alpha RGBA8 pixels from src onto dst.
//
// Each source alpha is multiplied by opacity and, when mask is non-nil, by
// mask[i]/255 for pixel i. dst and src must have the same length; mask,
// when present, holds one byte per pixel.
func Span(dst, src []uint8, mask []uint8, mode Mode, opacity float64) {
	if opacity <= 0 || math.IsNaN(opacity) {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	n := len(dst) / 4
	if len(src)/4 < n {
		n = len(src) / 4
	}
	for i := 0; i < n; i++ {
		o := i * 4
		sa := src[o+3]
		if sa == 0 {
			continue
		}
		if mask != nil {
			if sa = mulDiv255(sa, mask[i]); sa == 0 {
				continue
			}
		}
		a := float64(sa) / 255 * opacity
		s := gg.RGBA{
			R: float64(src[o]) / 255,
			G: float64(src[o+1]) / 255,
			B: float64(src[o+2]) / 255,
			A: a,
		}
		d := gg.RGBA{
			R: float64(dst[o]) / 255,
			G: float64(dst[o+1]) / 255,
			B: float64(dst[o+2]) / 255,
			A: float64(dst[o+3]) / 255,
		}
		r := Blend(s, d, mode)
		dst[o] = toByte(r.R)
		dst[o+1] = toByte(r.G)
		dst[o+2] = toByte(r.B)
		dst[o+3] = toByte(r.A)
	}
}

func toByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
