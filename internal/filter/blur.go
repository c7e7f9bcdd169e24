package filter

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// BlurFilter applies a Gaussian blur with standard deviation Sigma pixels.
type BlurFilter struct {
	Sigma float64
}

// NewBlurFilter creates a new blur filter.
func NewBlurFilter(sigma float64) *BlurFilter {
	return &BlurFilter{Sigma: sigma}
}

// Margin returns the padding in pixels a crop needs around drawn content
// so the blur tail fits: ceil(3*sigma).
func Margin(sigma float64) int {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// Apply blurs src and returns the result with the same bounds as src.
// A non-positive sigma returns src unchanged.
//
// Colour is weighted by alpha, so transparent pixels around a shape do not
// darken its blurred edge.
func (f *BlurFilter) Apply(src *image.NRGBA) *image.NRGBA {
	if src == nil || f.Sigma <= 0 || math.IsNaN(f.Sigma) {
		return src
	}
	b := src.Bounds()
	if b.Empty() {
		return src
	}
	dst := imaging.Blur(src, f.Sigma)
	dst.Rect = b
	return dst
}
