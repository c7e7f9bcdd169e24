package filter

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/esimov/stackblur-go"
)

// StackFilter applies a stack blur, a fast approximation of Gaussian blur
// whose cost does not grow with the radius.
type StackFilter struct {
	Radius uint32
}

// NewStackFilter creates a stack blur with the given radius in pixels.
func NewStackFilter(radius float64) *StackFilter {
	if radius < 0 {
		radius = 0
	}
	return &StackFilter{Radius: uint32(radius + 0.5)}
}

// Apply blurs src and returns the result with the same bounds as src.
// Radius 0 returns src unchanged.
func (f *StackFilter) Apply(src *image.NRGBA) (*image.NRGBA, error) {
	if src == nil || f.Radius == 0 || src.Bounds().Empty() {
		return src, nil
	}
	b := src.Bounds()
	view := *src
	view.Rect = image.Rect(0, 0, b.Dx(), b.Dy())
	out, err := stackblur.Process(&view, f.Radius)
	if err != nil {
		return nil, fmt.Errorf("filter: stack blur r=%d: %w", f.Radius, err)
	}
	dst := imaging.Clone(out)
	dst.Rect = b
	return dst, nil
}
