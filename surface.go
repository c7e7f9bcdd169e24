package mirror

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/mirror/internal/blend"
	"github.com/gogpu/mirror/internal/parallel"
)

// Surface is the output pixel buffer the pipeline draws into.
// Pixels are straight-alpha RGBA8, backed by a gg.Pixmap so gg contexts can
// draw on it directly.
type Surface struct {
	w, h int
	pm   *gg.Pixmap
	img  *image.NRGBA // shares pm's pixels
	dc   *gg.Context  // lazily created, see context

	bands *parallel.Bands
}

// NewSurface allocates a transparent surface of the given size.
func NewSurface(width, height int) *Surface {
	pm := gg.NewPixmap(width, height)
	return &Surface{
		w:  width,
		h:  height,
		pm: pm,
		img: &image.NRGBA{
			Pix:    pm.Data(),
			Stride: width * 4,
			Rect:   image.Rect(0, 0, width, height),
		},
		bands: parallel.NewBands(0),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.w }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.h }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// Image returns the surface pixels as an image. The image shares memory
// with the surface and is overwritten by the next frame.
func (s *Surface) Image() *image.NRGBA { return s.img }

// Pixmap returns the backing gg pixmap.
func (s *Surface) Pixmap() *gg.Pixmap { return s.pm }

// Clear makes every pixel transparent.
func (s *Surface) Clear() {
	clear(s.img.Pix)
}

// DrawFrame replaces the surface contents with frame scaled to the
// surface size, flipped horizontally when mirror is set.
func (s *Surface) DrawFrame(frame image.Image, mirror bool) {
	if frame == nil {
		s.Clear()
		return
	}
	src := frame
	if mirror {
		src = imaging.FlipH(frame)
	}
	xdraw.ApproxBiLinear.Scale(s.img, s.img.Rect, src, src.Bounds(), xdraw.Src, nil)
}

// Crop returns a copy of the pixels inside r, keeping r's coordinates.
func (s *Surface) Crop(r image.Rectangle) *image.NRGBA {
	r = r.Intersect(s.img.Rect)
	out := imaging.Crop(s.img, r)
	out.Rect = r
	return out
}

// RGBAt returns the colour of the pixel at (x, y), clamped to the surface.
func (s *Surface) RGBAt(x, y int) RGB {
	x = min(max(x, 0), s.w-1)
	y = min(max(y, 0), s.h-1)
	o := s.img.PixOffset(x, y)
	return RGB{R: s.img.Pix[o], G: s.img.Pix[o+1], B: s.img.Pix[o+2]}
}

// Composite blends src onto the surface at src's bounds with mode.
// Source alpha is scaled by opacity and, when mask is non-nil, by the mask
// byte of each pixel; mask covers src.Bounds() row-major.
func (s *Surface) Composite(src *image.NRGBA, mode blend.Mode, opacity float64, mask []uint8) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	r := sb.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	n := r.Dx()
	s.bands.Rows(r.Min.Y, r.Max.Y, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			d := s.img.PixOffset(r.Min.X, y)
			so := src.PixOffset(r.Min.X, y)
			var m []uint8
			if mask != nil {
				mo := (y-sb.Min.Y)*sb.Dx() + (r.Min.X - sb.Min.X)
				m = mask[mo : mo+n]
			}
			blend.Span(s.img.Pix[d:d+n*4], src.Pix[so:so+n*4], m, mode, opacity)
		}
	})
}

// context returns a gg context drawing directly on the surface.
func (s *Surface) context() *gg.Context {
	if s.dc == nil {
		s.dc = gg.NewContext(s.w, s.h, gg.WithPixmap(s.pm))
	}
	return s.dc
}
