package mirror

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
	"github.com/gogpu/mirror/internal/filter"
)

// canvas is the scratch raster a layer renderer draws into before the
// layer is composited onto the surface.
//
// Shapes are rasterised by gg in solid white on a transparent pixmap, so
// the alpha channel is the anti-aliased coverage. Each shape is then
// shaded with its brush and accumulated source-over into layer. Only the
// dirty rectangle of either buffer is ever touched or cleared.
type canvas struct {
	w, h int

	cov *gg.Pixmap
	dc  *gg.Context

	layer *image.NRGBA
	dirty image.Rectangle

	busy bool
}

func newCanvas(w, h int) *canvas {
	cov := gg.NewPixmap(w, h)
	return &canvas{
		w:     w,
		h:     h,
		cov:   cov,
		dc:    gg.NewContext(w, h, gg.WithPixmap(cov)),
		layer: image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

// acquire hands the canvas to one renderer. Pair every acquire with a
// deferred release.
func (c *canvas) acquire() *canvas {
	if c.busy {
		panic("mirror: canvas acquired twice")
	}
	c.busy = true
	c.resetStyle()
	return c
}

// release clears everything drawn since acquire and restores default
// drawing state.
func (c *canvas) release() {
	clearNRGBA(c.layer, c.dirty)
	c.dirty = image.Rectangle{}
	c.dc.ClearPath()
	c.resetStyle()
	c.busy = false
}

func (c *canvas) resetStyle() {
	c.dc.SetFillRule(gg.FillRuleNonZero)
	c.dc.SetLineWidth(1)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.dc.SetRGBA(1, 1, 1, 1)
}

func (c *canvas) bounds() image.Rectangle {
	return image.Rect(0, 0, c.w, c.h)
}

// fill rasterises p with the given fill rule and shades it with brush.
func (c *canvas) fill(p *gg.Path, rule gg.FillRule, brush gg.Brush) {
	r := pathBounds(p, 0).Intersect(c.bounds())
	if r.Empty() {
		return
	}
	c.dc.SetFillRule(rule)
	c.replay(p)
	if err := c.dc.Fill(); err != nil {
		Logger().Debug("mirror: fill failed", "err", err)
	}
	c.dc.SetFillRule(gg.FillRuleNonZero)
	c.shade(r, brush)
}

// stroke rasterises the outline of p with round caps and joins.
func (c *canvas) stroke(p *gg.Path, width float64, brush gg.Brush) {
	if width <= 0 {
		return
	}
	r := pathBounds(p, width/2).Intersect(c.bounds())
	if r.Empty() {
		return
	}
	c.dc.SetLineWidth(width)
	c.replay(p)
	if err := c.dc.Stroke(); err != nil {
		Logger().Debug("mirror: stroke failed", "err", err)
	}
	c.shade(r, brush)
}

// circle fills a disc of radius rad centred at p.
func (c *canvas) circle(p Point, rad float64, brush gg.Brush) {
	c.ellipse(p, rad, rad, brush)
}

// ellipse fills an axis-aligned ellipse centred at p.
func (c *canvas) ellipse(p Point, rx, ry float64, brush gg.Brush) {
	if rx <= 0 || ry <= 0 {
		return
	}
	path := gg.NewPath()
	path.Ellipse(p.X, p.Y, rx, ry)
	c.fill(path, gg.FillRuleNonZero, brush)
}

func (c *canvas) replay(p *gg.Path) {
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			c.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			c.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			c.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			c.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			c.dc.ClosePath()
		}
	}
}

// shade converts the coverage inside r into brush colour, accumulates it
// into the layer and clears the coverage.
func (c *canvas) shade(r image.Rectangle, brush gg.Brush) {
	cov := c.cov.Data()
	stride := c.w * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := cov[y*stride : (y+1)*stride]
		for x := r.Min.X; x < r.Max.X; x++ {
			i := x*4 + 3
			a := row[i]
			if a == 0 {
				continue
			}
			row[i-3], row[i-2], row[i-1], row[i] = 0, 0, 0, 0

			col := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			col.A *= float64(a) / 255
			if col.A <= 0 {
				continue
			}
			o := c.layer.PixOffset(x, y)
			px := c.layer.Pix[o : o+4 : o+4]
			dst := gg.RGBA{
				R: float64(px[0]) / 255,
				G: float64(px[1]) / 255,
				B: float64(px[2]) / 255,
				A: float64(px[3]) / 255,
			}
			out := blend.Blend(col, dst, blend.ModeSourceOver)
			px[0], px[1], px[2], px[3] = unit8(out.R), unit8(out.G), unit8(out.B), unit8(out.A)
		}
	}
	c.dirty = c.dirty.Union(r)
}

// flush returns the accumulated layer cropped to its dirty rectangle,
// grown by the blur margin and blurred with sigma. The returned image
// does not alias the canvas. ok is false when nothing was drawn.
func (c *canvas) flush(sigma float64) (img *image.NRGBA, ok bool) {
	if c.dirty.Empty() {
		return nil, false
	}
	r := c.dirty.Inset(-filter.Margin(sigma)).Intersect(c.bounds())
	crop := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(crop.Pix[crop.PixOffset(r.Min.X, y):crop.PixOffset(r.Max.X-1, y)+4],
			c.layer.Pix[c.layer.PixOffset(r.Min.X, y):c.layer.PixOffset(r.Max.X-1, y)+4])
	}
	return filter.NewBlurFilter(sigma).Apply(crop), true
}

// coverage returns the alpha of the layer inside r as a one-byte-per-pixel
// mask. It is used to clip a composite to a drawn region.
func (c *canvas) coverage(r image.Rectangle) []uint8 {
	r = r.Intersect(c.bounds())
	mask := make([]uint8, r.Dx()*r.Dy())
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			mask[i] = c.layer.Pix[c.layer.PixOffset(x, y)+3]
			i++
		}
	}
	return mask
}

func clearNRGBA(img *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y) : img.PixOffset(r.Max.X-1, y)+4]
		clear(row)
	}
}

// pathBounds returns the pixel rectangle covering every point of p grown
// by pad plus one pixel for anti-aliasing.
func pathBounds(p *gg.Path, pad float64) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(pt gg.Point) {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case gg.MoveTo:
			add(e.Point)
		case gg.LineTo:
			add(e.Point)
		case gg.QuadTo:
			add(e.Control)
			add(e.Point)
		case gg.CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if math.IsInf(minX, 1) {
		return image.Rectangle{}
	}
	pad++
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// nrgba converts a straight-alpha gg colour to color.NRGBA.
func nrgba(c gg.RGBA) color.NRGBA {
	return color.NRGBA{R: unit8(c.R), G: unit8(c.G), B: unit8(c.B), A: unit8(c.A)}
}
