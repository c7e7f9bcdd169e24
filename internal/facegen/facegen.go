// Package facegen builds synthetic landmark sets and video frames for both
// landmark schemes. The faces are frontal and anatomically plausible
// enough for every feature region to be a simple, correctly wound shape.
package facegen

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/gogpu/mirror"
)

// Box places a face: centre, width between the face-width landmarks and
// height of the face outline, all in pixels.
type Box struct {
	CX, CY, W, H float64
}

// Centered returns a box for a face filling about half of a w×h frame.
func Centered(w, h int) Box {
	fw := float64(min(w, h)) * 0.5
	return Box{CX: float64(w) / 2, CY: float64(h) / 2, W: fw, H: fw * 1.35}
}

// placer assigns landmark positions; the first placement of an index wins.
type placer struct {
	s    *mirror.Scheme
	b    Box
	pts  []mirror.Point
	done []bool
}

func (p *placer) put(i int, x, y float64) {
	if p.done[i] {
		return
	}
	p.pts[i] = mirror.Point{X: x, Y: y}
	p.done[i] = true
}

// loop spreads the indices of f over an ellipse. The angle of entry k of n
// is start + dir*360°*k/n, with y pointing down.
func (p *placer) loop(f mirror.Feature, cx, cy, rx, ry, start, dir float64) {
	idx := p.s.Indices(f)
	n := float64(len(idx))
	for k, i := range idx {
		th := (start + dir*360*float64(k)/n) * math.Pi / 180
		p.put(i, cx+rx*math.Cos(th), cy+ry*math.Sin(th))
	}
}

// line spreads the indices of f evenly from (x0,y0) to (x1,y1), lifted by
// arch at the middle.
func (p *placer) line(f mirror.Feature, x0, y0, x1, y1, arch float64) {
	idx := p.s.Indices(f)
	n := len(idx)
	for k, i := range idx {
		t := 0.5
		if n > 1 {
			t = float64(k) / float64(n-1)
		}
		lift := arch * math.Sin(math.Pi*t)
		p.put(i, x0+(x1-x0)*t, y0+(y1-y0)*t-lift)
	}
}

// cluster places the indices of f on a small circle around (cx, cy).
func (p *placer) cluster(f mirror.Feature, cx, cy, r float64) {
	idx := p.s.Indices(f)
	for k, i := range idx {
		th := 2 * math.Pi * float64(k) / float64(len(idx))
		p.put(i, cx+r*math.Cos(th), cy+r*math.Sin(th))
	}
}

// Face returns a frontal face in pixel coordinates for scheme.
func Face(s *mirror.Scheme, b Box) mirror.LandmarkSet {
	p := &placer{s: s, b: b, pts: make([]mirror.Point, s.Size()), done: make([]bool, s.Size())}
	W, H := b.W, b.H
	cx, cy := b.CX, b.CY

	fw := s.Indices(mirror.FeatureFaceWidth)
	p.put(fw[0], cx-W/2, cy)
	p.put(fw[len(fw)-1], cx+W/2, cy)

	// Eyes: right eye on the image left. Dense loops run outer corner,
	// lower lid, inner corner, upper lid; sparse loops run over the top.
	eyeDir := 1.0
	if s.Size() == mirror.Dense468.Size() {
		eyeDir = -1
	}
	eyeY := cy - 0.08*H
	p.loop(mirror.FeatureRightEye, cx-0.2*W, eyeY, 0.08*W, 0.03*H, 180, eyeDir)
	p.loop(mirror.FeatureLeftEye, cx+0.2*W, eyeY, 0.08*W, 0.03*H, 180, eyeDir)

	// Lips: left corner first, upper lip next.
	lipY := cy + 0.3*H
	p.loop(mirror.FeatureLipsOuter, cx, lipY, 0.18*W, 0.07*H, 180, 1)
	p.loop(mirror.FeatureLipsInner, cx, lipY, 0.13*W, 0.02*H, 180, 1)

	// Brows run outer to inner.
	browY := cy - 0.2*H
	p.line(mirror.FeatureRightBrow, cx-0.32*W, browY+0.02*H, cx-0.08*W, browY, 0.03*H)
	p.line(mirror.FeatureLeftBrow, cx+0.32*W, browY+0.02*H, cx+0.08*W, browY, 0.03*H)
	p.cluster(mirror.FeatureRightBrowBone, cx-0.1*W, browY-0.05*H, 0)
	p.cluster(mirror.FeatureLeftBrowBone, cx+0.1*W, browY-0.05*H, 0)

	p.line(mirror.FeatureNoseBridge, cx, cy-0.1*H, cx, cy+0.15*H, 0)

	if s.Size() == mirror.Dense468.Size() {
		// Outline from the forehead, clockwise on screen.
		p.loop(mirror.FeatureFaceOval, cx, cy, W/2, H/2, -90, 1)
	} else {
		// Jaw from the image left, over the chin to the image right; the
		// brows close the outline.
		jaw := s.Indices(mirror.FeatureFaceOval)[:17]
		for k, i := range jaw {
			th := math.Pi - math.Pi*float64(k)/16
			p.put(i, cx+W/2*math.Cos(th), cy+H/2*math.Sin(th))
		}
	}

	p.cluster(mirror.FeatureRightCheek, cx-0.24*W, cy+0.1*H, 0.04*W)
	p.cluster(mirror.FeatureLeftCheek, cx+0.24*W, cy+0.1*H, 0.04*W)
	p.cluster(mirror.FeatureRightCheekbone, cx-0.3*W, cy+0.02*H, 0)
	p.cluster(mirror.FeatureLeftCheekbone, cx+0.3*W, cy+0.02*H, 0)
	p.cluster(mirror.FeatureCheekSample, cx-0.22*W, cy+0.08*H, 0.03*W)

	// Everything else goes on a sunflower spiral inside the face.
	n := float64(s.Size())
	for i := range p.pts {
		r := math.Sqrt(float64(i)/n) * 0.3
		th := float64(i) * 2.399963
		p.put(i, cx+r*W*math.Cos(th), cy+r*H*math.Sin(th))
	}

	return mirror.LandmarkSet{Points: p.pts, Space: mirror.SpacePixel}
}

// Normalize converts a pixel-space set to [0,1] coordinates for a w×h
// frame.
func Normalize(ls mirror.LandmarkSet, w, h int) mirror.LandmarkSet {
	out := ls.Clone()
	if ls.Space == mirror.SpaceNormalized {
		return out
	}
	for i := range out.Points {
		out.Points[i].X /= float64(w)
		out.Points[i].Y /= float64(h)
	}
	out.Space = mirror.SpaceNormalized
	return out
}

// Translate returns ls moved by (dx, dy) in its own coordinate space.
func Translate(ls mirror.LandmarkSet, dx, dy float64) mirror.LandmarkSet {
	out := ls.Clone()
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

// Jitter returns ls with uniform noise of up to ±amount added to every
// coordinate, the way a detector wobbles between frames.
func Jitter(ls mirror.LandmarkSet, amount float64, rng *rand.Rand) mirror.LandmarkSet {
	out := ls.Clone()
	for i := range out.Points {
		out.Points[i].X += (rng.Float64()*2 - 1) * amount
		out.Points[i].Y += (rng.Float64()*2 - 1) * amount
	}
	return out
}

// Frame paints a w×h frame of background bg with a skin-coloured face
// ellipse for box b.
func Frame(w, h int, b Box, skin, bg color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rx, ry := b.W/2*1.05, b.H/2*1.05
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) + 0.5 - b.CX) / rx
			dy := (float64(y) + 0.5 - b.CY) / ry
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, skin)
			} else {
				img.SetNRGBA(x, y, bg)
			}
		}
	}
	return img
}

// Solid returns a w×h frame of a single colour.
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}
