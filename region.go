package mirror

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// referenceFaceWidth is the face width in pixels at which layer sizes are
// authored. Sizes scale by FaceWidth()/referenceFaceWidth.
const referenceFaceWidth = 300

// Resolver maps scheme features to surface-space geometry for one frame.
// It is a pure function of its inputs and allocates only the slices and
// paths it returns.
type Resolver struct {
	scheme *Scheme
	pts    []Point
	space  CoordinateSpace
	w, h   float64
	sx, sy float64 // frame pixel to surface pixel scale
	mirror bool
}

// NewResolver creates a resolver over lm for a surface of width × height.
// Pixel-space landmarks are taken to be surface pixels; use ScaleFrom when
// the video frame has another size. When mirror is set x is mapped to
// width − x, matching a horizontally flipped video frame. lm must match the
// scheme; see Scheme.Validate.
func NewResolver(scheme *Scheme, lm LandmarkSet, width, height int, mirror bool) *Resolver {
	return &Resolver{
		scheme: scheme,
		pts:    lm.Points,
		space:  lm.Space,
		w:      float64(width),
		h:      float64(height),
		sx:     1,
		sy:     1,
		mirror: mirror,
	}
}

// ScaleFrom declares that pixel-space landmarks are in the coordinates of
// a frameW × frameH video frame, which the surface shows scaled to its own
// size. Non-positive sizes leave the scale at 1. It returns r.
func (r *Resolver) ScaleFrom(frameW, frameH int) *Resolver {
	r.sx, r.sy = 1, 1
	if frameW > 0 && frameH > 0 {
		r.sx = r.w / float64(frameW)
		r.sy = r.h / float64(frameH)
	}
	return r
}

// Scheme returns the landmark scheme.
func (r *Resolver) Scheme() *Scheme { return r.scheme }

// Point returns landmark idx in surface pixels.
func (r *Resolver) Point(idx int) Point {
	p := r.pts[idx]
	if r.space == SpaceNormalized {
		p.X *= r.w
		p.Y *= r.h
	} else {
		p.X *= r.sx
		p.Y *= r.sy
	}
	if r.mirror {
		p.X = r.w - p.X
	}
	return p
}

// Points returns the surface-space points of f in table order.
func (r *Resolver) Points(f Feature) []Point {
	return r.pointsOf(r.scheme.indices(f))
}

func (r *Resolver) pointsOf(idx []int) []Point {
	out := make([]Point, len(idx))
	for i, j := range idx {
		out[i] = r.Point(j)
	}
	return out
}

// Centroid returns the arithmetic mean of the points of f.
func (r *Resolver) Centroid(f Feature) Point {
	return r.CentroidOf(r.scheme.indices(f))
}

// CentroidOf returns the arithmetic mean of the given landmarks.
func (r *Resolver) CentroidOf(idx []int) Point {
	if len(idx) == 0 {
		return Point{}
	}
	var sum Point
	for _, j := range idx {
		sum = sum.Add(r.Point(j))
	}
	return sum.Scale(1 / float64(len(idx)))
}

// ClosedPath returns a polygon through the points of f: move to the
// first, line to the rest, close.
func (r *Resolver) ClosedPath(f Feature) *gg.Path {
	p := gg.NewPath()
	appendPolygon(p, r.Points(f), false)
	return p
}

// OpenPath returns a polyline through the points of f.
func (r *Resolver) OpenPath(f Feature) *gg.Path {
	p := gg.NewPath()
	appendPolyline(p, r.Points(f))
	return p
}

// HoledPath returns a path made of the outer loop forward and the inner
// loop in reverse. Filled with the even-odd rule it covers the ring between
// them.
func (r *Resolver) HoledPath(outer, inner Feature) *gg.Path {
	p := gg.NewPath()
	appendPolygon(p, r.Points(outer), false)
	appendPolygon(p, r.Points(inner), true)
	return p
}

// Bounds returns the pixel rectangle around the points of f grown by
// margin and clipped to the surface.
func (r *Resolver) Bounds(f Feature, margin float64) image.Rectangle {
	pts := r.Points(f)
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	rect := image.Rect(
		int(math.Floor(minX-margin)), int(math.Floor(minY-margin)),
		int(math.Ceil(maxX+margin)), int(math.Ceil(maxY+margin)),
	)
	return rect.Intersect(image.Rect(0, 0, int(r.w), int(r.h)))
}

// FaceWidth returns the distance between the two faceWidth landmarks.
func (r *Resolver) FaceWidth() float64 {
	idx := r.scheme.indices(FeatureFaceWidth)
	return r.Point(idx[len(idx)-1]).Sub(r.Point(idx[0])).Len()
}

// Unit returns the size scale: FaceWidth()/300, never zero.
func (r *Resolver) Unit() float64 {
	u := r.FaceWidth() / referenceFaceWidth
	if u <= 0 || math.IsNaN(u) {
		return 1
	}
	return u
}

func appendPolygon(p *gg.Path, pts []Point, reverse bool) {
	if len(pts) == 0 {
		return
	}
	if reverse {
		p.MoveTo(pts[len(pts)-1].X, pts[len(pts)-1].Y)
		for i := len(pts) - 2; i >= 0; i-- {
			p.LineTo(pts[i].X, pts[i].Y)
		}
	} else {
		p.MoveTo(pts[0].X, pts[0].Y)
		for _, q := range pts[1:] {
			p.LineTo(q.X, q.Y)
		}
	}
	p.Close()
}

func appendPolyline(p *gg.Path, pts []Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
}
