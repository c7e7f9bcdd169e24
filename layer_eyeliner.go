package mirror

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
)

// linerShape holds the per-style eyeliner parameters.
type linerShape struct {
	wing  float64 // fraction of the outer-corner to brow-tail distance; 0 = no wing
	width float64 // stroke width in size units
	blur  float64 // Gaussian sigma in pixels
}

func linerShapeOf(style LinerStyle) linerShape {
	switch style {
	case LinerClassic:
		return linerShape{wing: 0.15, width: 5, blur: 0.5}
	case LinerWinged:
		return linerShape{wing: 0.25, width: 5, blur: 0.5}
	case LinerSmoky:
		return linerShape{wing: 0.15, width: 5, blur: 4}
	default:
		return linerShape{width: 3, blur: 0.5}
	}
}

// wingTip returns the end of the eyeliner wing: the point at fraction k of
// the way from the outer eye corner towards the brow tail.
func wingTip(outer, tail Point, k float64) Point {
	return outer.Add(tail.Sub(outer).Scale(k))
}

type eyeSide struct {
	lid, outer, tail, ret Feature
}

var eyeSides = [...]eyeSide{
	{FeatureRightUpperLid, FeatureRightEyeOuter, FeatureRightBrowTail, FeatureRightLidReturn},
	{FeatureLeftUpperLid, FeatureLeftEyeOuter, FeatureLeftBrowTail, FeatureLeftLidReturn},
}

// renderEyeliner strokes the upper lash line of both eyes and, for winged
// styles, extends it into a filled flick towards the brow tail.
func renderEyeliner(e *layerEnv, hex string, opacity float64, style LinerStyle) int {
	col, a, ok := paint("eyeliner", hex, opacity)
	if !ok {
		return 0
	}
	c := e.c.acquire()
	defer c.release()

	shape := linerShapeOf(style)
	brush := solid(col, 1)
	for _, side := range eyeSides {
		lid := e.r.Points(side.lid)
		line := gg.NewPath()
		appendPolyline(line, lid)

		if shape.wing > 0 {
			tip := wingTip(e.r.Centroid(side.outer), e.r.Centroid(side.tail), shape.wing)
			ret := e.r.Centroid(side.ret)
			line.LineTo(tip.X, tip.Y)
			line.LineTo(ret.X, ret.Y)

			wing := gg.NewPath()
			appendPolygon(wing, wingOutline(e.r, side, tip), false)
			c.fill(wing, gg.FillRuleNonZero, brush)
		}
		c.stroke(line, shape.width*e.u, brush)
	}
	return e.composite(shape.blur, blend.ModeSourceOver, a)
}

// wingOutline is the lash line from the return point to the outer corner,
// closed through the wing tip.
func wingOutline(r *Resolver, side eyeSide, tip Point) []Point {
	idx := r.scheme.indices(side.lid)
	ret := r.scheme.indices(side.ret)[0]
	start := slices.Index(idx, ret)
	var pts []Point
	if start < 0 {
		pts = []Point{r.Point(ret), r.Centroid(side.outer)}
	} else {
		pts = r.pointsOf(idx[start:])
	}
	return append(pts, tip)
}
