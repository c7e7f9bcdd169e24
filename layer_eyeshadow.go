package mirror

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
)

const eyeshadowBlur = 8

// renderEyeshadow fills the area between each upper lid and brow.
func renderEyeshadow(e *layerEnv, hex string, opacity float64) int {
	col, a, ok := paint("eyeshadow", hex, opacity)
	if !ok {
		return 0
	}
	c := e.c.acquire()
	defer c.release()

	brush := solid(col, a*0.6)
	for _, eye := range [...]struct{ lid, brow Feature }{
		{FeatureRightUpperLid, FeatureRightBrow},
		{FeatureLeftUpperLid, FeatureLeftBrow},
	} {
		c.fill(lidRegion(e.r, eye.lid, eye.brow), gg.FillRuleNonZero, brush)
	}
	return e.composite(eyeshadowBlur, blend.ModeSourceOver, 1)
}

// lidRegion is the closed path along the lid from the inner to the outer
// corner, then back along the brow from its outer to its inner end.
func lidRegion(r *Resolver, lid, brow Feature) *gg.Path {
	pts := r.Points(lid)
	pts = append(pts, r.Points(brow)...)
	p := gg.NewPath()
	appendPolygon(p, pts, false)
	return p
}
