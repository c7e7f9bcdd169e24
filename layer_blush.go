package mirror

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
)

// blushRadius is the cheek disc radius as a fraction of face width.
const blushRadius = 0.15

// renderBlush draws a soft radial disc on each cheek, multiplied onto the
// skin.
func renderBlush(e *layerEnv, hex string, opacity float64) int {
	col, a, ok := paint("blush", hex, opacity)
	if !ok {
		return 0
	}
	c := e.c.acquire()
	defer c.release()

	rad := e.r.FaceWidth() * blushRadius
	if rad <= 0 {
		return 0
	}
	for _, f := range [...]Feature{FeatureRightCheek, FeatureLeftCheek} {
		p := e.r.Centroid(f)
		brush := gg.NewRadialGradientBrush(p.X, p.Y, 0, rad).
			AddColorStop(0, col.WithAlpha(a*0.6)).
			AddColorStop(0.6, col.WithAlpha(a*0.3)).
			AddColorStop(1, col.WithAlpha(0))
		c.circle(p, rad, brush)
	}
	return e.composite(0, blend.ModeMultiply, 1)
}
