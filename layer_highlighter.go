package mirror

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
)

const highlighterBlur = 4

// renderHighlighter adds light along the nose bridge and on the cheekbones,
// cupid's bow and brow bones.
func renderHighlighter(e *layerEnv, hex string, opacity float64) int {
	col, a, ok := paint("highlighter", hex, opacity)
	if !ok {
		return 0
	}
	c := e.c.acquire()
	defer c.release()

	u := e.u

	// Nose bridge: a line fading in towards the middle and out again.
	nose := e.r.Points(FeatureNoseBridge)
	top, bot := nose[0], nose[len(nose)-1]
	grad := gg.NewLinearGradientBrush(top.X, top.Y, bot.X, bot.Y).
		AddColorStop(0, col.WithAlpha(0)).
		AddColorStop(0.5, col.WithAlpha(a)).
		AddColorStop(1, col.WithAlpha(0))
	line := gg.NewPath()
	line.MoveTo(top.X, top.Y)
	line.LineTo(bot.X, bot.Y)
	c.stroke(line, 12*u, grad)

	spot := func(p Point, rad, k float64) {
		c.circle(p, rad, glow(p, rad, col, a*k))
	}
	spot(e.r.Centroid(FeatureRightCheekbone), 25*u, 0.8)
	spot(e.r.Centroid(FeatureLeftCheekbone), 25*u, 0.8)
	spot(e.r.Centroid(FeatureCupidsBow), 8*u, 0.8)
	spot(e.r.Centroid(FeatureRightBrowBone), 12*u, 0.5)
	spot(e.r.Centroid(FeatureLeftBrowBone), 12*u, 0.5)

	return e.composite(highlighterBlur, blend.ModeScreen, 1)
}
