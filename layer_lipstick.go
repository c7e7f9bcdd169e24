package mirror

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
)

const (
	lipBlur   = 1.5
	glossBlur = 4
)

// finishMode returns the blend mode of a lipstick finish.
func finishMode(f Finish) blend.Mode {
	switch f {
	case FinishSatin:
		return blend.ModeSoftLight
	case FinishGloss:
		return blend.ModeOverlay
	default:
		return blend.ModeMultiply
	}
}

// renderLipstick tints the lip ring between the outer and inner lip
// contours, leaving the mouth opening untouched. The gloss finish adds a
// soft white highlight on the lower lip.
func renderLipstick(e *layerEnv, hex string, opacity float64, finish Finish) int {
	col, a, ok := paint("lipstick", hex, opacity)
	if !ok {
		return 0
	}
	n := e.lipTint(col, a, finish)
	if finish == FinishGloss {
		n += e.lipGloss(a)
	}
	return n
}

func (e *layerEnv) lipTint(col RGB, a float64, finish Finish) int {
	c := e.c.acquire()
	defer c.release()

	c.fill(e.r.HoledPath(FeatureLipsOuter, FeatureLipsInner), gg.FillRuleEvenOdd, solid(col, 1))
	return e.composite(lipBlur, finishMode(finish), a)
}

func (e *layerEnv) lipGloss(a float64) int {
	c := e.c.acquire()
	defer c.release()

	p := e.r.Centroid(FeatureLowerLipCenter)
	c.ellipse(p, 12*e.u, 6*e.u, solid(White, 1))
	return e.composite(glossBlur, blend.ModeSourceOver, a*0.5)
}
