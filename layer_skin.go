package mirror

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
	"github.com/gogpu/mirror/internal/filter"
)

// Skin smoothing scales: blur radius in pixels and blend alpha per unit of
// effective smoothing.
const (
	smoothRadius = 8
	smoothAlpha  = 0.7
)

// renderSkin applies the skin impression: smoothing of the face region,
// the preset's colour grade and the preset's automatic blush and
// highlighter.
func renderSkin(e *layerEnv, skin SkinState) int {
	preset := Preset(skin.Impression)
	n := 0
	if s := preset.EffectiveSmoothing(skin.Smoothing); s > 0 {
		n += e.smoothSkin(s)
	}
	if preset.OverlayAlpha > 0 {
		n += e.gradeSkin(preset.Overlay, preset.OverlayAlpha)
	}
	if b := preset.Blush; b != nil {
		n += renderBlush(e, b.Color, b.Intensity)
	}
	if h := preset.Highlighter; h != nil {
		n += renderHighlighter(e, h.Color, h.Intensity)
	}
	return n
}

// smoothSkin blends a blurred copy of the face back over itself through
// the face-oval mask.
func (e *layerEnv) smoothSkin(s float64) int {
	c := e.c.acquire()
	defer c.release()

	radius := smoothRadius * s
	bounds := e.r.Bounds(FeatureFaceOval, radius)
	if bounds.Empty() {
		return 0
	}
	c.fill(e.r.ClosedPath(FeatureFaceOval), gg.FillRuleNonZero, solid(White, 1))
	mask := c.coverage(bounds)

	blurred, err := filter.NewStackFilter(radius).Apply(e.s.Crop(bounds))
	if err != nil {
		Logger().Debug("mirror: skin smoothing skipped", "err", err)
		return 0
	}
	e.s.Composite(blurred, blend.ModeSourceOver, smoothAlpha*s, mask)
	return 1
}

// gradeSkin soft-lights a flat tint over the face oval.
func (e *layerEnv) gradeSkin(tint RGB, alpha float64) int {
	c := e.c.acquire()
	defer c.release()

	c.fill(e.r.ClosedPath(FeatureFaceOval), gg.FillRuleNonZero, solid(tint, alpha))
	return e.composite(0, blend.ModeSoftLight, 1)
}
