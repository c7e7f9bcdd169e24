package mirror

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/mirror/internal/blend"
)

// layerEnv is what a layer renderer works with for one frame.
type layerEnv struct {
	s *Surface
	c *canvas
	r *Resolver
	u float64 // size unit, face width / 300
}

// paint resolves a colour and opacity pair. ok is false when the layer
// must be skipped: the colour does not parse, or opacity is not positive.
// Opacity above 1 is clamped.
func paint(layer, hex string, opacity float64) (RGB, float64, bool) {
	if opacity <= 0 || math.IsNaN(opacity) {
		return RGB{}, 0, false
	}
	c, ok := ParseHex(hex)
	if !ok {
		Logger().Debug("mirror: layer skipped, bad colour", "layer", layer, "color", hex)
		return RGB{}, 0, false
	}
	return c, clamp01(opacity), true
}

// composite blurs what the canvas accumulated and blends it onto the
// surface. It returns the number of composites issued: 0 or 1.
func (e *layerEnv) composite(sigma float64, mode blend.Mode, opacity float64) int {
	img, ok := e.c.flush(sigma)
	if !ok {
		return 0
	}
	e.s.Composite(img, mode, opacity, nil)
	return 1
}

func solid(c RGB, a float64) gg.Brush {
	return gg.Solid(c.WithAlpha(a))
}

// glow returns a radial brush fading from alpha a at p to transparent at
// radius rad.
func glow(p Point, rad float64, c RGB, a float64) gg.Brush {
	return gg.NewRadialGradientBrush(p.X, p.Y, 0, rad).
		AddColorStop(0, c.WithAlpha(a)).
		AddColorStop(1, c.WithAlpha(0))
}
