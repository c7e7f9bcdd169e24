package mirror

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB" or "RRGGBB" (case-insensitive).
// ok is false for anything else, including the empty string and the
// short "#RGB" form.
func ParseHex(s string) (c RGB, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	col, err := colorful.Hex("#" + s)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// Hex returns the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the colour in CSS rgb() notation.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// WithAlpha returns the colour as a gg colour with straight alpha a.
func (c RGB) WithAlpha(a float64) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: clamp01(a),
	}
}

// HSV returns hue in turns [0,1), saturation and value in [0,1].
func (c RGB) HSV() (h, s, v float64) {
	h, s, v = colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return h / 360, s, v
}

// White is the highlight colour used by the gloss finish.
var White = RGB{R: 255, G: 255, B: 255}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
