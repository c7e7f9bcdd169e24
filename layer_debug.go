package mirror

import (
	"image"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// debugLabelEvery is the landmark index stride of the overlay labels.
const debugLabelEvery = 10

var (
	debugGreen = RGB{R: 0, G: 255, B: 0}
	debugRed   = RGB{R: 255, G: 0, B: 0}
	debugBlue  = RGB{R: 0, G: 0, B: 255}
)

// renderDebug marks every landmark on the surface: all points in green,
// the outer lip in red, both eyes in blue, and index labels every tenth
// point. It draws straight onto the surface, after every makeup layer.
func renderDebug(s *Surface, r *Resolver) int {
	dc := s.context()
	n := len(r.pts)

	dots := func(idx []int, rad float64, c RGB) {
		dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, 1)
		for _, i := range idx {
			p := r.Point(i)
			dc.DrawCircle(p.X, p.Y, rad)
			if err := dc.Fill(); err != nil {
				Logger().Debug("mirror: debug marker failed", "err", err)
				return
			}
		}
	}

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	dots(all, 2, debugGreen)
	dots(r.scheme.indices(FeatureLipsOuter), 3, debugRed)
	dots(r.scheme.indices(FeatureRightEye), 3, debugBlue)
	dots(r.scheme.indices(FeatureLeftEye), 3, debugBlue)

	d := font.Drawer{
		Dst:  s.Image(),
		Src:  image.NewUniform(nrgba(debugGreen.WithAlpha(1))),
		Face: basicfont.Face7x13,
	}
	for i := 0; i < n; i += debugLabelEvery {
		p := r.Point(i)
		d.Dot = fixed.P(int(p.X)+5, int(p.Y)-5)
		d.DrawString(strconv.Itoa(i))
	}
	return 1
}
