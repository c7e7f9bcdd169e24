package mirror

// ToneCategory is the brightness class of a skin sample.
type ToneCategory string

// Tone categories, from lightest to darkest.
const (
	ToneFair   ToneCategory = "fair"
	ToneLight  ToneCategory = "light"
	ToneMedium ToneCategory = "medium"
	ToneTan    ToneCategory = "tan"
	ToneDeep   ToneCategory = "deep"
)

// Undertone is the hue class of a skin sample.
type Undertone string

// Undertones.
const (
	UndertoneCool    Undertone = "cool"
	UndertoneNeutral Undertone = "neutral"
	UndertoneWarm    Undertone = "warm"
)

// SkinAnalysis is the result of classifying a skin colour.
type SkinAnalysis struct {
	Tone      ToneCategory
	Undertone Undertone
	Color     RGB
}

// DominantColor returns the sampled colour as "rgb(r, g, b)".
func (a SkinAnalysis) DominantColor() string { return a.Color.String() }

// AnalyzeSkinTone classifies a skin colour by HSV value into a tone
// category and by hue into an undertone.
//
//	value > 0.85 fair, > 0.75 light, > 0.6 medium, > 0.45 tan, else deep
//	hue < 0.05 turn cool, > 0.1 turn warm, else neutral
func AnalyzeSkinTone(c RGB) SkinAnalysis {
	h, _, v := c.HSV()

	a := SkinAnalysis{Color: c}
	switch {
	case v > 0.85:
		a.Tone = ToneFair
	case v > 0.75:
		a.Tone = ToneLight
	case v > 0.6:
		a.Tone = ToneMedium
	case v > 0.45:
		a.Tone = ToneTan
	default:
		a.Tone = ToneDeep
	}
	switch {
	case h < 0.05:
		a.Undertone = UndertoneCool
	case h > 0.1:
		a.Undertone = UndertoneWarm
	default:
		a.Undertone = UndertoneNeutral
	}
	return a
}

// SampleSkinTone averages the 3×3 pixel neighbourhoods around the scheme's
// cheek sample landmarks on s and classifies the result.
func SampleSkinTone(s *Surface, r *Resolver) SkinAnalysis {
	var sr, sg, sb, n int
	for _, p := range r.Points(FeatureCheekSample) {
		x, y := int(p.X), int(p.Y)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				c := s.RGBAt(x+dx, y+dy)
				sr += int(c.R)
				sg += int(c.G)
				sb += int(c.B)
				n++
			}
		}
	}
	if n == 0 {
		return AnalyzeSkinTone(RGB{})
	}
	return AnalyzeSkinTone(RGB{
		R: uint8((sr + n/2) / n),
		G: uint8((sg + n/2) / n),
		B: uint8((sb + n/2) / n),
	})
}

var recommended = map[Undertone][]string{
	UndertoneWarm:    {"Coral Crush", "Peach Kiss", "Brick Red", "Burnt Orange", "Honey Nude"},
	UndertoneCool:    {"Soft Pink", "Fuchsia", "Berry Bliss", "Wine", "Rose Petal"},
	UndertoneNeutral: {"Classic Red", "Mauve Magic", "Rose Nude", "Mocha", "Burgundy"},
}

// RecommendedShades returns the lipstick shades suggested for the
// analysed undertone, in order of preference.
func RecommendedShades(a SkinAnalysis) []Shade {
	names, ok := recommended[a.Undertone]
	if !ok {
		names = recommended[UndertoneNeutral]
	}
	out := make([]Shade, 0, len(names))
	for _, name := range names {
		if s, ok := FindShade(LipstickPalette, name); ok {
			out = append(out, s)
		}
	}
	return out
}
