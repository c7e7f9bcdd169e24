package mirror

// AutoLayer is a blush or highlighter pass enabled by an impression preset.
type AutoLayer struct {
	Color     string
	Intensity float64
}

// ImpressionPreset is the static bundle of effect parameters behind an
// Impression.
type ImpressionPreset struct {
	Name string

	// SmoothingBoost scales the user's smoothing:
	// effective = clamp(smoothing * (1 + SmoothingBoost)).
	SmoothingBoost float64

	// Overlay is the flat tint composited with soft-light inside the face
	// oval. OverlayAlpha 0 disables it.
	Overlay      RGB
	OverlayAlpha float64

	Blush       *AutoLayer
	Highlighter *AutoLayer

	// Contour intensity is part of the look definition but has no renderer.
	Contour float64
}

var impressionPresets = map[Impression]ImpressionPreset{
	ImpressionOff: {
		Name: "Natural",
	},
	ImpressionKiss: {
		Name:           "Kiss",
		SmoothingBoost: 0.4,
		Overlay:        RGB{255, 182, 193},
		OverlayAlpha:   0.1,
		Highlighter:    &AutoLayer{Color: "#EAE0C8", Intensity: 0.35},
		Blush:          &AutoLayer{Color: "#FFB6C1", Intensity: 0.25},
	},
	ImpressionCute: {
		Name:           "Cute",
		SmoothingBoost: 0.35,
		Overlay:        RGB{255, 200, 200},
		OverlayAlpha:   0.1,
		Blush:          &AutoLayer{Color: "#FFCBA4", Intensity: 0.3},
	},
	ImpressionHollywood: {
		Name:           "Hollywood",
		SmoothingBoost: 0.5,
		Overlay:        RGB{255, 223, 186},
		OverlayAlpha:   0.1,
		Highlighter:    &AutoLayer{Color: "#F7E7CE", Intensity: 0.5},
		Contour:        0.3,
	},
	ImpressionGlamour: {
		Name:           "Glamour",
		SmoothingBoost: 0.6,
		Overlay:        RGB{0, 0, 0},
		OverlayAlpha:   0.05,
		Highlighter:    &AutoLayer{Color: "#F0F8FF", Intensity: 0.45},
		Contour:        0.4,
	},
}

// Preset returns a copy of the preset for mode; changing it does not
// affect later calls. Unknown modes resolve to "off".
func Preset(mode Impression) ImpressionPreset {
	p, ok := impressionPresets[mode]
	if !ok {
		p = impressionPresets[ImpressionOff]
	}
	if p.Blush != nil {
		b := *p.Blush
		p.Blush = &b
	}
	if p.Highlighter != nil {
		h := *p.Highlighter
		p.Highlighter = &h
	}
	return p
}

// EffectiveSmoothing returns the smoothing strength used by the skin
// layer for the given user smoothing.
func (p ImpressionPreset) EffectiveSmoothing(smoothing float64) float64 {
	return clamp01(clamp01(smoothing) * (1 + p.SmoothingBoost))
}
