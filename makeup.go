package mirror

import "fmt"

// Finish is a lipstick rendering variant.
type Finish string

// Lipstick finishes.
const (
	FinishMatte Finish = "matte"
	FinishSatin Finish = "satin"
	FinishGloss Finish = "gloss"
)

// LinerStyle is an eyeliner geometry variant.
type LinerStyle string

// Eyeliner styles.
const (
	LinerNatural LinerStyle = "natural"
	LinerClassic LinerStyle = "classic"
	LinerWinged  LinerStyle = "winged"
	LinerSmoky   LinerStyle = "smoky"
)

// Impression selects a bundled skin-rendering preset.
type Impression string

// Skin impressions.
const (
	ImpressionOff       Impression = "off"
	ImpressionKiss      Impression = "kiss"
	ImpressionCute      Impression = "cute"
	ImpressionHollywood Impression = "hollywood"
	ImpressionGlamour   Impression = "glamour"
)

// LipState configures the lipstick layer.
type LipState struct {
	Color   string  // hex, "#RRGGBB"
	Opacity float64 // [0,1]
	Finish  Finish
}

// EyeState configures the eyeshadow and eyeliner layers.
type EyeState struct {
	ShadowColor   string
	ShadowOpacity float64
	LinerColor    string
	LinerOpacity  float64
	LinerStyle    LinerStyle
}

// FaceState configures the blush and highlighter layers.
type FaceState struct {
	BlushColor         string
	BlushOpacity       float64
	HighlighterColor   string
	HighlighterOpacity float64
}

// SkinState configures the skin impression layer.
type SkinState struct {
	Impression Impression
	Smoothing  float64 // [0,1]
}

// MakeupState is a snapshot of the cosmetic configuration. It is a plain
// value: the UI replaces it wholesale each frame and the pipeline only
// reads it.
type MakeupState struct {
	Lips LipState
	Eyes EyeState
	Face FaceState
	Skin SkinState
}

// NoMakeup is the zero look: every layer is a no-op.
var NoMakeup = MakeupState{
	Lips: LipState{Finish: FinishMatte},
	Eyes: EyeState{LinerStyle: LinerNatural},
	Skin: SkinState{Impression: ImpressionOff},
}

// Validate reports enum values the renderers do not recognize.
// Rendering never requires a valid state; unknown values fall back to
// matte, natural and off.
func (m MakeupState) Validate() error {
	switch m.Lips.Finish {
	case FinishMatte, FinishSatin, FinishGloss, "":
	default:
		return fmt.Errorf("%w: lip finish %q", ErrInvalidConfig, m.Lips.Finish)
	}
	switch m.Eyes.LinerStyle {
	case LinerNatural, LinerClassic, LinerWinged, LinerSmoky, "":
	default:
		return fmt.Errorf("%w: liner style %q", ErrInvalidConfig, m.Eyes.LinerStyle)
	}
	if _, ok := impressionPresets[m.Skin.Impression]; !ok && m.Skin.Impression != "" {
		return fmt.Errorf("%w: impression %q", ErrInvalidConfig, m.Skin.Impression)
	}
	return nil
}
