package mirror

import "strings"

// Shade is a named product colour.
type Shade struct {
	Name     string
	Color    string
	Category string // lipsticks only: everyday, classic or bold
}

// LipstickPalette lists the built-in lipstick shades.
var LipstickPalette = []Shade{
	{"Bare Natural", "#CEB7A9", "everyday"},
	{"Honey Nude", "#C7A78C", "everyday"},
	{"Rose Nude", "#CDAFAF", "everyday"},
	{"Mocha", "#AF8C73", "everyday"},
	{"Soft Pink", "#DCAAB4", "everyday"},
	{"Rose Petal", "#C88CA0", "everyday"},
	{"Hot Pink", "#DB7093", "bold"},
	{"Fuchsia", "#FF69B4", "bold"},
	{"Classic Red", "#C84646", "classic"},
	{"Cherry Red", "#B4373C", "classic"},
	{"Brick Red", "#AF5A4B", "bold"},
	{"Wine", "#8C465A", "bold"},
	{"Coral Crush", "#E69682", "everyday"},
	{"Peach Kiss", "#EBAF96", "everyday"},
	{"Burnt Orange", "#C87850", "bold"},
	{"Berry Bliss", "#A55A78", "bold"},
	{"Plum Perfect", "#8C5064", "bold"},
	{"Mauve Magic", "#AF8291", "everyday"},
	{"Burgundy", "#78323C", "bold"},
	{"Deep Plum", "#643C50", "bold"},
}

// EyeshadowPalette lists the built-in eyeshadow shades.
var EyeshadowPalette = []Shade{
	{Name: "Champagne", Color: "#F1DDCF"},
	{Name: "Taupe", Color: "#836953"},
	{Name: "Bronze", Color: "#CD7F32"},
	{Name: "Brown", Color: "#5C4033"},
	{Name: "Rose Gold", Color: "#B76E79"},
	{Name: "Plum", Color: "#8E4585"},
	{Name: "Forest", Color: "#228B22"},
	{Name: "Navy", Color: "#000080"},
	{Name: "Gold Shim", Color: "#FFD700"},
	{Name: "Pink Shim", Color: "#FFC0CB"},
}

// EyelinerPalette lists the built-in eyeliner shades.
var EyelinerPalette = []Shade{
	{Name: "Black", Color: "#000000"},
	{Name: "Brown", Color: "#4A3728"},
	{Name: "Navy", Color: "#000040"},
	{Name: "Purple", Color: "#4B0082"},
}

// BlushPalette lists the built-in blush shades.
var BlushPalette = []Shade{
	{Name: "Soft Pink", Color: "#FFB7C5"},
	{Name: "Peach", Color: "#FFCBA4"},
	{Name: "Coral", Color: "#FF7F50"},
	{Name: "Rose", Color: "#FF007F"},
	{Name: "Berry", Color: "#8B0000"},
	{Name: "Bronze", Color: "#CD7F32"},
}

// HighlighterPalette lists the built-in highlighter shades.
var HighlighterPalette = []Shade{
	{Name: "Champagne", Color: "#F7E7CE"},
	{Name: "Pearl", Color: "#EAE0C8"},
	{Name: "Icy", Color: "#F0F8FF"},
	{Name: "Rose Gold", Color: "#B76E79"},
}

// FindShade returns the shade called name, ignoring case.
func FindShade(palette []Shade, name string) (Shade, bool) {
	for _, s := range palette {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Shade{}, false
}

// Look is a named, complete makeup configuration.
type Look struct {
	Name        string
	Description string
	State       MakeupState
}

// Looks lists the built-in looks.
var Looks = []Look{
	{
		Name:        "Natural Day",
		Description: "Soft & subtle for everyday wear",
		State: MakeupState{
			Lips: LipState{Color: "#CDAFAF", Opacity: 0.6, Finish: FinishSatin},
			Eyes: EyeState{ShadowColor: "#F1DDCF", ShadowOpacity: 0.4, LinerColor: "#4A3728", LinerOpacity: 0.7, LinerStyle: LinerNatural},
			Face: FaceState{BlushColor: "#FFCBA4", BlushOpacity: 0.4, HighlighterColor: "#F7E7CE", HighlighterOpacity: 0.3},
			Skin: SkinState{Impression: ImpressionKiss, Smoothing: 0.3},
		},
	},
	{
		Name:        "Office Chic",
		Description: "Polished mauve tones",
		State: MakeupState{
			Lips: LipState{Color: "#AF8291", Opacity: 0.8, Finish: FinishMatte},
			Eyes: EyeState{ShadowColor: "#836953", ShadowOpacity: 0.5, LinerColor: "#000000", LinerOpacity: 0.9, LinerStyle: LinerClassic},
			Face: FaceState{BlushColor: "#FFB7C5", BlushOpacity: 0.5, HighlighterColor: "#F7E7CE", HighlighterOpacity: 0.2},
			Skin: SkinState{Impression: ImpressionGlamour, Smoothing: 0.5},
		},
	},
	{
		Name:        "Date Night",
		Description: "Romantic warm reds",
		State: MakeupState{
			Lips: LipState{Color: "#C84646", Opacity: 0.85, Finish: FinishSatin},
			Eyes: EyeState{ShadowColor: "#CD7F32", ShadowOpacity: 0.7, LinerColor: "#000000", LinerOpacity: 1, LinerStyle: LinerWinged},
			Face: FaceState{BlushColor: "#FF7F50", BlushOpacity: 0.6, HighlighterColor: "#B76E79", HighlighterOpacity: 0.6},
			Skin: SkinState{Impression: ImpressionHollywood, Smoothing: 0.6},
		},
	},
	{
		Name:        "Evening Glam",
		Description: "Bold berry and drama",
		State: MakeupState{
			Lips: LipState{Color: "#78323C", Opacity: 0.9, Finish: FinishGloss},
			Eyes: EyeState{ShadowColor: "#FFD700", ShadowOpacity: 0.7, LinerColor: "#000000", LinerOpacity: 1, LinerStyle: LinerSmoky},
			Face: FaceState{BlushColor: "#8B0000", BlushOpacity: 0.7, HighlighterColor: "#F0F8FF", HighlighterOpacity: 0.8},
			Skin: SkinState{Impression: ImpressionGlamour, Smoothing: 0.7},
		},
	},
	{
		Name:        "Fresh & Dewy",
		Description: "Glowy peach look",
		State: MakeupState{
			Lips: LipState{Color: "#EBAF96", Opacity: 0.6, Finish: FinishGloss},
			Eyes: EyeState{ShadowColor: "#FFC0CB", ShadowOpacity: 0.4, LinerColor: "#4A3728", LinerOpacity: 0, LinerStyle: LinerNatural},
			Face: FaceState{BlushColor: "#FF7F50", BlushOpacity: 0.5, HighlighterColor: "#EAE0C8", HighlighterOpacity: 0.8},
			Skin: SkinState{Impression: ImpressionCute, Smoothing: 0.4},
		},
	},
}

// FindLook returns the built-in look called name, ignoring case.
func FindLook(name string) (Look, bool) {
	for _, l := range Looks {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return Look{}, false
}
