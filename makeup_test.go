package mirror

import (
	"errors"
	"math"
	"testing"
)

func TestMakeupStateValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*MakeupState)
		ok   bool
	}{
		{"no makeup", func(*MakeupState) {}, true},
		{"zero value", func(m *MakeupState) { *m = MakeupState{} }, true},
		{"bad finish", func(m *MakeupState) { m.Lips.Finish = "velvet" }, false},
		{"bad liner", func(m *MakeupState) { m.Eyes.LinerStyle = "cat-eye" }, false},
		{"bad impression", func(m *MakeupState) { m.Skin.Impression = "noir" }, false},
		{"glamour", func(m *MakeupState) { m.Skin.Impression = ImpressionGlamour }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NoMakeup
			tt.edit(&m)
			err := m.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestPresetFallback(t *testing.T) {
	if got := Preset("noir").Name; got != "Natural" {
		t.Errorf("Preset(unknown).Name = %q, want Natural", got)
	}
	if got := Preset(ImpressionHollywood).Highlighter; got == nil || got.Color != "#F7E7CE" {
		t.Errorf("Preset(hollywood).Highlighter = %+v", got)
	}
}

func TestPresetReturnsCopy(t *testing.T) {
	p := Preset(ImpressionKiss)
	p.Blush.Color = "#000000"
	p.Blush.Intensity = 1
	p.Highlighter.Intensity = 1

	q := Preset(ImpressionKiss)
	if q.Blush.Color == "#000000" || q.Blush.Intensity == 1 {
		t.Errorf("Preset(kiss).Blush = %+v after editing an earlier copy", *q.Blush)
	}
	if q.Highlighter.Intensity == 1 {
		t.Errorf("Preset(kiss).Highlighter = %+v after editing an earlier copy", *q.Highlighter)
	}
	if p.Blush == q.Blush || p.Highlighter == q.Highlighter {
		t.Error("Preset(kiss) returned shared layer pointers")
	}
}

func TestEffectiveSmoothing(t *testing.T) {
	tests := []struct {
		mode Impression
		in   float64
		want float64
	}{
		{ImpressionOff, 0.5, 0.5},
		{ImpressionKiss, 0.5, 0.7},
		{ImpressionGlamour, 0.5, 0.8},
		{ImpressionGlamour, 0.9, 1},
		{ImpressionCute, 0, 0},
		{ImpressionCute, -1, 0},
		{ImpressionHollywood, 2, 1},
	}
	for _, tt := range tests {
		got := Preset(tt.mode).EffectiveSmoothing(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Preset(%s).EffectiveSmoothing(%v) = %v, want %v", tt.mode, tt.in, got, tt.want)
		}
	}
}

func TestLooksAreValid(t *testing.T) {
	for _, l := range Looks {
		t.Run(l.Name, func(t *testing.T) {
			if err := l.State.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			for _, hex := range []string{
				l.State.Lips.Color, l.State.Eyes.ShadowColor, l.State.Eyes.LinerColor,
				l.State.Face.BlushColor, l.State.Face.HighlighterColor,
			} {
				if _, ok := ParseHex(hex); !ok {
					t.Errorf("bad colour %q", hex)
				}
			}
			got, ok := FindLook(l.Name)
			if !ok || got.Name != l.Name {
				t.Errorf("FindLook(%q) = %v, %v", l.Name, got.Name, ok)
			}
		})
	}
	if _, ok := FindLook("date night"); !ok {
		t.Error("FindLook is not case-insensitive")
	}
}

func TestPalettesParse(t *testing.T) {
	palettes := map[string][]Shade{
		"lipstick":    LipstickPalette,
		"eyeshadow":   EyeshadowPalette,
		"eyeliner":    EyelinerPalette,
		"blush":       BlushPalette,
		"highlighter": HighlighterPalette,
	}
	for name, p := range palettes {
		if len(p) == 0 {
			t.Errorf("%s palette is empty", name)
		}
		for _, s := range p {
			if _, ok := ParseHex(s.Color); !ok {
				t.Errorf("%s/%s: bad colour %q", name, s.Name, s.Color)
			}
		}
	}
}
