package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/gogpu/mirror"
)

// lookConfig is the "look" section of the config file.
type lookConfig struct {
	Lips struct {
		Color   string  `mapstructure:"color"`
		Opacity float64 `mapstructure:"opacity"`
		Finish  string  `mapstructure:"finish"`
	} `mapstructure:"lips"`
	Eyes struct {
		ShadowColor   string  `mapstructure:"shadow_color"`
		ShadowOpacity float64 `mapstructure:"shadow_opacity"`
		LinerColor    string  `mapstructure:"liner_color"`
		LinerOpacity  float64 `mapstructure:"liner_opacity"`
		LinerStyle    string  `mapstructure:"liner_style"`
	} `mapstructure:"eyes"`
	Face struct {
		BlushColor         string  `mapstructure:"blush_color"`
		BlushOpacity       float64 `mapstructure:"blush_opacity"`
		HighlighterColor   string  `mapstructure:"highlighter_color"`
		HighlighterOpacity float64 `mapstructure:"highlighter_opacity"`
	} `mapstructure:"face"`
	Skin struct {
		Impression string  `mapstructure:"impression"`
		Smoothing  float64 `mapstructure:"smoothing"`
	} `mapstructure:"skin"`
}

func (c lookConfig) state() mirror.MakeupState {
	return mirror.MakeupState{
		Lips: mirror.LipState{
			Color:   c.Lips.Color,
			Opacity: c.Lips.Opacity,
			Finish:  mirror.Finish(c.Lips.Finish),
		},
		Eyes: mirror.EyeState{
			ShadowColor:   c.Eyes.ShadowColor,
			ShadowOpacity: c.Eyes.ShadowOpacity,
			LinerColor:    c.Eyes.LinerColor,
			LinerOpacity:  c.Eyes.LinerOpacity,
			LinerStyle:    mirror.LinerStyle(c.Eyes.LinerStyle),
		},
		Face: mirror.FaceState{
			BlushColor:         c.Face.BlushColor,
			BlushOpacity:       c.Face.BlushOpacity,
			HighlighterColor:   c.Face.HighlighterColor,
			HighlighterOpacity: c.Face.HighlighterOpacity,
		},
		Skin: mirror.SkinState{
			Impression: mirror.Impression(c.Skin.Impression),
			Smoothing:  c.Skin.Smoothing,
		},
	}
}

// resolveLook picks the makeup state: a built-in look named by the
// "preset" key wins over the "look" section of the config file.
func resolveLook(v *viper.Viper) (mirror.MakeupState, error) {
	if name := v.GetString("preset"); name != "" {
		l, ok := mirror.FindLook(name)
		if !ok {
			return mirror.MakeupState{}, fmt.Errorf("%w: unknown look %q", mirror.ErrInvalidConfig, name)
		}
		return l.State, nil
	}
	if !v.IsSet("look") {
		return mirror.Looks[0].State, nil
	}
	var c lookConfig
	if err := v.UnmarshalKey("look", &c); err != nil {
		return mirror.MakeupState{}, fmt.Errorf("%w: look: %w", mirror.ErrInvalidConfig, err)
	}
	st := c.state()
	if err := st.Validate(); err != nil {
		return mirror.MakeupState{}, err
	}
	return st, nil
}
