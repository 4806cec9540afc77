// Package theme loads switch styling from plain configuration.
//
// Dimensions are written in dp and colours as "#AARRGGBB", "#RRGGBB" or
// "0xAARRGGBB" strings, so a theme file reads the same on every density:
//
//	shape: line
//	colors:
//	  checked: "#FF2196F3"
//	effect:
//	  durationMs: 200
//
// [SwitchButtonThemeData.Resolve] converts a theme to a pixel
// switchbutton.Style for one display density.
package theme

import (
	"fmt"
	"time"

	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
)

// SwitchButtonThemeData defines the styling of a switch. Zero-valued
// sections are not special: start from DefaultSwitchButtonTheme and
// override what you need.
type SwitchButtonThemeData struct {
	// Shape is "circle", "square" or "line".
	Shape string `yaml:"shape"`
	// Density is pixels per dp used when no density is supplied.
	Density float64 `yaml:"density"`
	// Width and Height are the widget size in dp.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Checked is the initial value.
	Checked bool `yaml:"checked"`
	// BorderWidth is in dp.
	BorderWidth float64 `yaml:"borderWidth"`

	Colors        SwitchButtonColors `yaml:"colors"`
	Shadow        ShadowThemeData    `yaml:"shadow"`
	Indicator     IndicatorThemeData `yaml:"indicator"`
	UncheckCircle UncheckCircleTheme `yaml:"uncheckCircle"`
	Effect        EffectThemeData    `yaml:"effect"`
}

// SwitchButtonColors holds the colour strings of a switch.
type SwitchButtonColors struct {
	Background   string `yaml:"background"`
	Unchecked    string `yaml:"unchecked"`
	Checked      string `yaml:"checked"`
	UncheckedBtn string `yaml:"uncheckedButton"`
	CheckedBtn   string `yaml:"checkedButton"`
	Button       string `yaml:"button"`
}

// ShadowThemeData configures the knob shadow. Radius and Offset are in dp.
type ShadowThemeData struct {
	Enabled bool    `yaml:"enabled"`
	Radius  float64 `yaml:"radius"`
	Offset  float64 `yaml:"offset"`
	Color   string  `yaml:"color"`
}

// IndicatorThemeData configures the checked indicator line. Sizes are in dp.
type IndicatorThemeData struct {
	Visible bool    `yaml:"visible"`
	Color   string  `yaml:"color"`
	Width   float64 `yaml:"width"`
	Length  float64 `yaml:"length"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

// UncheckCircleTheme configures the unchecked indicator circle. Sizes are
// in dp.
type UncheckCircleTheme struct {
	Color  string  `yaml:"color"`
	Width  float64 `yaml:"width"`
	Radius float64 `yaml:"radius"`
	Offset float64 `yaml:"offset"`
}

// EffectThemeData configures transition animations.
type EffectThemeData struct {
	Enabled    bool   `yaml:"enabled"`
	DurationMS int    `yaml:"durationMs"`
	Curve      string `yaml:"curve"`
}

// DefaultSwitchButtonTheme returns the stock switch theme.
func DefaultSwitchButtonTheme() SwitchButtonThemeData {
	return SwitchButtonThemeData{
		Shape:       "circle",
		Density:     1,
		Width:       switchbutton.DefaultWidthDP,
		Height:      switchbutton.DefaultHeightDP,
		BorderWidth: 1,
		Colors: SwitchButtonColors{
			Background:   "#00000000",
			Unchecked:    "#FFDDDDDD",
			Checked:      "#FF51D367",
			UncheckedBtn: "#FF51D367",
			CheckedBtn:   "#FF51D367",
			Button:       "#FFFFFFFF",
		},
		Shadow: ShadowThemeData{
			Enabled: true,
			Radius:  2.5,
			Offset:  1.5,
			Color:   "#33000000",
		},
		Indicator: IndicatorThemeData{
			Visible: true,
			Color:   "#FFFFFFFF",
			Width:   1,
			Length:  6,
			OffsetX: 4,
			OffsetY: 4,
		},
		UncheckCircle: UncheckCircleTheme{
			Color:  "#FFAAAAAA",
			Width:  1.5,
			Radius: 4,
			Offset: 10,
		},
		Effect: EffectThemeData{
			Enabled:    true,
			DurationMS: 300,
			Curve:      "linear",
		},
	}
}

// Resolve converts the theme to a pixel Style at density. A non-positive
// density uses the theme's own Density.
func (t SwitchButtonThemeData) Resolve(density float64) (switchbutton.Style, error) {
	if density <= 0 {
		density = t.Density
	}
	if density <= 0 {
		density = 1
	}
	dp := func(v float64) float64 { return v * density }

	shape, err := switchbutton.ParseShape(t.Shape)
	if err != nil {
		return switchbutton.Style{}, err
	}

	s := switchbutton.DefaultStyle(density).WithShape(shape, density)
	colors := []struct {
		name string
		src  string
		dst  *rendering.Color
	}{
		{"colors.background", t.Colors.Background, &s.BackgroundColor},
		{"colors.unchecked", t.Colors.Unchecked, &s.UncheckedColor},
		{"colors.checked", t.Colors.Checked, &s.CheckedColor},
		{"colors.uncheckedButton", t.Colors.UncheckedBtn, &s.UncheckedKnobColor},
		{"colors.checkedButton", t.Colors.CheckedBtn, &s.CheckedKnobColor},
		{"colors.button", t.Colors.Button, &s.KnobColor},
		{"shadow.color", t.Shadow.Color, &s.ShadowColor},
		{"indicator.color", t.Indicator.Color, &s.IndicatorColor},
		{"uncheckCircle.color", t.UncheckCircle.Color, &s.UncheckCircleColor},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		v, err := rendering.ParseColor(c.src)
		if err != nil {
			return switchbutton.Style{}, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = v
	}

	s.BorderWidth = dp(t.BorderWidth)
	s.ShadowEnabled = t.Shadow.Enabled
	s.ShadowRadius = dp(t.Shadow.Radius)
	s.ShadowOffset = dp(t.Shadow.Offset)
	s.IndicatorVisible = t.Indicator.Visible
	s.IndicatorWidth = dp(t.Indicator.Width)
	s.IndicatorLength = dp(t.Indicator.Length)
	s.IndicatorOffsetX = dp(t.Indicator.OffsetX)
	s.IndicatorOffsetY = dp(t.Indicator.OffsetY)
	s.UncheckCircleWidth = dp(t.UncheckCircle.Width)
	s.UncheckCircleRadius = dp(t.UncheckCircle.Radius)
	s.UncheckCircleOffset = dp(t.UncheckCircle.Offset)
	s.EffectEnabled = t.Effect.Enabled
	s.Duration = time.Duration(t.Effect.DurationMS) * time.Millisecond
	s.Curve = t.Effect.Curve
	s.Checked = t.Checked

	if err := s.Validate(); err != nil {
		return switchbutton.Style{}, err
	}
	return s, nil
}

// Size returns the widget size in pixels at density. A non-positive
// density uses the theme's own Density.
func (t SwitchButtonThemeData) Size(density float64) rendering.Size {
	if density <= 0 {
		density = t.Density
	}
	if density <= 0 {
		density = 1
	}
	return rendering.Size{Width: t.Width * density, Height: t.Height * density}
}
