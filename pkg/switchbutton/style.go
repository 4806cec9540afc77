package switchbutton

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/errors"
	"github.com/go-drift/switchbutton/pkg/rendering"
)

// ShapeKind selects the track and knob geometry of a switch.
type ShapeKind int

const (
	// ShapeCircle draws a thin track with a large round knob and a filling
	// overlay that grows with the checked fraction.
	ShapeCircle ShapeKind = iota
	// ShapeSquare draws a short bar with a rounded-square knob.
	ShapeSquare
	// ShapeLine draws a hairline track with a round knob.
	ShapeLine
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeLine:
		return "line"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShape maps a shape name to its ShapeKind. The empty string is circle.
func ParseShape(name string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	case "line":
		return ShapeLine, nil
	default:
		return 0, errors.InvalidStyle("unknown shape %q", name)
	}
}

// Shape dimensions in dp.
const (
	squareLineHeightDP   = 16
	squareCornerRadiusDP = 0.6
	lineLineHeightDP     = 2
	lineKnobOffsetDP     = 8
)

// Default widget size in dp.
const (
	DefaultWidthDP  = 58
	DefaultHeightDP = 36
)

// Style configures a switch. All dimensions are in pixels; use
// [DefaultStyle] or the theme package to derive them from dp.
type Style struct {
	Shape ShapeKind

	BackgroundColor    rendering.Color
	UncheckedColor     rendering.Color // track colour when unchecked
	CheckedColor       rendering.Color // track colour when checked
	UncheckedKnobColor rendering.Color
	CheckedKnobColor   rendering.Color
	KnobColor          rendering.Color // knob colour before the first layout
	IndicatorColor     rendering.Color // checked indicator line
	UncheckCircleColor rendering.Color
	ShadowColor        rendering.Color

	BorderWidth  float64
	ShadowRadius float64
	ShadowOffset float64

	IndicatorWidth   float64
	IndicatorLength  float64
	IndicatorOffsetX float64
	IndicatorOffsetY float64

	UncheckCircleWidth  float64
	UncheckCircleRadius float64
	UncheckCircleOffset float64

	// LineHeight is the bar height for square and line shapes; for square it
	// is also the knob side.
	LineHeight float64
	// KnobOffset pulls both knob bounds inwards.
	KnobOffset float64
	// CornerRadius rounds the square bar and knob.
	CornerRadius float64

	ShadowEnabled    bool
	EffectEnabled    bool
	IndicatorVisible bool

	// Checked is the initial checked value.
	Checked bool
	// Duration is the length of every animated transition.
	Duration time.Duration
	// Curve names the easing curve ("" or "linear" for none).
	Curve string
}

// DefaultStyle returns the default circle style at the given density
// (pixels per dp). A non-positive density is treated as 1.
func DefaultStyle(density float64) Style {
	if density <= 0 {
		density = 1
	}
	dp := func(v float64) float64 { return v * density }
	return Style{
		Shape:               ShapeCircle,
		BackgroundColor:     rendering.ColorTransparent,
		UncheckedColor:      rendering.Color(0xFFDDDDDD),
		CheckedColor:        rendering.Color(0xFF51D367),
		UncheckedKnobColor:  rendering.Color(0xFF51D367),
		CheckedKnobColor:    rendering.Color(0xFF51D367),
		KnobColor:           rendering.ColorWhite,
		IndicatorColor:      rendering.ColorWhite,
		UncheckCircleColor:  rendering.Color(0xFFAAAAAA),
		ShadowColor:         rendering.Color(0x33000000),
		BorderWidth:         dp(1),
		ShadowRadius:        dp(2.5),
		ShadowOffset:        dp(1.5),
		IndicatorWidth:      dp(1),
		IndicatorLength:     dp(6),
		IndicatorOffsetX:    dp(4),
		IndicatorOffsetY:    dp(4),
		UncheckCircleWidth:  dp(1.5),
		UncheckCircleRadius: dp(4),
		UncheckCircleOffset: dp(10),
		ShadowEnabled:       true,
		EffectEnabled:       true,
		IndicatorVisible:    true,
		Duration:            300 * time.Millisecond,
	}
}

// WithShape returns a copy of s using shape, with the shape's bar height,
// knob offset and corner radius derived from density.
func (s Style) WithShape(shape ShapeKind, density float64) Style {
	if density <= 0 {
		density = 1
	}
	s.Shape = shape
	s.LineHeight, s.KnobOffset, s.CornerRadius = 0, 0, 0
	switch shape {
	case ShapeSquare:
		s.LineHeight = math.Floor(squareLineHeightDP*density + 0.5)
		s.CornerRadius = squareCornerRadiusDP*density + 0.5
	case ShapeLine:
		s.LineHeight = math.Floor(lineLineHeightDP*density + 0.5)
		s.KnobOffset = math.Floor(lineKnobOffsetDP*density + 0.5)
	}
	return s
}

// Validate reports a wrapped errors.ErrInvalidStyle for styles that cannot
// be laid out.
func (s Style) Validate() error {
	switch s.Shape {
	case ShapeCircle, ShapeSquare, ShapeLine:
	default:
		return errors.InvalidStyle("unknown shape %v", s.Shape)
	}
	if s.Duration < 0 {
		return errors.InvalidStyle("negative duration %v", s.Duration)
	}
	dims := []struct {
		name  string
		value float64
	}{
		{"border width", s.BorderWidth},
		{"shadow radius", s.ShadowRadius},
		{"shadow offset", s.ShadowOffset},
		{"indicator width", s.IndicatorWidth},
		{"indicator length", s.IndicatorLength},
		{"uncheck circle width", s.UncheckCircleWidth},
		{"uncheck circle radius", s.UncheckCircleRadius},
		{"line height", s.LineHeight},
		{"knob offset", s.KnobOffset},
		{"corner radius", s.CornerRadius},
	}
	for _, d := range dims {
		if d.value < 0 || math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			return errors.InvalidStyle("%s must be a non-negative number, got %v", d.name, d.value)
		}
	}
	if s.Shape != ShapeCircle && s.LineHeight == 0 {
		return errors.InvalidStyle("line height must be positive for %v", s.Shape)
	}
	if _, err := animation.CurveByName(s.Curve); err != nil {
		return errors.InvalidStyle("%v", err)
	}
	return nil
}

func (s Style) knobColor(checked bool) rendering.Color {
	if checked {
		return s.CheckedKnobColor
	}
	return s.UncheckedKnobColor
}

func (s Style) shadow() rendering.BoxShadow {
	return rendering.DropShadow(s.ShadowColor, s.ShadowRadius, s.ShadowOffset)
}
