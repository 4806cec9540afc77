package rendering

import "fmt"

// PaintStyle selects whether a shape's interior, outline or both are drawn.
type PaintStyle int

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
	PaintStyleFillAndStroke
)

var paintStyleNames = [...]string{"fill", "stroke", "fill_and_stroke"}

func (s PaintStyle) String() string {
	if s >= 0 && int(s) < len(paintStyleNames) {
		return paintStyleNames[s]
	}
	return fmt.Sprintf("PaintStyle(%d)", int(s))
}

// StrokeCap is the end shape of a stroked line. The zero value is CapButt.
type StrokeCap int

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

var strokeCapNames = [...]string{"butt", "round", "square"}

func (c StrokeCap) String() string {
	if c >= 0 && int(c) < len(strokeCapNames) {
		return strokeCapNames[c]
	}
	return fmt.Sprintf("StrokeCap(%d)", int(c))
}

// Paint carries the color and stroke settings for one draw call.
// Alpha scales the color's own alpha; values outside [0, 1) leave it as is.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
	StrokeCap   StrokeCap
	Alpha       float64
}

// FillPaint paints shape interiors in c.
func FillPaint(c Color) Paint {
	return Paint{Color: c, StrokeWidth: 1, Alpha: 1}
}

// StrokePaint paints outlines in c, width pixels wide.
func StrokePaint(c Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width, Alpha: 1}
}

// EffectiveColor is the color actually composited.
func (p Paint) EffectiveColor() Color {
	if p.Alpha >= 0 && p.Alpha < 1 {
		a := float64(p.Color.A())*p.Alpha + 0.5
		return p.Color.WithAlpha(uint8(a))
	}
	return p.Color
}
