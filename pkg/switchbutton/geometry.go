package switchbutton

import (
	"math"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/rendering"
)

// trackInset is the vertical inset of circle and line tracks, and the
// overshoot of the round knob past the track ends.
const trackInset = 10

// Geometry is the laid-out shape of a switch at one size.
type Geometry struct {
	// Size is the widget size the geometry was computed for.
	Size rendering.Size
	// Track is the track rectangle.
	Track rendering.Rect
	// Center is the track centre.
	Center rendering.Offset

	ViewRadius   float64
	KnobRadius   float64
	KnobMinX     float64
	KnobMaxX     float64
	CornerRadius float64
	LineHeight   float64
}

// ComputeGeometry lays out a switch of the given pixel size. It never fails:
// sizes too small for the shape produce a [Geometry.Degenerate] layout.
func ComputeGeometry(width, height float64, style Style) Geometry {
	pad := math.Max(style.ShadowRadius+style.ShadowOffset, style.BorderWidth)
	innerH := height - 2*pad

	g := Geometry{
		Size:         rendering.Size{Width: width, Height: height},
		CornerRadius: style.CornerRadius,
		LineHeight:   style.LineHeight,
	}

	switch style.Shape {
	case ShapeSquare:
		g.ViewRadius = innerH * 0.35
		g.Track = rendering.Rect{
			Left:   width/2 - style.LineHeight,
			Top:    pad,
			Right:  width/2 + style.LineHeight,
			Bottom: height - pad,
		}
		g.KnobMinX = g.Track.Left + style.LineHeight/2 + style.KnobOffset
		g.KnobMaxX = g.Track.Right - style.LineHeight/2 - style.KnobOffset
	case ShapeLine:
		g.ViewRadius = innerH * 0.35
		g.Track = insetTrack(width, height, pad)
		g.KnobMinX = g.Track.Left + g.ViewRadius - trackInset + style.KnobOffset
		g.KnobMaxX = g.Track.Right - g.ViewRadius + trackInset - style.KnobOffset
	default:
		g.ViewRadius = innerH * 0.6
		g.Track = insetTrack(width, height, pad)
		g.KnobMinX = g.Track.Left + g.ViewRadius - trackInset
		g.KnobMaxX = g.Track.Right - g.ViewRadius + trackInset
	}

	g.ViewRadius = math.Max(g.ViewRadius, 0)
	g.KnobRadius = math.Max(g.ViewRadius-style.BorderWidth, 0)
	g.Center = g.Track.Center()
	return g
}

func insetTrack(width, height, pad float64) rendering.Rect {
	return rendering.Rect{
		Left:   pad,
		Top:    pad + trackInset,
		Right:  width - pad,
		Bottom: height - pad - trackInset,
	}
}

// Degenerate reports whether the knob has no room to travel.
func (g Geometry) Degenerate() bool {
	return g.Size.Width <= 0 || g.Size.Height <= 0 || !(g.KnobMaxX > g.KnobMinX)
}

// Fraction maps a knob position to [0, 1] across the knob range. A
// degenerate range always yields 0.
func (g Geometry) Fraction(knobX float64) float64 {
	if g.Degenerate() {
		return 0
	}
	return clamp01((knobX - g.KnobMinX) / (g.KnobMaxX - g.KnobMinX))
}

// KnobXAt maps a fraction to a knob position. The fraction is clamped to
// [0, 1]; a degenerate range always yields KnobMinX.
func (g Geometry) KnobXAt(fraction float64) float64 {
	if g.Degenerate() {
		return g.KnobMinX
	}
	return animation.LerpFloat64(g.KnobMinX, g.KnobMaxX, clamp01(fraction))
}

// restState is the resting view state for a checked value.
func (g Geometry) restState(style Style, checked bool) ViewState {
	if checked {
		return ViewState{
			KnobX:          g.KnobXAt(1),
			FillColor:      style.CheckedColor,
			IndicatorColor: style.IndicatorColor,
			FillRadius:     g.ViewRadius,
		}
	}
	return ViewState{
		KnobX:          g.KnobXAt(0),
		FillColor:      style.UncheckedColor,
		IndicatorColor: rendering.ColorTransparent,
		FillRadius:     0,
	}
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
