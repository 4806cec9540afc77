package switchbutton

import (
	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/rendering"
)

// ViewState is the animatable visual state of a switch.
type ViewState struct {
	// KnobX is the knob centre on the x axis, within the knob range.
	KnobX float64
	// FillColor is the track colour.
	FillColor rendering.Color
	// IndicatorColor is the checked indicator line colour; transparent when
	// unchecked.
	IndicatorColor rendering.Color
	// FillRadius is the extent of the checked overlay, in [0, ViewRadius].
	FillRadius float64
}

// blend interpolates from before to after at t. When moveKnob is false the
// knob keeps its current position.
func blend(current, before, after ViewState, t float64, moveKnob bool) ViewState {
	current.IndicatorColor = animation.LerpColor(before.IndicatorColor, after.IndicatorColor, t)
	current.FillRadius = animation.LerpFloat64(before.FillRadius, after.FillRadius, t)
	if moveKnob {
		current.KnobX = animation.LerpFloat64(before.KnobX, after.KnobX, t)
	}
	current.FillColor = animation.LerpColor(before.FillColor, after.FillColor, t)
	return current
}

// lerpTrack is the track colour at drag fraction f.
func lerpTrack(style Style, f float64) rendering.Color {
	return animation.LerpColor(style.UncheckedColor, style.CheckedColor, f)
}
