package switchbutton

import (
	"github.com/go-drift/switchbutton/pkg/rendering"
)

// Paint draws the switch in widget-local coordinates. Nothing is drawn
// before the first SetSize. Every draw call gets its own Paint value.
func (b *SwitchButton) Paint(canvas rendering.Canvas) {
	if !b.initialized {
		return
	}
	g, s, v := b.geometry, b.style, b.current
	track := g.Track
	cy := g.Center.Y

	canvas.DrawRRect(rrect(track, g.ViewRadius), rendering.FillPaint(s.BackgroundColor))

	switch s.Shape {
	case ShapeCircle:
		canvas.DrawRRect(rrect(track, g.ViewRadius), rendering.FillPaint(s.UncheckedColor))
		if s.IndicatorVisible {
			b.paintUncheckIndicator(canvas)
		}
		// The checked colour floods inwards from the border as FillRadius grows.
		des := v.FillRadius * 0.5
		fill := rendering.StrokePaint(v.FillColor, s.BorderWidth+des*2)
		canvas.DrawRRect(rrect(track.Inset(des), g.ViewRadius), fill)
	case ShapeSquare, ShapeLine:
		if s.IndicatorVisible {
			b.paintUncheckIndicator(canvas)
		}
		bar := rendering.Rect{
			Left:   track.Left,
			Top:    cy - g.LineHeight/2,
			Right:  track.Right,
			Bottom: cy + g.LineHeight/2,
		}
		radius := g.ViewRadius
		if s.Shape == ShapeSquare {
			radius = g.CornerRadius
		}
		canvas.DrawRRect(rrect(bar, radius), rendering.FillPaint(v.FillColor))
	}

	if s.IndicatorVisible {
		x := track.Left + g.ViewRadius
		line := rendering.StrokePaint(v.IndicatorColor, s.IndicatorWidth)
		canvas.DrawLine(
			rendering.Offset{X: x - s.IndicatorOffsetX, Y: cy - s.IndicatorLength},
			rendering.Offset{X: x - s.IndicatorOffsetY, Y: cy + s.IndicatorLength},
			line,
		)
	}

	b.paintKnob(canvas, rendering.Offset{X: v.KnobX, Y: cy})
}

func (b *SwitchButton) paintUncheckIndicator(canvas rendering.Canvas) {
	s := b.style
	center := rendering.Offset{X: b.geometry.Track.Right - s.UncheckCircleOffset, Y: b.geometry.Center.Y}
	canvas.DrawCircle(center, s.UncheckCircleRadius, rendering.StrokePaint(s.UncheckCircleColor, s.UncheckCircleWidth))
}

func (b *SwitchButton) paintKnob(canvas rendering.Canvas, center rendering.Offset) {
	g, s := b.geometry, b.style
	paint := rendering.FillPaint(b.knob)

	if s.Shape == ShapeSquare {
		half := g.LineHeight / 2
		knob := rrect(rendering.Rect{
			Left:   center.X - half,
			Top:    center.Y - half,
			Right:  center.X + half,
			Bottom: center.Y + half,
		}, g.CornerRadius)
		if s.ShadowEnabled {
			canvas.DrawRRectShadow(knob, s.shadow())
		}
		canvas.DrawRRect(knob, paint)
		return
	}

	if s.ShadowEnabled {
		canvas.DrawCircleShadow(center, g.KnobRadius, s.shadow())
	}
	canvas.DrawCircle(center, g.KnobRadius, paint)
}

func rrect(r rendering.Rect, radius float64) rendering.RRect {
	return rendering.RRectFromRect(r, radius)
}
