package switchbutton

import (
	"github.com/go-drift/switchbutton/pkg/gestures"
)

// HandlePointer interprets one pointer event.
//
// A press held for [PendingDragDelay] lifts the knob into the drag pose; a
// release within [TapTimeout] of the press toggles; a later release from a
// drag commits when the pointer is past [SettleThreshold] of the widget
// width and resets otherwise. Events are ignored while the switch is
// disabled or before its first SetSize.
func (b *SwitchButton) HandlePointer(ev gestures.PointerEvent) {
	if !b.enabled || !b.initialized {
		return
	}
	at := ev.Timestamp
	if at.IsZero() {
		at = b.scheduler.Now()
	}

	switch ev.Phase {
	case gestures.PointerPhaseDown:
		b.touching = true
		b.downAt = at
		b.dragTimer.Cancel()
		b.dragTimer = b.scheduler.After(PendingDragDelay, b.enterPendingDrag)

	case gestures.PointerPhaseMove:
		switch b.phase {
		case PhasePendingDrag:
			b.current.KnobX = b.geometry.KnobXAt(b.dragFraction(ev.Position.X))
			b.invalidate()
		case PhaseDragging:
			f := b.dragFraction(ev.Position.X)
			b.current.KnobX = b.geometry.KnobXAt(f)
			b.current.FillColor = lerpTrack(b.style, f)
			b.invalidate()
		}

	case gestures.PointerPhaseUp:
		b.touching = false
		b.dragTimer.Cancel()
		switch {
		case at.Sub(b.downAt) <= TapTimeout:
			b.Toggle()
		case b.phase == PhaseDragging:
			checked := b.dragFraction(ev.Position.X) > SettleThreshold
			if checked == b.checked {
				b.reset()
			} else {
				b.settle(checked)
			}
		case b.phase == PhasePendingDrag:
			b.reset()
		}

	case gestures.PointerPhaseCancel:
		b.touching = false
		b.dragTimer.Cancel()
		b.reset()
	}
}

// dragFraction maps a pointer x to [0, 1] across the widget width.
func (b *SwitchButton) dragFraction(x float64) float64 {
	w := b.geometry.Size.Width
	if w <= 0 {
		return 0
	}
	return clamp01(x / w)
}
