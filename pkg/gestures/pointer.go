// Package gestures defines the normalized pointer stream consumed by widgets.
//
// Hosts translate whatever their platform delivers (touch, mouse, terminal
// mouse reports) into [PointerEvent] values in widget-local coordinates.
package gestures

import (
	"fmt"
	"time"

	"github.com/go-drift/switchbutton/pkg/rendering"
)

// PointerPhase is the lifecycle stage of a pointer interaction.
type PointerPhase int

const (
	// PointerPhaseDown starts an interaction.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove reports movement while the pointer is down.
	PointerPhaseMove
	// PointerPhaseUp ends an interaction normally.
	PointerPhaseUp
	// PointerPhaseCancel ends an interaction abnormally (the host took the
	// pointer away, e.g. a parent started scrolling).
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is one sample of a pointer interaction.
type PointerEvent struct {
	// PointerID identifies the pointer; only single-pointer interactions are
	// interpreted.
	PointerID int64
	// Position is in widget-local pixels.
	Position rendering.Offset
	// Phase is the lifecycle stage.
	Phase PointerPhase
	// Timestamp is when the sample was taken. A zero timestamp means "now"
	// on the receiver's clock.
	Timestamp time.Time
}

// Down builds a down event at (x, y).
func Down(x, y float64, at time.Time) PointerEvent {
	return PointerEvent{Position: rendering.Offset{X: x, Y: y}, Phase: PointerPhaseDown, Timestamp: at}
}

// Move builds a move event at (x, y).
func Move(x, y float64, at time.Time) PointerEvent {
	return PointerEvent{Position: rendering.Offset{X: x, Y: y}, Phase: PointerPhaseMove, Timestamp: at}
}

// Up builds an up event at (x, y).
func Up(x, y float64, at time.Time) PointerEvent {
	return PointerEvent{Position: rendering.Offset{X: x, Y: y}, Phase: PointerPhaseUp, Timestamp: at}
}

// Cancel builds a cancel event.
func Cancel(at time.Time) PointerEvent {
	return PointerEvent{Phase: PointerPhaseCancel, Timestamp: at}
}
