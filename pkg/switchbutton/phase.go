package switchbutton

import "fmt"

// Phase is the animation phase of a switch. Exactly one is active at a time.
type Phase int

const (
	// PhaseIdle is the resting phase.
	PhaseIdle Phase = iota
	// PhasePendingDrag animates into the drag pose after a long press.
	PhasePendingDrag
	// PhaseDragging follows the pointer with no animation running.
	PhaseDragging
	// PhasePendingReset animates back to the unchanged checked pose.
	PhasePendingReset
	// PhasePendingSettle animates to the newly committed checked pose.
	PhasePendingSettle
	// PhaseSwitching animates a tap or programmatic toggle.
	PhaseSwitching
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePendingDrag:
		return "pending-drag"
	case PhaseDragging:
		return "dragging"
	case PhasePendingReset:
		return "pending-reset"
	case PhasePendingSettle:
		return "pending-settle"
	case PhaseSwitching:
		return "switching"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}
