package testing

import (
	"time"

	"github.com/go-drift/switchbutton/pkg/gestures"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
)

// testPointerID is the pointer used by every simulated gesture.
const testPointerID = 1

// Down presses at (x, centre) at offset at.
func (t *SwitchTester) Down(x float64, at time.Duration) {
	t.send(gestures.Down(x, t.size.Height/2, t.clock.At(at)), at)
}

// Move moves the pointer to (x, centre) at offset at.
func (t *SwitchTester) Move(x float64, at time.Duration) {
	t.send(gestures.Move(x, t.size.Height/2, t.clock.At(at)), at)
}

// Up releases at (x, centre) at offset at.
func (t *SwitchTester) Up(x float64, at time.Duration) {
	t.send(gestures.Up(x, t.size.Height/2, t.clock.At(at)), at)
}

// Cancel cancels the interaction at offset at.
func (t *SwitchTester) Cancel(at time.Duration) {
	t.send(gestures.Cancel(t.clock.At(at)), at)
}

// Tap presses and releases at x, holding for hold, starting now.
func (t *SwitchTester) Tap(x float64, hold time.Duration) {
	start := t.clock.Elapsed()
	t.Down(x, start)
	t.Up(x, start+hold)
}

// Drag presses at from, waits out the pending-drag delay, moves to to and
// releases at to after hold in total.
func (t *SwitchTester) Drag(from, to float64, hold time.Duration) {
	start := t.clock.Elapsed()
	t.Down(from, start)
	t.PumpTo(start + switchbutton.PendingDragDelay)
	t.Move(to, start+switchbutton.PendingDragDelay)
	t.Up(to, start+hold)
}

// Slide is Drag with steps evenly spaced moves between the pending-drag
// delay and the release, so every intermediate frame sees a new position.
func (t *SwitchTester) Slide(from, to float64, steps int, hold time.Duration) {
	if steps < 1 {
		steps = 1
	}
	start := t.clock.Elapsed()
	t.Down(from, start)
	moveStart := start + switchbutton.PendingDragDelay
	span := max(hold-switchbutton.PendingDragDelay, 0)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		at := moveStart + time.Duration(float64(span)*frac)
		t.Move(from+(to-from)*frac, at)
	}
	t.Up(to, max(start+hold, t.clock.Elapsed()))
}

// SendPointer pumps to offset at and delivers ev unchanged apart from the
// pointer ID.
func (t *SwitchTester) SendPointer(ev gestures.PointerEvent, at time.Duration) {
	t.send(ev, at)
}

func (t *SwitchTester) send(ev gestures.PointerEvent, at time.Duration) {
	t.PumpTo(at)
	ev.PointerID = testPointerID
	t.button.HandlePointer(ev)
}
