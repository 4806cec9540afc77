package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
)

// DefaultFrameInterval is the frame period used when pumping.
const DefaultFrameInterval = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: switch did not settle")

// SwitchTester hosts one SwitchButton on a fake clock. It plays the part of
// the host: it sizes the switch, delivers pointer events and steps frames.
type SwitchTester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	button    *switchbutton.SwitchButton
	size      rendering.Size
	frame     time.Duration

	changes       []bool
	invalidations int
}

// NewSwitchTester creates a switch with style, sized width x height.
func NewSwitchTester(style switchbutton.Style, width, height float64, opts ...switchbutton.Option) (*SwitchTester, error) {
	clk := NewFakeClock()
	t := &SwitchTester{
		clock:     clk,
		scheduler: animation.NewScheduler(clk),
		size:      rendering.Size{Width: width, Height: height},
		frame:     DefaultFrameInterval,
	}
	opts = append([]switchbutton.Option{switchbutton.WithScheduler(t.scheduler)}, opts...)
	b, err := switchbutton.New(style, opts...)
	if err != nil {
		return nil, err
	}
	b.SetOnCheckedChanged(func(checked bool) {
		t.changes = append(t.changes, checked)
	})
	b.SetInvalidator(func() { t.invalidations++ })
	b.SetSize(width, height)
	t.button = b
	return t, nil
}

// NewSwitchTesterWithT is NewSwitchTester that fails the test on error.
func NewSwitchTesterWithT(tb testing.TB, style switchbutton.Style, width, height float64, opts ...switchbutton.Option) *SwitchTester {
	tb.Helper()
	t, err := NewSwitchTester(style, width, height, opts...)
	if err != nil {
		tb.Fatalf("NewSwitchTester: %v", err)
	}
	return t
}

// Button returns the switch under test.
func (t *SwitchTester) Button() *switchbutton.SwitchButton {
	return t.button
}

// Clock returns the fake clock.
func (t *SwitchTester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler the switch runs on.
func (t *SwitchTester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Changes returns every value the checked-changed listener received.
func (t *SwitchTester) Changes() []bool {
	return append([]bool(nil), t.changes...)
}

// Invalidations returns how many redraws the switch requested.
func (t *SwitchTester) Invalidations() int {
	return t.invalidations
}

// SetFrameInterval changes the frame period used by the pump methods.
func (t *SwitchTester) SetFrameInterval(d time.Duration) {
	if d > 0 {
		t.frame = d
	}
}

// Pump steps the scheduler once at the current time.
func (t *SwitchTester) Pump() {
	t.scheduler.Step()
}

// PumpTo advances the clock to offset at past Epoch one frame at a time,
// stepping after every advance. Extra steps land exactly on timer due times
// and on at itself. Times in the past are a no-op.
func (t *SwitchTester) PumpTo(at time.Duration) {
	for {
		remaining := at - t.clock.Elapsed()
		if remaining <= 0 {
			return
		}
		step := min(remaining, t.frame)
		if due, ok := t.scheduler.NextTimer(); ok {
			if untilDue := due.Sub(t.clock.Now()); untilDue > 0 && untilDue < step {
				step = untilDue
			}
		}
		t.clock.Advance(step)
		t.scheduler.Step()
	}
}

// PumpFor advances the clock by d, stepping every frame.
func (t *SwitchTester) PumpFor(d time.Duration) {
	t.PumpTo(t.clock.Elapsed() + d)
}

// PumpAndSettle steps frames until no animation or timer is pending.
// Returns ErrSettleTimeout if work remains after timeout.
func (t *SwitchTester) PumpAndSettle(timeout time.Duration) error {
	deadline := t.clock.Elapsed() + timeout
	for t.scheduler.HasPendingWork() {
		if t.clock.Elapsed() >= deadline {
			return ErrSettleTimeout
		}
		t.PumpFor(t.frame)
	}
	return nil
}

// CaptureOps paints the switch through a PictureRecorder and returns the
// serialized operations.
func (t *SwitchTester) CaptureOps() []DisplayOp {
	recorder := &rendering.PictureRecorder{}
	canvas := recorder.BeginRecording(t.size)
	t.button.Paint(canvas)
	return SerializeDisplayList(recorder.EndRecording())
}
