package switchbutton_test

import (
	stderrors "errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/errors"
	"github.com/go-drift/switchbutton/pkg/rendering"
	"github.com/go-drift/switchbutton/pkg/switchbutton"
	switchtest "github.com/go-drift/switchbutton/pkg/testing"
)

const ms = time.Millisecond

func newTester(t *testing.T) *switchtest.SwitchTester {
	t.Helper()
	return switchtest.NewSwitchTesterWithT(t, switchbutton.DefaultStyle(1), 200, 80)
}

func settle(t *testing.T, tester *switchtest.SwitchTester) {
	t.Helper()
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func rest(b *switchbutton.SwitchButton, checked bool) switchbutton.ViewState {
	g, s := b.Geometry(), b.Style()
	if checked {
		return switchbutton.ViewState{KnobX: g.KnobMaxX, FillColor: s.CheckedColor, IndicatorColor: s.IndicatorColor, FillRadius: g.ViewRadius}
	}
	return switchbutton.ViewState{KnobX: g.KnobMinX, FillColor: s.UncheckedColor}
}

func TestTapToggles(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()
	g := b.Geometry()

	tester.Down(10, 0)
	tester.Up(10, 50*ms)

	if b.Phase() != switchbutton.PhaseSwitching {
		t.Fatalf("Phase = %v, want switching", b.Phase())
	}
	if b.IsChecked() {
		t.Error("checked must not change before the switching run completes")
	}

	last := b.ViewState().KnobX
	if last != g.KnobMinX {
		t.Errorf("KnobX = %v at start, want %v", last, g.KnobMinX)
	}
	for b.IsAnimating() {
		tester.PumpFor(16 * ms)
		x := b.ViewState().KnobX
		if x < last {
			t.Fatalf("knob moved backwards: %v -> %v", last, x)
		}
		last = x
	}

	if last != g.KnobMaxX {
		t.Errorf("KnobX = %v at end, want %v", last, g.KnobMaxX)
	}
	if !b.IsChecked() || b.Phase() != switchbutton.PhaseIdle {
		t.Errorf("checked=%v phase=%v, want true idle", b.IsChecked(), b.Phase())
	}
	if got := tester.Changes(); !slices.Equal(got, []bool{true}) {
		t.Errorf("Changes() = %v, want [true]", got)
	}
}

func TestDragCommit(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	tester.Down(10, 0)
	tester.PumpTo(100 * ms)
	if b.Phase() != switchbutton.PhasePendingDrag {
		t.Fatalf("Phase = %v at 100ms, want pending-drag", b.Phase())
	}

	tester.Move(180, 150*ms)
	if want := b.Geometry().KnobXAt(0.9); math.Abs(b.ViewState().KnobX-want) > 1e-9 {
		t.Errorf("KnobX = %v after move, want %v", b.ViewState().KnobX, want)
	}

	tester.Up(180, 400*ms)
	if b.Phase() != switchbutton.PhasePendingSettle {
		t.Fatalf("Phase = %v after release, want pending-settle", b.Phase())
	}
	if !b.IsChecked() {
		t.Error("settle commits checked before animating")
	}
	if len(tester.Changes()) != 0 {
		t.Error("listener must wait for the settle animation")
	}

	settle(t, tester)
	if !b.IsChecked() || b.Phase() != switchbutton.PhaseIdle {
		t.Errorf("checked=%v phase=%v, want true idle", b.IsChecked(), b.Phase())
	}
	if got := tester.Changes(); !slices.Equal(got, []bool{true}) {
		t.Errorf("Changes() = %v, want [true]", got)
	}
	if got := b.ViewState(); got != rest(b, true) {
		t.Errorf("ViewState = %+v, want checked rest", got)
	}
}

func TestDragCancel(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	tester.Down(10, 0)
	tester.Move(60, 150*ms)
	tester.Up(60, 400*ms)

	if b.Phase() != switchbutton.PhasePendingReset {
		t.Fatalf("Phase = %v after release, want pending-reset", b.Phase())
	}
	settle(t, tester)

	if b.IsChecked() {
		t.Error("checked changed on a reset")
	}
	if len(tester.Changes()) != 0 {
		t.Errorf("Changes() = %v, want none", tester.Changes())
	}
	if got := b.ViewState(); got != rest(b, false) {
		t.Errorf("ViewState = %+v, want unchecked rest", got)
	}
}

func TestTapTimeoutBoundary(t *testing.T) {
	tests := []struct {
		name      string
		release   time.Duration
		wantPhase switchbutton.Phase
		wantCheck bool
	}{
		{"exactly at timeout is a tap", switchbutton.TapTimeout, switchbutton.PhaseSwitching, true},
		{"just past timeout resets", switchbutton.TapTimeout + ms, switchbutton.PhasePendingReset, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := newTester(t)
			b := tester.Button()

			tester.Down(10, 0)
			tester.Up(10, tt.release)
			if b.Phase() != tt.wantPhase {
				t.Fatalf("Phase = %v, want %v", b.Phase(), tt.wantPhase)
			}
			settle(t, tester)
			if b.IsChecked() != tt.wantCheck {
				t.Errorf("IsChecked() = %v, want %v", b.IsChecked(), tt.wantCheck)
			}
		})
	}
}

func TestTwoTapsRoundTrip(t *testing.T) {
	for _, initial := range []bool{false, true} {
		style := switchbutton.DefaultStyle(1)
		style.Checked = initial
		tester := switchtest.NewSwitchTesterWithT(t, style, 200, 80)

		tester.Tap(100, 50*ms)
		settle(t, tester)
		tester.Tap(100, 50*ms)
		settle(t, tester)

		if got := tester.Button().IsChecked(); got != initial {
			t.Errorf("initial %v: IsChecked() = %v after two taps", initial, got)
		}
		if got, want := tester.Changes(), []bool{!initial, initial}; !slices.Equal(got, want) {
			t.Errorf("initial %v: Changes() = %v, want %v", initial, got, want)
		}
	}
}

func TestDragBackBeforeReleaseResets(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	tester.Down(10, 0)
	tester.Move(180, 150*ms)
	tester.PumpTo(400 * ms)
	if b.Phase() != switchbutton.PhaseDragging {
		t.Fatalf("Phase = %v, want dragging", b.Phase())
	}
	tester.Move(160, 420*ms)
	if b.ViewState().FillColor == b.Style().UncheckedColor {
		t.Error("dragging past the midpoint should tint the track")
	}
	tester.Move(40, 450*ms)
	tester.Up(40, 500*ms)

	if b.Phase() != switchbutton.PhasePendingReset {
		t.Fatalf("Phase = %v, want pending-reset", b.Phase())
	}
	settle(t, tester)
	if len(tester.Changes()) != 0 || b.IsChecked() {
		t.Errorf("checked=%v changes=%v, want unchanged", b.IsChecked(), tester.Changes())
	}
}

func TestDraggingKeepsKnobInRange(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()
	g := b.Geometry()

	tester.Down(10, 0)
	tester.PumpTo(400 * ms)
	if b.Phase() != switchbutton.PhaseDragging {
		t.Fatalf("Phase = %v, want dragging", b.Phase())
	}

	at := 400 * ms
	for _, x := range []float64{-500, -1, 0, 37, 100, 199, 200, 201, 5000} {
		at += 10 * ms
		tester.Move(x, at)
		kx := b.ViewState().KnobX
		if kx < g.KnobMinX || kx > g.KnobMaxX {
			t.Errorf("Move(%v): KnobX = %v outside [%v, %v]", x, kx, g.KnobMinX, g.KnobMaxX)
		}
	}
	if b.ViewState().KnobX != g.KnobMaxX {
		t.Errorf("KnobX = %v past the right edge, want %v", b.ViewState().KnobX, g.KnobMaxX)
	}
}

func TestBlendEndpoints(t *testing.T) {
	t.Run("switching", func(t *testing.T) {
		tester := newTester(t)
		b := tester.Button()
		b.Toggle()
		if got := b.ViewState(); got != rest(b, false) {
			t.Errorf("fraction 0: %+v, want before", got)
		}
		settle(t, tester)
		if got := b.ViewState(); got != rest(b, true) {
			t.Errorf("fraction 1: %+v, want after", got)
		}
	})

	t.Run("settle", func(t *testing.T) {
		tester := newTester(t)
		b := tester.Button()
		tester.Down(10, 0)
		tester.PumpTo(400 * ms)
		tester.Move(170, 410*ms)
		before := b.ViewState()
		tester.Up(170, 420*ms)
		if got := b.ViewState(); got != before {
			t.Errorf("fraction 0: %+v, want %+v", got, before)
		}
		settle(t, tester)
		if got := b.ViewState(); got != rest(b, true) {
			t.Errorf("fraction 1: %+v, want checked rest", got)
		}
	})

	t.Run("reset", func(t *testing.T) {
		tester := newTester(t)
		b := tester.Button()
		tester.Down(10, 0)
		tester.PumpTo(400 * ms)
		if b.Phase() != switchbutton.PhaseDragging {
			t.Fatalf("Phase = %v, want dragging", b.Phase())
		}
		tester.Move(60, 410*ms)
		before := b.ViewState()
		tester.Up(60, 420*ms)
		if b.Phase() != switchbutton.PhasePendingReset {
			t.Fatalf("Phase = %v, want pending-reset", b.Phase())
		}
		if got := b.ViewState(); got != before {
			t.Errorf("fraction 0: %+v, want %+v", got, before)
		}
		settle(t, tester)
		if got := b.ViewState(); got != rest(b, false) {
			t.Errorf("fraction 1: %+v, want unchecked rest", got)
		}
	})

	t.Run("pending drag", func(t *testing.T) {
		style := switchbutton.DefaultStyle(1)
		style.Checked = true
		tester := switchtest.NewSwitchTesterWithT(t, style, 200, 80)
		b := tester.Button()
		tester.Down(150, 0)
		tester.PumpTo(100 * ms)
		if got := b.ViewState(); got != rest(b, true) {
			t.Errorf("fraction 0: %+v, want checked rest", got)
		}
		tester.PumpTo(400 * ms)
		got := b.ViewState()
		if b.Phase() != switchbutton.PhaseDragging {
			t.Fatalf("Phase = %v, want dragging", b.Phase())
		}
		if got.FillColor != style.CheckedColor || got.FillRadius != b.Geometry().ViewRadius || got.IndicatorColor.A() != 0 {
			t.Errorf("drag pose = %+v", got)
		}
	})
}

func TestCancelResets(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	tester.Down(10, 0)
	tester.Move(190, 200*ms)
	tester.Cancel(250 * ms)
	if b.Phase() != switchbutton.PhasePendingReset {
		t.Fatalf("Phase = %v, want pending-reset", b.Phase())
	}
	settle(t, tester)
	if b.IsChecked() || len(tester.Changes()) != 0 {
		t.Errorf("cancel must not commit: checked=%v changes=%v", b.IsChecked(), tester.Changes())
	}
}

func TestReleaseBeforeTimerNeverDrags(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	tester.Down(10, 0)
	tester.Up(10, 40*ms)
	settle(t, tester)
	for _, p := range []switchbutton.Phase{switchbutton.PhasePendingDrag, switchbutton.PhaseDragging} {
		if b.Phase() == p {
			t.Errorf("cancelled timer still entered %v", p)
		}
	}
	if !b.IsChecked() {
		t.Error("expected the tap to check the switch")
	}
}

func TestDisabledIgnoresInput(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()
	b.SetEnabled(false)

	b.Toggle()
	b.ToggleAnimated(false)
	b.SetChecked(true)
	tester.Tap(10, 50*ms)
	settle(t, tester)

	if b.IsChecked() || b.IsAnimating() || len(tester.Changes()) != 0 {
		t.Errorf("disabled switch changed: checked=%v changes=%v", b.IsChecked(), tester.Changes())
	}

	b.SetEnabled(true)
	b.Toggle()
	settle(t, tester)
	if !b.IsChecked() {
		t.Error("re-enabled switch should toggle")
	}
}

func TestToggleBeforeLayout(t *testing.T) {
	clk := switchtest.NewFakeClock()
	s := animation.NewScheduler(clk)
	b, err := switchbutton.New(switchbutton.DefaultStyle(1), switchbutton.WithScheduler(s))
	if err != nil {
		t.Fatal(err)
	}
	var changes []bool
	b.SetOnCheckedChanged(func(c bool) { changes = append(changes, c) })

	b.Toggle()
	if !b.IsChecked() || b.IsAnimating() {
		t.Errorf("checked=%v animating=%v, want flipped without animation", b.IsChecked(), b.IsAnimating())
	}
	b.SetChecked(false)
	if b.IsChecked() {
		t.Error("SetChecked(false) before layout should flip")
	}
	if !slices.Equal(changes, []bool{true}) {
		t.Errorf("changes = %v, want [true]", changes)
	}

	b.SetSize(200, 80)
	if got := b.ViewState().KnobX; got != b.Geometry().KnobMinX {
		t.Errorf("KnobX = %v after layout, want unchecked rest", got)
	}
}

func TestReentrantTogglePanics(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()
	b.SetOnCheckedChanged(func(bool) { b.Toggle() })

	func() {
		defer func() {
			r := recover()
			err, ok := r.(*errors.Error)
			if !ok {
				t.Fatalf("recovered %v, want *errors.Error", r)
			}
			if err.Kind != errors.KindReentrancy || !stderrors.Is(err, errors.ErrReentrantToggle) {
				t.Errorf("unexpected panic %v", err)
			}
		}()
		b.ToggleAnimated(false)
	}()

	b.SetOnCheckedChanged(nil)
	b.ToggleAnimated(false)
	if b.IsChecked() {
		t.Error("expected the guard to be released after the panic")
	}
}

func TestEffectDisabledSnaps(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()
	b.SetEffectEnabled(false)

	b.Toggle()
	if b.IsAnimating() || !b.IsChecked() {
		t.Fatalf("animating=%v checked=%v, want instant flip", b.IsAnimating(), b.IsChecked())
	}
	if got := b.ViewState(); got != rest(b, true) {
		t.Errorf("ViewState = %+v, want checked rest", got)
	}
	if !slices.Equal(tester.Changes(), []bool{true}) {
		t.Errorf("Changes() = %v, want [true]", tester.Changes())
	}
}

func TestSetChecked(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	b.SetChecked(false)
	if b.IsAnimating() {
		t.Error("SetChecked to the current value must not animate")
	}

	b.SetChecked(true)
	if b.Phase() != switchbutton.PhaseSwitching {
		t.Fatalf("Phase = %v, want switching", b.Phase())
	}
	tester.PumpFor(100 * ms)
	b.SetChecked(true)
	settle(t, tester)

	if !b.IsChecked() {
		t.Error("expected checked")
	}
	if len(tester.Changes()) != 0 {
		t.Errorf("SetChecked must not notify, got %v", tester.Changes())
	}
}

func TestToggleInterruptsSwitching(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	b.Toggle()
	tester.PumpFor(100 * ms)
	b.Toggle()

	if got := tester.Changes(); !slices.Equal(got, []bool{true}) {
		t.Fatalf("interrupted run should commit, Changes() = %v", got)
	}
	if !b.IsChecked() || b.Phase() != switchbutton.PhaseSwitching {
		t.Fatalf("checked=%v phase=%v", b.IsChecked(), b.Phase())
	}
	settle(t, tester)
	if b.IsChecked() {
		t.Error("second toggle should uncheck")
	}
	if got := tester.Changes(); !slices.Equal(got, []bool{true, false}) {
		t.Errorf("Changes() = %v, want [true false]", got)
	}
}

type reportHandler struct {
	errs []*errors.Error
}

func (h *reportHandler) HandleError(err *errors.Error)      { h.errs = append(h.errs, err) }
func (h *reportHandler) HandlePanic(err *errors.PanicError) {}

func TestDegenerateSizeReportedOnce(t *testing.T) {
	h := &reportHandler{}
	prev := errors.SetHandler(h)
	defer errors.SetHandler(prev)

	tester := newTester(t)
	b := tester.Button()
	b.SetSize(20, 80)
	b.SetSize(10, 80)

	if len(h.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(h.errs))
	}
	if h.errs[0].Kind != errors.KindConfig || !stderrors.Is(h.errs[0], errors.ErrDegenerateGeometry) {
		t.Errorf("unexpected report %v", h.errs[0])
	}

	b.Toggle()
	settle(t, tester)
	if !b.IsChecked() {
		t.Error("degenerate switch should still toggle")
	}
	if got := b.ViewState().FillRadius; got < 0 || got > b.Geometry().ViewRadius {
		t.Errorf("FillRadius = %v out of range", got)
	}
}

func TestShadowEffectInvalidates(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()
	before := tester.Invalidations()

	b.SetShadowEffect(true)
	if tester.Invalidations() != before {
		t.Error("unchanged shadow flag should not redraw")
	}
	b.SetShadowEffect(false)
	if tester.Invalidations() != before+1 {
		t.Error("expected a redraw when the shadow flag changes")
	}
	if b.Style().ShadowEnabled {
		t.Error("expected shadow disabled")
	}
}

func TestSlideCommitsBothWays(t *testing.T) {
	tester := newTester(t)
	b := tester.Button()

	tester.Slide(10, 190, 8, 600*ms)
	if b.Phase() != switchbutton.PhasePendingSettle {
		t.Fatalf("Phase = %v after slide right, want pending-settle", b.Phase())
	}
	settle(t, tester)
	if !b.IsChecked() {
		t.Fatal("slide right did not check")
	}

	tester.Slide(190, 10, 8, 600*ms)
	settle(t, tester)
	if b.IsChecked() {
		t.Error("slide left did not uncheck")
	}
	if got := tester.Changes(); !slices.Equal(got, []bool{true, false}) {
		t.Errorf("Changes() = %v, want [true false]", got)
	}
	if got := b.ViewState(); got != rest(b, false) {
		t.Errorf("ViewState = %+v, want unchecked rest", got)
	}
}

func TestKnobColorFollowsCheckedState(t *testing.T) {
	style := switchbutton.DefaultStyle(1)
	style.KnobColor = rendering.ColorWhite
	style.UncheckedKnobColor = rendering.ColorRed
	style.CheckedKnobColor = rendering.ColorBlue
	b, err := switchbutton.New(style, switchbutton.WithScheduler(animation.NewScheduler(switchtest.NewFakeClock())))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.KnobColor(); got != rendering.ColorWhite {
		t.Errorf("before layout KnobColor = %v, want the base colour", got)
	}
	b.SetSize(200, 80)
	if got := b.KnobColor(); got != rendering.ColorRed {
		t.Errorf("unchecked KnobColor = %v, want %v", got, rendering.ColorRed)
	}
	b.ToggleAnimated(false)
	if got := b.KnobColor(); got != rendering.ColorBlue {
		t.Errorf("checked KnobColor = %v, want %v", got, rendering.ColorBlue)
	}
}
