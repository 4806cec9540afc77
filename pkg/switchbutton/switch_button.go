// Package switchbutton implements an animated toggle switch with circle,
// square and line variants.
//
// A [SwitchButton] is driven by its host: the host sizes it with SetSize,
// feeds pointer events to HandlePointer, steps the animation scheduler once
// per frame and calls Paint when the invalidator fires. All methods must be
// called from the goroutine that steps the scheduler.
//
// The checked value changes only at well-defined points. A tap or
// programmatic toggle commits when its switching animation completes; a drag
// release past the midpoint commits immediately and notifies when the settle
// animation completes. A drag that ends on the same side never notifies.
package switchbutton

import (
	"io"
	"log/slog"
	"time"

	"github.com/go-drift/switchbutton/pkg/animation"
	"github.com/go-drift/switchbutton/pkg/errors"
	"github.com/go-drift/switchbutton/pkg/rendering"
)

// Gesture thresholds.
const (
	// PendingDragDelay is how long a press must be held before the knob
	// lifts into the drag pose.
	PendingDragDelay = 100 * time.Millisecond
	// TapTimeout is the longest press still treated as a tap (inclusive).
	TapTimeout = 300 * time.Millisecond
	// SettleThreshold is the drag fraction a release must exceed to commit
	// the checked state.
	SettleThreshold = 0.5
)

// Option configures a SwitchButton at construction.
type Option func(*SwitchButton)

// WithScheduler drives animations and the pending-drag timer from s instead
// of the default scheduler.
func WithScheduler(s *animation.Scheduler) Option {
	return func(b *SwitchButton) {
		if s != nil {
			b.scheduler = s
		}
	}
}

// WithLogger sends phase transition traces to logger at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(b *SwitchButton) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// SwitchButton is the state machine behind one switch widget.
type SwitchButton struct {
	style     Style
	scheduler *animation.Scheduler
	driver    *animation.Driver
	logger    *slog.Logger

	geometry    Geometry
	initialized bool
	degenerate  bool

	checked bool
	enabled bool
	phase   Phase
	// notify records whether the live switching run broadcasts on completion.
	notify bool

	current ViewState
	before  ViewState
	after   ViewState
	knob    rendering.Color

	broadcasting bool
	onChanged    func(checked bool)
	invalidator  func()

	touching  bool
	downAt    time.Time
	dragTimer *animation.Timer
}

// New creates an enabled switch with the given style. The style is
// validated; an unusable style returns an error wrapping
// errors.ErrInvalidStyle.
func New(style Style, opts ...Option) (*SwitchButton, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	curve, err := animation.CurveByName(style.Curve)
	if err != nil {
		return nil, errors.InvalidStyle("%v", err)
	}

	b := &SwitchButton{
		style:     style,
		scheduler: animation.DefaultScheduler(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		checked:   style.Checked,
		enabled:   true,
		knob:      style.KnobColor,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.driver = animation.NewDriver(b.scheduler)
	b.driver.Curve = curve
	return b, nil
}

// Style returns the current style.
func (b *SwitchButton) Style() Style {
	return b.style
}

// SetSize lays the switch out at width x height pixels and snaps the view
// to the resting pose of the current checked value. A live animation is
// completed first. A size with no room for the knob is accepted and
// reported once to the error handler.
func (b *SwitchButton) SetSize(width, height float64) {
	b.interrupt()

	b.geometry = ComputeGeometry(width, height, b.style)
	if b.geometry.Degenerate() {
		if !b.degenerate {
			errors.Report(&errors.Error{
				Op:   "switchbutton.SetSize",
				Kind: errors.KindConfig,
				Err:  errors.ErrDegenerateGeometry,
			})
		}
		b.degenerate = true
	} else {
		b.degenerate = false
	}

	b.snap()
	b.initialized = true
	b.invalidate()
}

// Geometry returns the current layout. It is the zero Geometry until the
// first SetSize.
func (b *SwitchButton) Geometry() Geometry {
	return b.geometry
}

// ViewState returns the current visual state.
func (b *SwitchButton) ViewState() ViewState {
	return b.current
}

// KnobColor returns the colour the knob is painted with.
func (b *SwitchButton) KnobColor() rendering.Color {
	return b.knob
}

// Phase returns the current animation phase.
func (b *SwitchButton) Phase() Phase {
	return b.phase
}

// IsChecked returns the committed checked value.
func (b *SwitchButton) IsChecked() bool {
	return b.checked
}

// IsAnimating reports whether an animation run is in flight.
func (b *SwitchButton) IsAnimating() bool {
	return b.driver.IsRunning()
}

// SetChecked moves the switch to checked without notifying the listener.
// It animates when the effect is enabled. Asking for the value the switch
// is already at, or already animating towards, only requests a redraw.
func (b *SwitchButton) SetChecked(checked bool) {
	if checked == b.target() {
		b.invalidate()
		return
	}
	b.toggle(b.style.EffectEnabled, false)
}

// Toggle flips the checked value with animation and notifies the listener.
func (b *SwitchButton) Toggle() {
	b.toggle(true, true)
}

// ToggleAnimated flips the checked value and notifies the listener,
// animating only when animate is true and the effect is enabled.
func (b *SwitchButton) ToggleAnimated(animate bool) {
	b.toggle(animate, true)
}

// SetEnabled enables or disables the switch. A disabled switch ignores
// toggles and pointer events.
func (b *SwitchButton) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if !enabled {
		b.touching = false
		b.dragTimer.Cancel()
	}
	b.invalidate()
}

// Enabled reports whether the switch accepts input.
func (b *SwitchButton) Enabled() bool {
	return b.enabled
}

// SetEffectEnabled turns transition animations on or off.
func (b *SwitchButton) SetEffectEnabled(enabled bool) {
	b.style.EffectEnabled = enabled
}

// SetShadowEffect turns the knob shadow on or off.
func (b *SwitchButton) SetShadowEffect(enabled bool) {
	if b.style.ShadowEnabled == enabled {
		return
	}
	b.style.ShadowEnabled = enabled
	b.invalidate()
}

// SetOnCheckedChanged sets the listener called once per committed change.
// The listener must not change the checked state; doing so panics.
func (b *SwitchButton) SetOnCheckedChanged(fn func(checked bool)) {
	b.onChanged = fn
}

// SetInvalidator sets the function called whenever the switch needs to be
// repainted.
func (b *SwitchButton) SetInvalidator(fn func()) {
	b.invalidator = fn
}

// target is the checked value the switch is at or heading to.
func (b *SwitchButton) target() bool {
	if b.phase == PhaseSwitching && b.driver.IsRunning() {
		return !b.checked
	}
	return b.checked
}

func (b *SwitchButton) toggle(animate, broadcast bool) {
	if !b.enabled {
		return
	}
	if b.broadcasting {
		panic(errors.Reentrant("switchbutton.Toggle"))
	}
	if !b.initialized {
		b.checked = !b.checked
		if broadcast {
			b.broadcast()
		}
		return
	}

	b.interrupt()

	if !b.style.EffectEnabled || !animate {
		b.checked = !b.checked
		b.setPhase(PhaseIdle)
		b.snap()
		b.invalidate()
		if broadcast {
			b.broadcast()
		}
		return
	}

	next := !b.checked
	b.before = b.current
	b.after = b.geometry.restState(b.style, next)
	b.knob = b.style.knobColor(next)
	b.notify = broadcast
	b.run(PhaseSwitching)
}

// enterPendingDrag lifts the knob into the drag pose after a long press.
func (b *SwitchButton) enterPendingDrag() {
	if b.phase != PhaseIdle || !b.touching {
		return
	}
	b.interrupt()

	b.before = b.current
	b.after = b.current
	if b.checked {
		b.after.FillColor = b.style.CheckedColor
		b.after.KnobX = b.geometry.KnobMaxX
		b.after.IndicatorColor = b.style.CheckedColor
	} else {
		b.after.FillColor = b.style.UncheckedColor
		b.after.KnobX = b.geometry.KnobMinX
		b.after.FillRadius = b.geometry.ViewRadius
	}
	b.run(PhasePendingDrag)
}

// reset animates back to the resting pose of the unchanged checked value.
func (b *SwitchButton) reset() {
	if b.phase != PhaseDragging && b.phase != PhasePendingDrag {
		return
	}
	b.interrupt()

	b.before = b.current
	b.after = b.geometry.restState(b.style, b.checked)
	b.run(PhasePendingReset)
}

// settle commits checked and animates to its resting pose. The listener is
// notified when the animation completes.
func (b *SwitchButton) settle(checked bool) {
	b.interrupt()

	b.checked = checked
	b.before = b.current
	b.after = b.geometry.restState(b.style, checked)
	b.knob = b.style.knobColor(checked)
	b.run(PhasePendingSettle)
}

func (b *SwitchButton) run(phase Phase) {
	b.setPhase(phase)
	b.driver.Start(b.style.Duration, b.onTick, b.onComplete)
}

// interrupt cancels the live run and applies its completion effects, so a
// superseded transition still reaches its committed state.
func (b *SwitchButton) interrupt() {
	if !b.driver.IsRunning() {
		return
	}
	b.driver.Cancel()
	b.logger.Debug("switch run interrupted", slog.String("phase", b.phase.String()))
	b.onComplete()
}

func (b *SwitchButton) onTick(t float64) {
	switch b.phase {
	case PhaseSwitching:
		b.current.KnobX = animation.LerpFloat64(b.before.KnobX, b.after.KnobX, t)
		p := b.geometry.Fraction(b.current.KnobX)
		b.current.FillColor = lerpTrack(b.style, p)
		b.current.FillRadius = p * b.geometry.ViewRadius
		b.current.IndicatorColor = animation.LerpColor(rendering.ColorTransparent, b.style.IndicatorColor, p)
	case PhasePendingDrag, PhasePendingReset, PhasePendingSettle:
		b.current = blend(b.current, b.before, b.after, t, b.phase != PhasePendingDrag)
	default:
		return
	}
	b.invalidate()
}

func (b *SwitchButton) onComplete() {
	switch b.phase {
	case PhasePendingDrag:
		b.setPhase(PhaseDragging)
		b.current.IndicatorColor = rendering.ColorTransparent
		b.current.FillRadius = b.geometry.ViewRadius
		b.invalidate()
	case PhasePendingReset:
		b.setPhase(PhaseIdle)
		b.invalidate()
	case PhasePendingSettle:
		b.setPhase(PhaseIdle)
		b.invalidate()
		b.broadcast()
	case PhaseSwitching:
		b.checked = !b.checked
		b.setPhase(PhaseIdle)
		b.invalidate()
		if b.notify {
			b.broadcast()
		}
	}
}

// snap jumps to the resting pose of the current checked value.
func (b *SwitchButton) snap() {
	b.current = b.geometry.restState(b.style, b.checked)
	b.knob = b.style.knobColor(b.checked)
}

func (b *SwitchButton) setPhase(p Phase) {
	if b.phase == p {
		return
	}
	b.logger.Debug("switch phase",
		slog.String("from", b.phase.String()),
		slog.String("to", p.String()),
		slog.Bool("checked", b.checked),
	)
	b.phase = p
}

func (b *SwitchButton) broadcast() {
	if b.onChanged == nil {
		return
	}
	b.broadcasting = true
	defer func() { b.broadcasting = false }()
	b.onChanged(b.checked)
}

func (b *SwitchButton) invalidate() {
	if b.invalidator != nil {
		b.invalidator()
	}
}
