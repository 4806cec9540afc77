package animation

import (
	"fmt"
	"time"
)

// DriverStatus represents the current state of a [Driver].
type DriverStatus int

const (
	// DriverIdle means no run has started or the last run was cancelled.
	DriverIdle DriverStatus = iota
	// DriverRunning means a run is in flight.
	DriverRunning
	// DriverCompleted means the last run delivered its final tick.
	DriverCompleted
)

// String returns a human-readable representation of the driver status.
func (s DriverStatus) String() string {
	switch s {
	case DriverIdle:
		return "idle"
	case DriverRunning:
		return "running"
	case DriverCompleted:
		return "completed"
	default:
		return fmt.Sprintf("DriverStatus(%d)", int(s))
	}
}

// Driver runs a single 0→1 interpolation at a time.
//
// Each run calls onTick with a non-decreasing fraction in [0, 1], starting
// with a synchronous tick at 0 and ending with a tick at exactly 1 that is
// immediately followed by onComplete. Starting a new run cancels the live
// one; a cancelled run never calls its onComplete.
type Driver struct {
	// Curve transforms linear progress (optional). Outputs are clamped to
	// [0, 1] and never allowed to move backwards within a run.
	Curve Curve

	scheduler  *Scheduler
	ticker     *Ticker
	duration   time.Duration
	onTick     func(float64)
	onComplete func()
	fraction   float64
	status     DriverStatus
	generation uint64
}

// NewDriver creates a driver stepped by s. A nil scheduler uses the default.
func NewDriver(s *Scheduler) *Driver {
	if s == nil {
		s = defaultScheduler
	}
	return &Driver{
		Curve:     LinearCurve,
		scheduler: s,
	}
}

// Start begins a new run of the given duration. A zero or negative duration
// completes on the next frame.
func (d *Driver) Start(duration time.Duration, onTick func(fraction float64), onComplete func()) {
	d.Cancel()

	d.generation++
	d.duration = duration
	d.onTick = onTick
	d.onComplete = onComplete
	d.fraction = 0
	d.status = DriverRunning

	gen := d.generation
	d.ticker = d.scheduler.NewTicker(func(elapsed time.Duration) {
		d.tick(gen, elapsed)
	})
	d.ticker.Start()

	if onTick != nil {
		onTick(0)
	}
}

// Cancel stops the live run without calling its completion callback.
// Cancelling an idle driver is a no-op.
func (d *Driver) Cancel() {
	if d.status != DriverRunning {
		return
	}
	d.stopTicker()
	d.status = DriverIdle
	d.onTick = nil
	d.onComplete = nil
}

// IsRunning reports whether a run is in flight.
func (d *Driver) IsRunning() bool {
	return d.status == DriverRunning
}

// Status returns the current driver status.
func (d *Driver) Status() DriverStatus {
	return d.status
}

// Fraction returns the last fraction delivered to onTick.
func (d *Driver) Fraction() float64 {
	return d.fraction
}

func (d *Driver) tick(gen uint64, elapsed time.Duration) {
	if gen != d.generation || d.status != DriverRunning {
		return
	}

	progress := 1.0
	if d.duration > 0 {
		progress = float64(elapsed) / float64(d.duration)
	}
	if progress >= 1 {
		d.finish()
		return
	}

	eased := progress
	if d.Curve != nil {
		eased = clampUnit(d.Curve(progress))
	}
	if eased < d.fraction {
		eased = d.fraction
	}
	d.fraction = eased
	if d.onTick != nil {
		d.onTick(eased)
	}
}

func (d *Driver) finish() {
	onTick, onComplete := d.onTick, d.onComplete
	d.stopTicker()
	d.status = DriverCompleted
	d.fraction = 1
	d.onTick = nil
	d.onComplete = nil

	gen := d.generation
	if onTick != nil {
		onTick(1)
	}
	// onTick may have started a replacement run.
	if gen != d.generation {
		return
	}
	if onComplete != nil {
		onComplete()
	}
}

func (d *Driver) stopTicker() {
	if d.ticker != nil {
		d.ticker.Stop()
		d.ticker = nil
	}
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}
