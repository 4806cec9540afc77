package animation

import "time"

// Ticker reports, once per Scheduler.Step, how long it has been running.
// A Driver owns one ticker per run.
type Ticker struct {
	scheduler *Scheduler
	callback  func(elapsed time.Duration)
	active    bool
	started   time.Time
}

// NewTicker creates a stopped ticker on the default scheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return defaultScheduler.NewTicker(callback)
}

// Start registers the ticker with its scheduler and marks the start time.
// Starting an active ticker does nothing.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.started = t.scheduler.Now()
	t.scheduler.addTicker(t)
}

// Stop unregisters the ticker. Stopping a stopped ticker does nothing.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.scheduler.removeTicker(t)
}

func (t *Ticker) IsActive() bool { return t.active }

// Elapsed is the time since Start, or 0 when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return t.scheduler.Now().Sub(t.started)
}

// StepTickers steps the default scheduler.
func StepTickers() {
	defaultScheduler.Step()
}

// HasActiveTickers reports whether the default scheduler has running tickers.
func HasActiveTickers() bool {
	return defaultScheduler.HasActiveTickers()
}
