// Package animation provides the frame clock, cancellable timers and the
// fraction driver behind switch transitions.
//
// A host owns a [Scheduler] and calls Step once per frame. Everything that
// moves (tickers, delayed callbacks, [Driver] runs) is advanced from inside
// Step, so all callbacks run on the stepping goroutine.
//
//	s := animation.NewScheduler(nil)
//	d := animation.NewDriver(s)
//	d.Start(300*time.Millisecond, func(f float64) {
//	    knobX = animation.LerpFloat64(from, to, f)
//	}, func() {
//	    fmt.Println("done")
//	})
//	for s.HasPendingWork() {
//	    s.Step() // once per frame
//	}
package animation

import (
	"slices"
	"sync"
	"time"
)

// Scheduler drives frame tickers and delayed callbacks from a single clock.
type Scheduler struct {
	clock Clock

	mu      sync.Mutex
	tickers map[*Ticker]struct{}
	timers  []*Timer
}

var defaultScheduler = NewScheduler(nil)

// DefaultScheduler returns the package-level scheduler stepped by StepTickers.
func DefaultScheduler() *Scheduler {
	return defaultScheduler
}

// NewScheduler creates a scheduler reading time from c. A nil clock reads
// the wall clock.
func NewScheduler(c Clock) *Scheduler {
	if c == nil {
		c = SystemClock{}
	}
	return &Scheduler{
		clock:   c,
		tickers: make(map[*Ticker]struct{}),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// NewTicker creates an inactive ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{scheduler: s, callback: callback}
}

// After schedules fn to run on the first Step at or after d from now.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	t := &Timer{scheduler: s, due: s.Now().Add(d), fn: fn, pending: true}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return t
}

// Step advances every active ticker, then fires due timers in due order.
// Tickers or timers created by callbacks during a step are first serviced
// on the next step.
func (s *Scheduler) Step() {
	now := s.Now()

	s.mu.Lock()
	tickers := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		tickers = append(tickers, t)
	}
	s.mu.Unlock()

	for _, t := range tickers {
		if t.active && t.callback != nil {
			t.callback(now.Sub(t.started))
		}
	}

	s.mu.Lock()
	var due []*Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case !t.pending:
		case !t.due.After(now):
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept
	s.mu.Unlock()

	slices.SortStableFunc(due, func(a, b *Timer) int { return a.due.Compare(b.due) })
	for _, t := range due {
		s.mu.Lock()
		fire := t.pending
		t.pending = false
		s.mu.Unlock()
		if fire && t.fn != nil {
			t.fn()
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}

// HasPendingWork reports whether a ticker is active or a timer is waiting.
func (s *Scheduler) HasPendingWork() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tickers) > 0 {
		return true
	}
	for _, t := range s.timers {
		if t.pending {
			return true
		}
	}
	return false
}

// NextTimer returns the due time of the earliest pending timer.
func (s *Scheduler) NextTimer() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next time.Time
	found := false
	for _, t := range s.timers {
		if t.pending && (!found || t.due.Before(next)) {
			next, found = t.due, true
		}
	}
	return next, found
}

func (s *Scheduler) addTicker(t *Ticker) {
	s.mu.Lock()
	s.tickers[t] = struct{}{}
	s.mu.Unlock()
}

func (s *Scheduler) removeTicker(t *Ticker) {
	s.mu.Lock()
	delete(s.tickers, t)
	s.mu.Unlock()
}

// Timer is a cancellable deferred callback created by [Scheduler.After].
type Timer struct {
	scheduler *Scheduler
	due       time.Time
	fn        func()
	pending   bool
}

// Cancel prevents the callback from running. Cancelling a timer that already
// fired or was already cancelled is a no-op. Cancel on a nil Timer is allowed.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.scheduler.mu.Lock()
	t.pending = false
	t.scheduler.mu.Unlock()
}

// Pending reports whether the callback is still waiting to run.
func (t *Timer) Pending() bool {
	if t == nil {
		return false
	}
	t.scheduler.mu.Lock()
	defer t.scheduler.mu.Unlock()
	return t.pending
}
