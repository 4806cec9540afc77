package testing

import (
	"sync/atomic"
	"time"
)

// Epoch is where every FakeClock's timeline begins. Test scripts name
// instants as offsets from it.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an animation.Clock that only moves when told to. It tracks
// the offset from Epoch, so reads and writes from different goroutines
// need no lock.
type FakeClock struct {
	offset atomic.Int64
}

func NewFakeClock() *FakeClock {
	return &FakeClock{}
}

func (c *FakeClock) Now() time.Time {
	return Epoch.Add(c.Elapsed())
}

// Elapsed is the clock's offset from Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return time.Duration(c.offset.Load())
}

// Advance moves time forward by d. It never moves backwards.
func (c *FakeClock) Advance(d time.Duration) {
	if d > 0 {
		c.offset.Add(int64(d))
	}
}

// Set jumps to t, which may lie before the current time.
func (c *FakeClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(Epoch)))
}

// At converts an offset on the timeline to an absolute time.
func (c *FakeClock) At(d time.Duration) time.Time {
	return Epoch.Add(d)
}
