package testing

import (
	"sync"
	"time"
)

// epoch is where every FakeClock starts.
var epoch = time.Unix(0, 0).UTC()

// FakeClock is an animation.Clock that only moves when told to. Pass it to
// animation.NewScheduler or animation.SetClock.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	frames int
}

// NewFakeClock returns a clock at the Unix epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: epoch}
}

// Now implements animation.Clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d and returns the new time.
func (c *FakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

// Elapsed returns how far the clock has moved since it was created.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(epoch)
}

// Stepper advances tickers once per call, such as *animation.Scheduler.
type Stepper interface {
	Step()
}

// Pump runs frames frames: each one advances the clock by frame and then
// steps s.
func (c *FakeClock) Pump(s Stepper, frames int, frame time.Duration) {
	for i := 0; i < frames; i++ {
		c.Advance(frame)
		c.mu.Lock()
		c.frames++
		c.mu.Unlock()
		s.Step()
	}
}

// Frames returns the number of frames run by Pump.
func (c *FakeClock) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
