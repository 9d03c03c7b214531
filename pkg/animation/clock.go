// Package animation turns frame ticks into progress values.
//
// # Core Components
//
//   - [Driver]: maps elapsed time to a value and reports completion. The
//     ring uses [LinearDriver] to move its progress angle toward 360.
//
//   - [Ticker]: calls a callback with the elapsed time on every frame while
//     active. Tickers belong to a [Scheduler], which the host steps once per
//     frame.
//
//   - [Clock]: the time source read by schedulers. Tests swap it with
//     SetClock to control timing deterministically.
//
// # Basic Usage
//
//	driver := animation.LinearDriver{From: 0, To: 360, Duration: time.Second}
//	ticker := animation.NewTicker(func(elapsed time.Duration) {
//	    angle, done := driver.Advance(elapsed)
//	    ...
//	})
//	ticker.Start()
//
//	// once per frame, from the host's render loop
//	animation.StepTickers()
package animation

import "time"

// Clock provides time for animations. The default implementation uses
// system time. Tests can inject a fake clock via SetClock to control
// animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
