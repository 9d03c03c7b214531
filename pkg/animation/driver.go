package animation

import "time"

// Driver maps the time elapsed since an animation started to its current
// value. done is true once the final value has been reached.
type Driver interface {
	Advance(elapsed time.Duration) (value float64, done bool)
}

// LinearDriver moves linearly from From to To over Duration.
// A non-positive Duration jumps straight to To.
type LinearDriver struct {
	From     float64
	To       float64
	Duration time.Duration
}

// Advance implements Driver.
func (d LinearDriver) Advance(elapsed time.Duration) (float64, bool) {
	if d.Duration <= 0 || elapsed >= d.Duration {
		return d.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	progress := float64(elapsed) / float64(d.Duration)
	return d.From + (d.To-d.From)*progress, false
}
