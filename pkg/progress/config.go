// Package progress animates a ring of colored segments and decides what to
// paint on each frame.
//
// [Engine] holds the reveal state machine. [Indicator] wraps an engine with
// the host-facing surface: configuration, sizing, frame ticking and the
// draw callback.
package progress

import (
	"time"

	"github.com/go-drift/colorring/pkg/graphics"
)

// Defaults applied by DefaultConfig.
const (
	DefaultStrokeWidth = 8
	DefaultStartAngle  = -90.0
	DefaultDuration    = 60000 * time.Millisecond
)

// Config describes an indicator. Start from DefaultConfig and override
// fields; the zero Config draws an invisible ring.
type Config struct {
	// StrokeWidth is the ring thickness in pixels. The drawing bounds are
	// inset by this amount on every side.
	StrokeWidth int

	// AutoPlay starts the animation with Duration on the first size change.
	AutoPlay bool

	// StartAngle is where the first segment begins, in degrees. -90 is
	// 12 o'clock.
	StartAngle float64

	// Duration is the length of an auto-played run.
	Duration time.Duration

	// Colors holds one to four segment colors. Nil uses a single segment in
	// graphics.DefaultPrimaryColor. graphics.ColorNone entries are skipped.
	Colors []graphics.Color

	// FinalizeWithPrimaryColor repaints the whole ring in PrimaryColor once
	// the animation completes.
	FinalizeWithPrimaryColor bool

	// PrimaryColor is the finalize color.
	PrimaryColor graphics.Color
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		StrokeWidth:  DefaultStrokeWidth,
		StartAngle:   DefaultStartAngle,
		Duration:     DefaultDuration,
		PrimaryColor: graphics.DefaultPrimaryColor,
	}
}
