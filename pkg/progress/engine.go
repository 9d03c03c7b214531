package progress

import (
	"time"

	"github.com/go-drift/colorring/pkg/animation"
	"github.com/go-drift/colorring/pkg/graphics"
	"github.com/go-drift/colorring/pkg/segment"
)

// EngineOptions configures an Engine.
type EngineOptions struct {
	// StrokeWidth is the arc thickness in pixels.
	StrokeWidth float64

	// FinalizeWithPrimaryColor repaints every segment in PrimaryColor once
	// a run finishes.
	FinalizeWithPrimaryColor bool

	// PrimaryColor is the color used when finalizing.
	PrimaryColor graphics.Color

	// OnFinished is called once per completed run.
	OnFinished func()
}

// Engine owns the reveal state of a ring: the progress angle, the index of
// the segment being filled and the driver moving the angle toward 360.
//
// Engine is not safe for concurrent use. The host delivers ticks and render
// requests from a single goroutine.
type Engine struct {
	base  *segment.Model
	model *segment.Model
	opts  EngineOptions

	angle    float64
	index    int
	driver   animation.Driver
	finished bool
}

// NewEngine returns an idle engine at angle 0 for model.
func NewEngine(model *segment.Model, opts EngineOptions) *Engine {
	return &Engine{
		base:  model,
		model: model,
		opts:  opts,
	}
}

// Start begins a run that moves the angle linearly from its current value
// to 360 over duration. Any run in flight is cancelled first.
func (e *Engine) Start(duration time.Duration) {
	e.Cancel()
	e.driver = animation.LinearDriver{
		From:     e.angle,
		To:       segment.FullCircle,
		Duration: duration,
	}
	e.finished = false
}

// Cancel detaches the driver. The angle and segment index are kept.
func (e *Engine) Cancel() {
	e.driver = nil
}

// Advance applies the time elapsed since Start and returns the new angle.
// done reports that the driver reached 360 during this call; the engine
// then finishes the run. Without an active driver Advance changes nothing.
func (e *Engine) Advance(elapsed time.Duration) (angle float64, done bool) {
	if e.driver == nil {
		return e.angle, false
	}
	v, done := e.driver.Advance(elapsed)
	if v > e.angle {
		e.angle = v
	}
	if done {
		e.driver = nil
		e.Finish()
	}
	return e.angle, done
}

// Render draws the current frame into oval.
//
// Completed segments are drawn in full and the active segment is drawn up to
// the current angle. When the angle has passed the active segment's end the
// engine moves on to the next segment within the same call. Past the last
// segment a full circle is drawn and the run finishes.
func (e *Engine) Render(canvas graphics.Canvas, oval graphics.Rect) {
	breakpoint := e.model.BreakpointAngle()
	for {
		seg := e.model.At(e.index)
		if e.angle < seg.EndThreshold {
			for i := 0; i < e.index; i++ {
				prev := e.model.At(i)
				canvas.DrawArc(oval, prev.StartAngle, breakpoint, false, e.paint(prev.Color))
			}
			// A skipped leading color leaves the angle below the reveal
			// limit. The sweep is clamped to 0 there instead of passing a
			// negative sweep, which would draw the arc backwards.
			sweep := max(seg.Sweep(e.angle), 0)
			canvas.DrawArc(oval, seg.StartAngle, sweep, false, e.paint(seg.Color))
			return
		}
		if e.index < e.model.Len()-1 {
			e.index++
			continue
		}
		canvas.DrawArc(oval, e.model.StartAngle(), segment.FullCircle, false, e.paint(seg.Color))
		e.Finish()
		return
	}
}

// Finish ends the run. With FinalizeWithPrimaryColor every segment is
// repainted in the primary color for all later frames. OnFinished is called
// only on the first Finish of a run.
func (e *Engine) Finish() {
	if e.opts.FinalizeWithPrimaryColor {
		e.model = e.base.WithColor(e.opts.PrimaryColor)
	}
	if e.finished {
		return
	}
	e.finished = true
	if e.opts.OnFinished != nil {
		e.opts.OnFinished()
	}
}

// Reset cancels the run and returns to angle 0 on the first segment with
// the configured colors.
func (e *Engine) Reset() {
	e.Cancel()
	e.angle = 0
	e.index = 0
	e.finished = false
	e.model = e.base
}

// Angle returns the progress angle in degrees, from 0 to 360.
func (e *Engine) Angle() float64 {
	return e.angle
}

// SegmentIndex returns the index of the segment being revealed.
func (e *Engine) SegmentIndex() int {
	return e.index
}

// IsAnimating reports whether a driver is attached.
func (e *Engine) IsAnimating() bool {
	return e.driver != nil
}

// IsFinished reports whether the current run has finished.
func (e *Engine) IsFinished() bool {
	return e.finished
}

// Model returns the segments used for the next frame, including any
// primary color finalization.
func (e *Engine) Model() *segment.Model {
	return e.model
}

func (e *Engine) paint(c graphics.Color) graphics.Paint {
	return graphics.ArcPaint(c, e.opts.StrokeWidth)
}
