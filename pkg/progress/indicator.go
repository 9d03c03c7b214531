package progress

import (
	"io"
	"log"
	"time"

	"github.com/go-drift/colorring/pkg/animation"
	"github.com/go-drift/colorring/pkg/errors"
	"github.com/go-drift/colorring/pkg/graphics"
	"github.com/go-drift/colorring/pkg/segment"
)

// Indicator is the host-facing progress ring.
//
// The host reports its pixel size through SizeChanged, calls Draw from its
// render pass and steps the ticker provider once per frame. The indicator
// calls the invalidator whenever a new frame is needed.
type Indicator struct {
	cfg    Config
	engine *Engine
	oval   graphics.Rect

	provider   animation.TickerProvider
	ticker     *animation.Ticker
	listener   func()
	invalidate func()
	logger     *log.Logger

	autoPlayed bool
}

// Option customizes an Indicator.
type Option func(*Indicator)

// WithTickerProvider sets where the indicator gets its frame ticker.
// The default is animation.DefaultScheduler().
func WithTickerProvider(p animation.TickerProvider) Option {
	return func(i *Indicator) {
		i.provider = p
	}
}

// WithLogger sets the logger for lifecycle messages. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(i *Indicator) {
		i.logger = l
	}
}

// WithDrawingStatusListener sets the callback fired when a run finishes.
func WithDrawingStatusListener(fn func()) Option {
	return func(i *Indicator) {
		i.listener = fn
	}
}

// WithInvalidator sets the callback asking the host for a redraw.
func WithInvalidator(fn func()) Option {
	return func(i *Indicator) {
		i.invalidate = fn
	}
}

// New builds an indicator for cfg. It fails when cfg.Colors holds an
// invalid number of entries (see segment.ErrInvalidSegmentCount).
func New(cfg Config, opts ...Option) (*Indicator, error) {
	i := &Indicator{
		provider: animation.DefaultScheduler(),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(i)
	}
	if err := i.Configure(cfg); err != nil {
		return nil, err
	}
	return i, nil
}

// Configure replaces the configuration, rebuilding the segments and
// resetting the animation. On error the previous configuration is kept.
func (i *Indicator) Configure(cfg Config) error {
	model, err := segment.Build(cfg.Colors, cfg.StartAngle)
	if err != nil {
		return err
	}

	i.stopTicker()
	i.cfg = cfg
	i.engine = NewEngine(model, EngineOptions{
		StrokeWidth:              float64(cfg.StrokeWidth),
		FinalizeWithPrimaryColor: cfg.FinalizeWithPrimaryColor,
		PrimaryColor:             cfg.PrimaryColor,
		OnFinished:               i.drawFinished,
	})
	i.autoPlayed = false
	i.logger.Printf("progress: configured %d segments, breakpoint %.1f°", model.Len(), model.BreakpointAngle())
	return nil
}

// Animate starts a run from the current angle to 360 over duration,
// replacing any run in flight.
func (i *Indicator) Animate(duration time.Duration) {
	i.stopTicker()
	i.engine.Start(duration)

	var t *animation.Ticker
	t = i.provider.CreateTicker(func(elapsed time.Duration) {
		_, done := i.engine.Advance(elapsed)
		if done {
			t.Stop()
		}
		i.requestRedraw()
	})
	i.ticker = t
	t.Start()
	i.requestRedraw()
	i.logger.Printf("progress: animating from %.1f° over %v", i.engine.Angle(), duration)
}

// CancelAnimation stops the current run, keeping the last frame.
func (i *Indicator) CancelAnimation() {
	i.stopTicker()
	i.engine.Cancel()
}

// Reset stops the current run and rewinds to an empty ring.
func (i *Indicator) Reset() {
	i.stopTicker()
	i.engine.Reset()
	i.requestRedraw()
}

// SizeChanged updates the drawing bounds to the given pixel size, inset by
// the stroke width. With AutoPlay the first call starts the animation.
func (i *Indicator) SizeChanged(width, height int) {
	bounds := graphics.RectFromLTWH(0, 0, float64(width), float64(height))
	i.oval = bounds.Deflate(float64(i.cfg.StrokeWidth))
	if i.cfg.AutoPlay && !i.autoPlayed {
		i.autoPlayed = true
		i.Animate(i.cfg.Duration)
	}
}

// Draw renders the current frame. A panic while drawing is reported to the
// errors handler as a KindRender error and the frame is dropped.
func (i *Indicator) Draw(canvas graphics.Canvas) {
	defer errors.RecoverRender("progress.Draw")
	i.engine.Render(canvas, i.oval)
}

// SetDrawingStatusListener replaces the completion callback.
func (i *Indicator) SetDrawingStatusListener(fn func()) {
	i.listener = fn
}

// SetInvalidator replaces the redraw callback.
func (i *Indicator) SetInvalidator(fn func()) {
	i.invalidate = fn
}

// Config returns the active configuration.
func (i *Indicator) Config() Config {
	return i.cfg
}

// Bounds returns the oval the ring is drawn in.
func (i *Indicator) Bounds() graphics.Rect {
	return i.oval
}

// Engine exposes the underlying engine.
func (i *Indicator) Engine() *Engine {
	return i.engine
}

// IsAnimating reports whether a run is in progress.
func (i *Indicator) IsAnimating() bool {
	return i.engine.IsAnimating()
}

func (i *Indicator) stopTicker() {
	if i.ticker != nil {
		i.ticker.Stop()
		i.ticker = nil
	}
}

func (i *Indicator) requestRedraw() {
	if i.invalidate != nil {
		i.invalidate()
	}
}

func (i *Indicator) drawFinished() {
	i.logger.Printf("progress: drawing finished")
	if i.listener != nil {
		i.listener()
	}
}
