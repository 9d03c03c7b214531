package animation

import (
	"sync"
	"time"
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by their [Scheduler], which the host steps once per frame.
type Ticker struct {
	callback  func(elapsed time.Duration)
	scheduler *Scheduler
	isActive  bool
	start     time.Time
}

// TickerProvider creates tickers.
type TickerProvider interface {
	CreateTicker(callback func(time.Duration)) *Ticker
}

// Scheduler owns a set of tickers and advances them together.
type Scheduler struct {
	mu     sync.Mutex
	active map[*Ticker]struct{}
	clock  Clock
}

// NewScheduler returns a scheduler reading time from c.
// A nil clock uses the package clock (see SetClock).
func NewScheduler(c Clock) *Scheduler {
	return &Scheduler{
		active: make(map[*Ticker]struct{}),
		clock:  c,
	}
}

var defaultScheduler = NewScheduler(nil)

// DefaultScheduler returns the scheduler stepped by StepTickers.
func DefaultScheduler() *Scheduler {
	return defaultScheduler
}

func (s *Scheduler) now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// CreateTicker implements TickerProvider.
func (s *Scheduler) CreateTicker(callback func(time.Duration)) *Ticker {
	return &Ticker{callback: callback, scheduler: s}
}

// Step advances all active tickers.
// This should be called once per frame.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(s.active))
	for ticker := range s.active {
		tickers = append(tickers, ticker)
	}
	s.mu.Unlock()

	now := s.now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active) > 0
}

// NewTicker creates a ticker on the default scheduler.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return defaultScheduler.CreateTicker(callback)
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.scheduler.now()
	t.scheduler.mu.Lock()
	t.scheduler.active[t] = struct{}{}
	t.scheduler.mu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.scheduler.mu.Lock()
	delete(t.scheduler.active, t)
	t.scheduler.mu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.scheduler.now().Sub(t.start)
}

// StepTickers advances all tickers on the default scheduler.
func StepTickers() {
	defaultScheduler.Step()
}

// HasActiveTickers returns true if the default scheduler has active tickers.
func HasActiveTickers() bool {
	return defaultScheduler.HasActiveTickers()
}
