package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/colorring/pkg/animation"
	ringtest "github.com/go-drift/colorring/pkg/testing"
)

func TestLinearDriver_Advance(t *testing.T) {
	d := animation.LinearDriver{From: 90, To: 360, Duration: time.Second}

	tests := []struct {
		elapsed  time.Duration
		want     float64
		wantDone bool
	}{
		{-time.Millisecond, 90, false},
		{0, 90, false},
		{500 * time.Millisecond, 225, false},
		{time.Second, 360, true},
		{2 * time.Second, 360, true},
	}
	for _, tt := range tests {
		got, done := d.Advance(tt.elapsed)
		if got != tt.want || done != tt.wantDone {
			t.Errorf("Advance(%v) = (%v, %v), want (%v, %v)", tt.elapsed, got, done, tt.want, tt.wantDone)
		}
	}
}

func TestLinearDriver_ZeroDuration(t *testing.T) {
	d := animation.LinearDriver{From: 0, To: 360}
	if got, done := d.Advance(0); got != 360 || !done {
		t.Errorf("Advance(0) = (%v, %v), want (360, true)", got, done)
	}
}

func TestLinearDriver_Monotonic(t *testing.T) {
	d := animation.LinearDriver{From: 0, To: 360, Duration: 777 * time.Millisecond}
	prev := -1.0
	for ms := 0; ms <= 800; ms += 13 {
		v, _ := d.Advance(time.Duration(ms) * time.Millisecond)
		if v < prev {
			t.Fatalf("value decreased at %dms: %v < %v", ms, v, prev)
		}
		prev = v
	}
}

func TestScheduler_StepDeliversElapsed(t *testing.T) {
	clk := ringtest.NewFakeClock()
	s := animation.NewScheduler(clk)

	var got []time.Duration
	ticker := s.CreateTicker(func(elapsed time.Duration) {
		got = append(got, elapsed)
	})
	ticker.Start()
	if !s.HasActiveTickers() {
		t.Fatal("expected active ticker after Start")
	}

	clk.Pump(s, 2, 100*time.Millisecond)

	if len(got) != 2 || got[0] != 100*time.Millisecond || got[1] != 200*time.Millisecond {
		t.Errorf("elapsed = %v, want [100ms 200ms]", got)
	}
	if ticker.Elapsed() != 200*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 200ms", ticker.Elapsed())
	}

	ticker.Stop()
	clk.Pump(s, 1, 100*time.Millisecond)
	if len(got) != 2 {
		t.Error("stopped ticker should not be called")
	}
	if s.HasActiveTickers() || ticker.IsActive() || ticker.Elapsed() != 0 {
		t.Error("expected no active tickers after Stop")
	}
}

func TestScheduler_CallbackMayStopTicker(t *testing.T) {
	clk := ringtest.NewFakeClock()
	s := animation.NewScheduler(clk)

	calls := 0
	var ticker *animation.Ticker
	ticker = s.CreateTicker(func(time.Duration) {
		calls++
		ticker.Stop()
	})
	ticker.Start()

	clk.Pump(s, 3, 16*time.Millisecond)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestDefaultScheduler_UsesPackageClock(t *testing.T) {
	clk := ringtest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	var elapsed time.Duration
	ticker := animation.NewTicker(func(e time.Duration) { elapsed = e })
	ticker.Start()
	defer ticker.Stop()

	clk.Advance(250 * time.Millisecond)
	animation.StepTickers()

	if elapsed != 250*time.Millisecond {
		t.Errorf("elapsed = %v, want 250ms", elapsed)
	}
	if !animation.HasActiveTickers() {
		t.Error("expected default scheduler to report an active ticker")
	}
}
