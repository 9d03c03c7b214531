// Package testing provides helpers for deterministic ring tests: a
// controllable clock and a canvas that records draw calls as plain values.
//
//	clk := ringtest.NewFakeClock()
//	prev := animation.SetClock(clk)
//	defer animation.SetClock(prev)
//
//	canvas := ringtest.NewRecordingCanvas(200, 200)
//	indicator.Draw(canvas)
//	arcs := canvas.VisibleArcs()
package testing
