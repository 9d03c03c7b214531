// Package segment partitions the progress ring into equally sized colored arcs.
//
// A [Model] is built once from an ordered list of one to four colors and a
// start angle. Segment i begins at StartAngle + i*BreakpointAngle on the ring
// and is revealed while the progress angle moves from i*BreakpointAngle to
// (i+1)*BreakpointAngle.
package segment

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/colorring/pkg/errors"
	"github.com/go-drift/colorring/pkg/graphics"
)

const (
	// MinCount is the smallest number of colors a ring accepts.
	MinCount = 1
	// MaxCount is the largest number of colors a ring accepts.
	MaxCount = 4

	// FullCircle is the sweep of the whole ring in degrees.
	FullCircle = 360.0
)

// ErrInvalidSegmentCount is matched by errors returned from Build when the
// color list is empty (but not nil) or holds more than MaxCount entries.
var ErrInvalidSegmentCount = stderrors.New("invalid segment count")

// InvalidSegmentCountError reports the rejected color count.
type InvalidSegmentCountError struct {
	Count int
}

func (e *InvalidSegmentCountError) Error() string {
	return fmt.Sprintf("%v: got %d colors, want %d to %d", ErrInvalidSegmentCount, e.Count, MinCount, MaxCount)
}

// Is lets errors.Is match ErrInvalidSegmentCount.
func (e *InvalidSegmentCountError) Is(target error) bool {
	return target == ErrInvalidSegmentCount
}

// Segment is one colored arc of the ring.
type Segment struct {
	// Color paints the arc.
	Color graphics.Color
	// Order is the position of the color in the requested list.
	Order int
	// StartAngle is where the arc begins on the ring, in degrees.
	StartAngle float64
	// EndThreshold is the progress angle at which the arc is fully drawn.
	EndThreshold float64
	// RevealLimit is the progress angle at which the arc starts to appear.
	RevealLimit float64
}

// Sweep returns how many degrees of this segment are visible at the given
// progress angle. The value is not clamped.
func (s Segment) Sweep(progress float64) float64 {
	return progress - s.RevealLimit
}

// Model is the immutable, ordered list of segments for one configuration.
type Model struct {
	segments        []Segment
	breakpointAngle float64
	startAngle      float64
}

// Build derives the segments for colors starting at startAngle.
//
// A nil list yields one segment in [graphics.DefaultPrimaryColor]; a
// non-nil list must hold between MinCount and MaxCount entries.
// Entries equal to [graphics.ColorNone] are skipped, but the breakpoint angle
// is still computed from len(colors), so a skipped entry leaves its share of
// the ring unpainted.
func Build(colors []graphics.Color, startAngle float64) (*Model, error) {
	if colors == nil {
		colors = []graphics.Color{graphics.DefaultPrimaryColor}
	}
	if len(colors) < MinCount || len(colors) > MaxCount {
		return nil, &errors.Error{
			Op:   "segment.Build",
			Kind: errors.KindConfig,
			Err:  &InvalidSegmentCountError{Count: len(colors)},
		}
	}

	breakpoint := FullCircle / float64(len(colors))
	m := &Model{
		segments:        make([]Segment, 0, len(colors)),
		breakpointAngle: breakpoint,
		startAngle:      startAngle,
	}
	for i, c := range colors {
		if c.IsNone() {
			continue
		}
		m.segments = append(m.segments, newSegment(c, i, startAngle, breakpoint))
	}

	if len(m.segments) == 0 {
		return Build(nil, startAngle)
	}
	return m, nil
}

func newSegment(c graphics.Color, order int, startAngle, breakpoint float64) Segment {
	return Segment{
		Color:        c,
		Order:        order,
		StartAngle:   startAngle + float64(order)*breakpoint,
		EndThreshold: float64(order+1) * breakpoint,
		RevealLimit:  float64(order) * breakpoint,
	}
}

// Len returns the number of segments.
func (m *Model) Len() int {
	return len(m.segments)
}

// At returns the segment at index i.
func (m *Model) At(i int) Segment {
	return m.segments[i]
}

// Last returns the final segment.
func (m *Model) Last() Segment {
	return m.segments[len(m.segments)-1]
}

// Segments returns a copy of the segments in order.
func (m *Model) Segments() []Segment {
	return append([]Segment(nil), m.segments...)
}

// BreakpointAngle returns the angular width of one segment in degrees.
func (m *Model) BreakpointAngle() float64 {
	return m.breakpointAngle
}

// StartAngle returns the global start angle in degrees.
func (m *Model) StartAngle() float64 {
	return m.startAngle
}

// Colors returns the segment colors in order.
func (m *Model) Colors() []graphics.Color {
	out := make([]graphics.Color, len(m.segments))
	for i, s := range m.segments {
		out[i] = s.Color
	}
	return out
}

// WithColor returns a copy of the model with every segment painted in c.
func (m *Model) WithColor(c graphics.Color) *Model {
	out := &Model{
		segments:        m.Segments(),
		breakpointAngle: m.breakpointAngle,
		startAngle:      m.startAngle,
	}
	for i := range out.segments {
		out.segments[i].Color = c
	}
	return out
}
