package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/colorring/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String renders the op as "op(key=value, ...)" with sorted keys.
func (d DisplayOp) String() string {
	keys := sortedKeys(d.Params)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, d.Params[k])
	}
	return d.Op + "(" + strings.Join(parts, ", ") + ")"
}

// RecordingCanvas implements graphics.Canvas and keeps every call, both as
// raw arcs and as serialized DisplayOps.
type RecordingCanvas struct {
	ops  []DisplayOp
	arcs []graphics.Arc
	size graphics.Size
}

// NewRecordingCanvas returns an empty canvas of the given size.
func NewRecordingCanvas(width, height float64) *RecordingCanvas {
	return &RecordingCanvas{size: graphics.Size{Width: width, Height: height}}
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", color.String()),
	})
}

func (c *RecordingCanvas) DrawArc(oval graphics.Rect, startAngle, sweepAngle float64, useCenter bool, paint graphics.Paint) {
	c.arcs = append(c.arcs, graphics.Arc{
		Oval:       oval,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		UseCenter:  useCenter,
		Paint:      paint,
	})
	c.ops = append(c.ops, DisplayOp{
		Op: "drawArc",
		Params: sortedMap(
			"oval", serializeRect(oval),
			"start", round2(startAngle),
			"sweep", round2(sweepAngle),
			"color", paint.Color.String(),
			"stroke", round2(paint.StrokeWidth),
		),
	})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// Ops returns the serialized operations in call order.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return append([]DisplayOp(nil), c.ops...)
}

// Arcs returns every recorded arc, including zero-sweep ones.
func (c *RecordingCanvas) Arcs() []graphics.Arc {
	return append([]graphics.Arc(nil), c.arcs...)
}

// VisibleArcs returns the recorded arcs with a non-zero sweep.
func (c *RecordingCanvas) VisibleArcs() []graphics.Arc {
	var out []graphics.Arc
	for _, a := range c.arcs {
		if math.Abs(a.SweepAngle) > 1e-9 {
			out = append(out, a)
		}
	}
	return out
}

// Reset forgets every recorded call.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
	c.arcs = nil
}

// Frame returns the serialized ops joined by newlines, for frame comparisons.
func (c *RecordingCanvas) Frame() string {
	lines := make([]string, len(c.ops))
	for i, op := range c.ops {
		lines[i] = op.String()
	}
	return strings.Join(lines, "\n")
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
