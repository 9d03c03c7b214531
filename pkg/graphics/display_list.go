package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Arcs returns the recorded arc operations in draw order.
func (d *DisplayList) Arcs() []Arc {
	var arcs []Arc
	for _, op := range d.ops {
		if a, ok := op.(opArc); ok {
			arcs = append(arcs, a.Arc)
		}
	}
	return arcs
}

// Arc describes a single DrawArc call.
type Arc struct {
	Oval       Rect
	StartAngle float64
	SweepAngle float64
	UseCenter  bool
	Paint      Paint
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = nil
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	list := &DisplayList{ops: r.ops, size: r.size}
	r.ops = nil
	return list
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingCanvas) DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, paint Paint) {
	c.recorder.append(opArc{Arc{
		Oval:       oval,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		UseCenter:  useCenter,
		Paint:      paint,
	}})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

type opClear struct {
	color Color
}

func (op opClear) execute(canvas Canvas) {
	canvas.Clear(op.color)
}

type opArc struct {
	Arc
}

func (op opArc) execute(canvas Canvas) {
	canvas.DrawArc(op.Oval, op.StartAngle, op.SweepAngle, op.UseCenter, op.Paint)
}
