package graphics

import "math"

// PathOp identifies the type of a path command.
type PathOp int

const (
	PathOpMoveTo PathOp = iota
	PathOpLineTo
	PathOpCubicTo
	PathOpClose
)

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path built from lines and cubic curves.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// maxArcSegment is the largest sweep approximated by a single cubic.
const maxArcSegment = math.Pi / 2

// AddArc appends the arc of the oval inscribed in oval, in degrees.
// When moveTo is true the arc starts a new subpath, otherwise a line joins
// the current point to the arc start.
func (p *Path) AddArc(oval Rect, startAngle, sweepAngle float64, moveTo bool) {
	center := oval.Center()
	rx := oval.Width() / 2
	ry := oval.Height() / 2

	start := startAngle * math.Pi / 180
	sweep := sweepAngle * math.Pi / 180

	startX := center.X + rx*math.Cos(start)
	startY := center.Y + ry*math.Sin(start)
	if moveTo {
		p.MoveTo(startX, startY)
	} else {
		p.LineTo(startX, startY)
	}

	remaining := sweep
	current := start
	for math.Abs(remaining) > epsilon {
		step := remaining
		if math.Abs(step) > maxArcSegment {
			step = math.Copysign(maxArcSegment, step)
		}

		// k = (4/3) * tan(angle/4) places the control points on the tangents.
		k := (4.0 / 3.0) * math.Tan(step/4)
		end := current + step

		currX := center.X + rx*math.Cos(current)
		currY := center.Y + ry*math.Sin(current)
		endX := center.X + rx*math.Cos(end)
		endY := center.Y + ry*math.Sin(end)

		cp1X := currX - k*rx*math.Sin(current)
		cp1Y := currY + k*ry*math.Cos(current)
		cp2X := endX + k*rx*math.Sin(end)
		cp2Y := endY - k*ry*math.Cos(end)

		p.CubicTo(cp1X, cp1Y, cp2X, cp2Y, endX, endY)

		current = end
		remaining -= step
	}
}

// ArcPoint returns the point at angle degrees on the oval inscribed in oval.
func ArcPoint(oval Rect, angle float64) Offset {
	center := oval.Center()
	rad := angle * math.Pi / 180
	return Offset{
		X: center.X + oval.Width()/2*math.Cos(rad),
		Y: center.Y + oval.Height()/2*math.Sin(rad),
	}
}
