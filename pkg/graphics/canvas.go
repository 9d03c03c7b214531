package graphics

// Canvas records or renders drawing commands.
//
// Angles are in degrees. Zero points to 3 o'clock and positive sweeps run
// clockwise in the y-down coordinate space.
type Canvas interface {
	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawArc draws the arc of the oval inscribed in oval, starting at
	// startAngle and sweeping sweepAngle degrees. When useCenter is true the
	// arc is closed through the oval's center.
	DrawArc(oval Rect, startAngle, sweepAngle float64, useCenter bool, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
