// Package axis maps between unbounded domain values and the pixel
// coordinates of one plot axis, and decides which gridlines to draw.
//
// # Zones
//
// An axis is split into five zones, symmetric about zero:
//
//	negative hyperbolic | negative log | linear | positive log | positive hyperbolic
//
// Values with |v| <= 10^MinLog are mapped linearly. Between 10^MinLog and
// 10^MaxLog the coordinate is affine in log10|v|. Beyond 10^MaxLog the
// coordinate approaches an outer bound as bound - k/|v|, so the whole real
// line including ±Inf fits into a finite span. The mapping is continuous
// with a continuous first derivative at every breakpoint.
//
// # Immutability
//
// An [Axis] is a value. Gesture operations (WithViewCoords, ZoomAt, MoveBy,
// WithMinLogDiff, ...) return a new Axis, or the receiver unchanged when the
// requested state would be invalid. Use [Axis.Equal] to skip redundant
// redraws.
//
// # Quick Start
//
//	x, _ := axis.Default(800)
//	c, ok := x.ValueToViewCoord(42)   // pixel for a value
//	v := x.CoordToValue(100)          // value under a pixel
//	x = x.ZoomAt(400, 2)              // zoom in around the center
//	for _, r := range x.VisibleRulers() {
//	    _ = r.ViewCoord                // draw a gridline, brightness from r.Weight
//	}
package axis
