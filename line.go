package contour

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Sample returns num evenly spaced points from P0 to P1, both included.
func (l Line) Sample(num int) (Curve, error) {
	if num < 2 {
		return Curve{}, fmt.Errorf("line needs at least 2 samples, got %d: %w", num, ErrOutOfRange)
	}
	c := Curve{
		xs: floats.Span(make([]float64, num), l.P0.X, l.P1.X),
		ys: floats.Span(make([]float64, num), l.P0.Y, l.P1.Y),
	}
	// Pin the end point so that it doesn't pick up rounding error.
	c.xs[num-1], c.ys[num-1] = l.P1.X, l.P1.Y
	return c, nil
}
