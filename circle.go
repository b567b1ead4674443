package contour

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Circle is a circle given by its center and radius. Only a positive,
// finite radius can be sampled.
type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

// Sample spaces num angles evenly over [0, 2π] and drops the last one, which
// would repeat the first point. The result is an open ring of num−1 points,
// starting at angle 0 and running anti-clockwise.
func (c Circle) Sample(num int) (Curve, error) {
	if num < 2 {
		return Curve{}, fmt.Errorf("circle needs at least 2 samples, got %d: %w", num, ErrOutOfRange)
	}
	if !(c.Radius > 0) || c.IsInf() || c.IsNaN() {
		return Curve{}, &DegenerateError{Op: "sample circle", Reason: fmt.Sprintf("invalid radius %g or center %s", c.Radius, c.Center)}
	}
	theta := floats.Span(make([]float64, num), 0, 2*math.Pi)[:num-1]
	out := Curve{
		xs: make([]float64, len(theta)),
		ys: make([]float64, len(theta)),
	}
	for i, th := range theta {
		sin, cos := math.Sincos(th)
		out.xs[i] = c.Center.X + c.Radius*cos
		out.ys[i] = c.Center.Y + c.Radius*sin
	}
	return out, nil
}
