package contour

// Rect is an axis-aligned rectangle, used as the bounding box of a [Curve].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
//
// For the bounding box of a cross-section this is the chord length.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// UnionPoint grows r just enough to include pt. Starting from the
// zero-area rectangle at a curve's first point, folding UnionPoint over the
// remaining points yields the curve's bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}
