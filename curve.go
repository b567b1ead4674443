package contour

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Open stands in for an omitted bound in [Curve.View], like a missing
// index in a Python slice.
const Open = math.MinInt

// Curve is an ordered, non-empty sequence of points, stored as two
// coordinate slices of equal length. Point order is the traversal
// direction.
//
// The zero Curve holds no points and is only good as an empty operand of
// [Curve.Append]. [Curve.Start] and [Curve.End] panic on it. Constructors
// and every method returning a Curve with a nil error produce at least one
// point.
//
// Curves behave as values: every method except [Curve.RotateInPlace] and
// [Curve.ReverseInPlace] returns a new curve with its own storage. Assigning
// a Curve copies the header but shares storage, so the in-place methods must
// only be used on a curve that isn't referenced elsewhere. Use [Curve.Clone]
// to obtain an independent copy.
type Curve struct {
	xs []float64
	ys []float64
}

// NewCurve returns a curve with the given coordinates. The slices are copied.
func NewCurve(xs, ys []float64) (Curve, error) {
	if len(xs) != len(ys) {
		return Curve{}, fmt.Errorf("coordinate count mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Curve{}, ErrEmpty
	}
	return Curve{xs: slices.Clone(xs), ys: slices.Clone(ys)}, nil
}

// CurveFromPoints returns a curve through pts, in order.
func CurveFromPoints(pts ...Point) (Curve, error) {
	if len(pts) == 0 {
		return Curve{}, ErrEmpty
	}
	c := Curve{
		xs: make([]float64, len(pts)),
		ys: make([]float64, len(pts)),
	}
	for i, pt := range pts {
		c.xs[i], c.ys[i] = pt.X, pt.Y
	}
	return c, nil
}

func (c Curve) String() string {
	if c.Size() == 0 {
		return "Curve{}"
	}
	return fmt.Sprintf("Curve{start: %s, end: %s, size: %d, length: %g}", c.Start(), c.End(), c.Size(), c.Length())
}

// Size returns the number of points.
func (c Curve) Size() int { return len(c.xs) }

// Start returns the first point.
func (c Curve) Start() Point { return Point{c.xs[0], c.ys[0]} }

// End returns the last point.
func (c Curve) End() Point {
	n := len(c.xs) - 1
	return Point{c.xs[n], c.ys[n]}
}

// Length returns the sum of the distances between consecutive points.
func (c Curve) Length() float64 {
	var l float64
	for i := 1; i < len(c.xs); i++ {
		l += math.Hypot(c.xs[i]-c.xs[i-1], c.ys[i]-c.ys[i-1])
	}
	return l
}

// Point returns the point at index i.
func (c Curve) Point(i int) (Point, error) {
	if i < 0 || i >= len(c.xs) {
		return Point{}, &IndexError{Index: i, Size: len(c.xs)}
	}
	return c.at(i), nil
}

func (c Curve) at(i int) Point { return Point{c.xs[i], c.ys[i]} }

// All returns an iterator over the indices and points of the curve.
func (c Curve) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := range c.xs {
			if !yield(i, c.at(i)) {
				return
			}
		}
	}
}

// Points returns a copy of the curve's points.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c.xs))
	for i := range pts {
		pts[i] = c.at(i)
	}
	return pts
}

// Coords returns copies of the x and y coordinates.
func (c Curve) Coords() (xs, ys []float64) {
	return slices.Clone(c.xs), slices.Clone(c.ys)
}

// Clone returns a curve with its own copy of the coordinates.
func (c Curve) Clone() Curve {
	return Curve{xs: slices.Clone(c.xs), ys: slices.Clone(c.ys)}
}

// FindIndex returns the first index whose coordinates are bitwise equal to
// pt's. Any arithmetic on the coordinates will usually defeat this; prefer
// [Curve.NearestIndex].
func (c Curve) FindIndex(pt Point) (int, bool) {
	for i := range c.xs {
		if c.xs[i] == pt.X && c.ys[i] == pt.Y {
			return i, true
		}
	}
	return -1, false
}

// NearestIndex returns the index of the point closest to pt. Ties resolve to
// the lowest index. If the closest point is farther than tolerance away, a
// *[LookupError] is returned. A tolerance of zero demands an exact match.
func (c Curve) NearestIndex(pt Point, tolerance float64) (int, error) {
	best := -1
	bestD := math.Inf(1)
	for i := range c.xs {
		if d := c.at(i).DistanceSquared(pt); d < bestD {
			best, bestD = i, d
		}
	}
	nearest := math.Sqrt(bestD)
	if best == -1 || nearest > tolerance {
		return -1, &LookupError{Point: pt, Nearest: nearest, Tolerance: tolerance}
	}
	return best, nil
}

// Mask returns the points whose entry in keep is true, in their original
// order.
func (c Curve) Mask(keep []bool) (Curve, error) {
	if len(keep) != len(c.xs) {
		return Curve{}, fmt.Errorf("mask has %d entries for %d points: %w", len(keep), len(c.xs), ErrOutOfRange)
	}
	return c.Filter(func(i int, _ Point) bool { return keep[i] })
}

// Filter returns the points for which keep returns true, in their original
// order.
func (c Curve) Filter(keep func(i int, pt Point) bool) (Curve, error) {
	var out Curve
	for i, pt := range c.All() {
		if keep(i, pt) {
			out.xs = append(out.xs, pt.X)
			out.ys = append(out.ys, pt.Y)
		}
	}
	if out.Size() == 0 {
		return Curve{}, ErrEmpty
	}
	return out, nil
}

// View returns the points in the half-open range [start, end) stepped by
// stride, following Python slice rules: negative bounds count from the end,
// out-of-range bounds are clipped, a negative stride walks backwards, and
// [Open] selects the default bound for the stride's direction.
func (c Curve) View(start, end, stride int) (Curve, error) {
	if stride == 0 {
		return Curve{}, fmt.Errorf("zero stride: %w", ErrOutOfRange)
	}
	n := len(c.xs)
	lo, hi := sliceBounds(n, start, end, stride)
	var out Curve
	if stride > 0 {
		for i := lo; i < hi; i += stride {
			out.xs = append(out.xs, c.xs[i])
			out.ys = append(out.ys, c.ys[i])
		}
	} else {
		for i := lo; i > hi; i += stride {
			out.xs = append(out.xs, c.xs[i])
			out.ys = append(out.ys, c.ys[i])
		}
	}
	if out.Size() == 0 {
		return Curve{}, ErrEmpty
	}
	return out, nil
}

// sliceBounds resolves slice bounds the way Python's slice.indices does.
func sliceBounds(n, start, end, stride int) (int, int) {
	resolve := func(i, def int) int {
		if i == Open {
			return def
		}
		if i < 0 {
			i += n
			if i < 0 {
				if stride < 0 {
					return -1
				}
				return 0
			}
		} else if i >= n {
			if stride < 0 {
				return n - 1
			}
			return n
		}
		return i
	}
	if stride > 0 {
		return resolve(start, 0), resolve(end, n)
	}
	return resolve(start, n-1), resolve(end, -1)
}

// Head returns the points before index end.
func (c Curve) Head(end int) (Curve, error) { return c.View(Open, end, 1) }

// Tail returns the points from index start on.
func (c Curve) Tail(start int) (Curve, error) { return c.View(start, Open, 1) }

// Append returns a curve made of c's points followed by the points of each
// of others. Shared boundary points are kept twice.
func (c Curve) Append(others ...Curve) Curve {
	n := len(c.xs)
	for _, o := range others {
		n += len(o.xs)
	}
	out := Curve{
		xs: make([]float64, 0, n),
		ys: make([]float64, 0, n),
	}
	out.xs = append(out.xs, c.xs...)
	out.ys = append(out.ys, c.ys...)
	for _, o := range others {
		out.xs = append(out.xs, o.xs...)
		out.ys = append(out.ys, o.ys...)
	}
	return out
}

// segmentLengths returns the distances between consecutive points, with a
// leading zero so that the result has one entry per point.
func (c Curve) segmentLengths() []float64 {
	ls := make([]float64, len(c.xs))
	for i := 1; i < len(c.xs); i++ {
		ls[i] = math.Hypot(c.xs[i]-c.xs[i-1], c.ys[i]-c.ys[i-1])
	}
	return ls
}

// CumulativeLengths returns, for every point, the arc length from the first
// point to it. The first entry is always zero.
func (c Curve) CumulativeLengths() []float64 {
	ls := c.segmentLengths()
	return floats.CumSum(ls, ls)
}

// BoundingBox returns the smallest rectangle enclosing all points. It is
// the zero Rect for the zero Curve.
func (c Curve) BoundingBox() Rect {
	if len(c.xs) == 0 {
		return Rect{}
	}
	start := c.Start()
	r := Rect{start.X, start.Y, start.X, start.Y}
	for _, pt := range c.All() {
		r = r.UnionPoint(pt)
	}
	return r
}

// Transform returns the curve with aff applied to every point.
func (c Curve) Transform(aff Affine) Curve {
	out := c.Clone()
	out.transformInPlace(aff)
	return out
}

func (c *Curve) transformInPlace(aff Affine) {
	for i := range c.xs {
		pt := c.at(i).Transform(aff)
		c.xs[i], c.ys[i] = pt.X, pt.Y
	}
}

// Rotated returns the curve rotated by theta radians about center.
func (c Curve) Rotated(center Point, theta float64) Curve {
	return c.Transform(RotateAbout(theta, center))
}

// RotateInPlace rotates every point by theta radians about center,
// overwriting the curve's storage. Points previously obtained from the curve
// are not updated.
func (c *Curve) RotateInPlace(center Point, theta float64) {
	c.transformInPlace(RotateAbout(theta, center))
}

// Reversed returns the curve with its point order reversed.
func (c Curve) Reversed() Curve {
	out := c.Clone()
	out.ReverseInPlace()
	return out
}

// ReverseInPlace reverses the point order, overwriting the curve's storage.
// Start and End swap accordingly.
func (c *Curve) ReverseInPlace() {
	slices.Reverse(c.xs)
	slices.Reverse(c.ys)
}

// maxRegularizeSamples bounds the number of points [Curve.Regularize] may
// produce.
const maxRegularizeSamples = math.MaxInt32

// Regularize treats the curve as a closed contour and resamples it with
// points evenly spaced in arc length, starting at the first point. The
// spacing is the largest value not exceeding ds that divides the perimeter
// into a whole number of segments.
func (c Curve) Regularize(ds float64) (Curve, error) {
	if !(ds > 0) || math.IsInf(ds, 0) {
		return Curve{}, fmt.Errorf("spacing %g: %w", ds, ErrOutOfRange)
	}
	closed := c.Append(Curve{xs: c.xs[:1], ys: c.ys[:1]})
	cum := closed.CumulativeLengths()
	perimeter := cum[len(cum)-1]
	if perimeter == 0 {
		return Curve{}, &DegenerateError{Op: "regularize", Reason: "contour has zero perimeter"}
	}
	count := math.Ceil(perimeter / ds)
	if !(count <= maxRegularizeSamples) {
		return Curve{}, fmt.Errorf("spacing %g over perimeter %g needs %g points: %w", ds, perimeter, count, ErrOutOfRange)
	}
	n := int(count)
	h := perimeter / float64(n)

	out := Curve{
		xs: make([]float64, n),
		ys: make([]float64, n),
	}
	for k := range n {
		s := float64(k) * h
		// First index whose cumulative length reaches s.
		j := max(sort.SearchFloat64s(cum, s), 1)
		p0, p1 := closed.at(j-1), closed.at(j)
		var t float64
		if seg := cum[j] - cum[j-1]; seg > 0 {
			t = (s - cum[j-1]) / seg
		}
		pt := p0.Lerp(p1, t)
		out.xs[k], out.ys[k] = pt.X, pt.Y
	}
	return out, nil
}
