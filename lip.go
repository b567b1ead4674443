package contour

import (
	"fmt"
)

// DefaultCircleSamples is the number of angles sampled for the rounding
// circle when [LipOptions.CircleSamples] is zero.
const DefaultCircleSamples = 50

// ArcSelector reports whether a sample pt of the rounding circle belongs to
// the arc that replaces a lip. center is the circle's center and start is the
// point where the entry segment touches the circle.
type ArcSelector func(center, start, pt Point) bool

// LowerLeftArc selects the samples left of the center and below the entry
// tangent point. This is the arc that joins a downward entry segment to a
// horizontal exit segment running in the positive x direction.
func LowerLeftArc(center, start, pt Point) bool {
	return pt.X < center.X && pt.Y < start.Y
}

// LipOptions configures [ReshapeLip]. The zero value processes the lip
// forwards with [LowerLeftArc] and [DefaultCircleSamples].
type LipOptions struct {
	// Reverse marks a lip that runs against the forward convention. It is
	// mirrored and reversed before reshaping and mapped back afterwards.
	Reverse bool
	// Arc selects the part of the rounding circle to keep.
	Arc ArcSelector
	// CircleSamples is the number of angles used to sample the full circle.
	CircleSamples int
}

// ReshapeLip replaces a lip with a straight entry segment, a circular arc and
// a straight horizontal exit segment.
//
// Let prev and start be the first two points of the (oriented) lip and end its
// last point. The entry segment runs from prev to start. The exit segment lies
// on the horizontal line through end. The circle is tangent to both lines,
// touching the entry line at start and the exit line directly below its
// center. Points of lip other than prev, start and end don't influence the
// result.
//
// The result starts and ends at exactly the lip's first and last points. A
// *[DegenerateError] is returned when the construction is undefined for the
// input.
func ReshapeLip(lip Curve, opts LipOptions) (Curve, error) {
	const op = "reshape lip"
	if lip.Size() < 3 {
		return Curve{}, &DegenerateError{Op: op, Reason: fmt.Sprintf("need at least 3 points, got %d", lip.Size())}
	}
	selectArc := opts.Arc
	if selectArc == nil {
		selectArc = LowerLeftArc
	}
	samples := opts.CircleSamples
	if samples == 0 {
		samples = DefaultCircleSamples
	}

	oriented := lip
	if opts.Reverse {
		oriented = lip.Reversed().Transform(FlipX)
	}
	prev, start, end := oriented.at(0), oriented.at(1), oriented.End()

	if start.Sub(prev).Cross(end.Sub(prev)) == 0 {
		return Curve{}, &DegenerateError{Op: op, Reason: "first, second and last points are collinear"}
	}
	if start.Y == prev.Y {
		return Curve{}, &DegenerateError{Op: op, Reason: "entry segment is horizontal"}
	}

	// Where the entry line meets the horizontal line through end.
	inters, ok := Line{prev, start}.CrossingPoint(Line{end, end.Translate(Vec(1, 0))})
	if !ok {
		return Curve{}, &DegenerateError{Op: op, Reason: "entry segment doesn't cross the exit line"}
	}
	// Tangent segments from a common point have equal length, so the circle
	// touches the exit line at the same distance from inters as start.
	l := start.Distance(inters)
	interm := Pt(inters.X+l, end.Y)
	if start.Y == interm.Y {
		return Curve{}, &DegenerateError{Op: op, Reason: "entry tangent point lies on the exit line"}
	}
	// The center sits above interm and is equidistant from start and interm.
	center := Pt(
		interm.X,
		((start.X-interm.X)*(start.X-interm.X)+start.Y*start.Y-interm.Y*interm.Y)/
			(2*(start.Y-interm.Y)),
	)
	if center.IsNaN() || center.IsInf() {
		return Curve{}, &DegenerateError{Op: op, Reason: fmt.Sprintf("circle center %s is not finite", center)}
	}

	ring, err := Circle{Center: center, Radius: center.Y - end.Y}.Sample(samples)
	if err != nil {
		return Curve{}, fmt.Errorf("%s: %w", op, err)
	}
	arc, err := ring.Filter(func(_ int, pt Point) bool { return selectArc(center, start, pt) })
	if err != nil {
		return Curve{}, &DegenerateError{Op: op, Reason: "arc selector kept no circle samples"}
	}

	entry, err := Line{prev, start}.Sample(2)
	if err != nil {
		return Curve{}, err
	}
	exit, err := Line{Pt(center.X, end.Y), end}.Sample(2)
	if err != nil {
		return Curve{}, err
	}
	out := entry.Append(arc, exit)

	if opts.Reverse {
		out = out.Transform(FlipX)
		out.ReverseInPlace()
	}
	return out, nil
}
