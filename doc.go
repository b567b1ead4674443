// Package contour edits digitized 2D cross-section boundaries. It was written
// to prepare snake cross-sections for immersed-boundary flow simulations,
// where small folded regions of the boundary ("lips") are replaced by smooth
// geometry while the rest of the contour stays untouched.
//
// # Curves
//
// [Curve] is an ordered polyline of [Point] values. Point order is the
// traversal direction and is significant: a reversed curve is a different
// curve. Curves behave as values. Masking ([Curve.Mask], [Curve.Filter]),
// slicing ([Curve.View]), concatenation ([Curve.Append]) and transformation
// ([Curve.Transform], [Curve.Rotated], [Curve.Reversed]) all return new
// curves. The only mutating operations are [Curve.RotateInPlace] and
// [Curve.ReverseInPlace].
//
// Sampled shapes are produced by [Line.Sample], which includes both end
// points, and [Circle.Sample], which samples the full turn and drops the
// closing duplicate.
//
// # Arc-length truncation
//
// [Truncate] walks a curve from a given point and cuts it at an exact arc
// length, interpolating the final point. It reports the index of the last
// original point it kept, which callers use to splice edited sections back
// into the full contour.
//
// # Lip reshaping
//
// [ReshapeLip] replaces a lip by an entry segment, a circular arc and a
// horizontal exit segment. The circle is found in closed form: it is tangent
// to the entry line at the lip's second point and to the horizontal line
// through the lip's last point. The part of the circle that is kept is chosen
// by an [ArcSelector].
//
// # Errors
//
// Failures are reported, never clamped or retried. Errors match one of
// [ErrNotFound] (a point isn't on the curve), [ErrOutOfRange] (an index or
// arc length the curve can't provide), [ErrDegenerate] (a construction is
// undefined for its input) or [ErrEmpty], and carry details in
// [LookupError], [IndexError], [LengthError] and [DegenerateError].
package contour
