package contour

import (
	"fmt"
	"math"
	"sort"
)

// truncateAccuracy is the relative error allowed between the length of a
// truncated curve and its target length.
const truncateAccuracy = 1e-9

// TruncateOptions configures [Truncate].
type TruncateOptions struct {
	// Reverse walks the curve from the start point towards its first point
	// instead of towards its last point.
	Reverse bool
	// Tolerance is the largest distance allowed between the requested start
	// point and the curve point it is matched to. Zero requires an exact
	// match.
	Tolerance float64
}

// Truncate walks c from start, accumulating arc length, and returns the
// longest run of points whose arc length stays below target, followed by a
// point interpolated on the next segment so that the result is exactly
// target long.
//
// The returned curve has the same orientation as c: with opts.Reverse it
// ends at start, otherwise it begins there. The returned index is the
// position in c of the last point that the truncated curve shares with c,
// i.e. the point preceding the interpolated one.
//
// Truncate fails with a *[LookupError] if start isn't on c, and with a
// *[LengthError] unless 0 < target < the arc length remaining after start.
// c is never modified.
func Truncate(c Curve, start Point, target float64, opts TruncateOptions) (Curve, int, error) {
	oriented := c
	if opts.Reverse {
		oriented = c.Reversed()
	}
	idx, err := oriented.NearestIndex(start, opts.Tolerance)
	if err != nil {
		return Curve{}, -1, fmt.Errorf("truncate: %w", err)
	}

	rest := Curve{xs: oriented.xs[idx:], ys: oriented.ys[idx:]}
	cum := rest.CumulativeLengths()
	total := cum[len(cum)-1]
	if !(target > 0) || !(target < total) {
		return Curve{}, -1, fmt.Errorf("truncate: %w", &LengthError{Target: target, Available: total})
	}

	// cum[0] == 0 < target <= cum[len(cum)-1], so 0 <= k < len(cum)-1.
	k := sort.SearchFloat64s(cum, target) - 1
	p1, p2 := rest.at(k), rest.at(k+1)
	extra := target - cum[k]
	next := cum[k+1] - cum[k]
	pi := p1.Lerp(p2, extra/next)

	out := Curve{
		xs: make([]float64, k+2),
		ys: make([]float64, k+2),
	}
	copy(out.xs, rest.xs[:k+1])
	copy(out.ys, rest.ys[:k+1])
	out.xs[k+1], out.ys[k+1] = pi.X, pi.Y

	if l := out.Length(); math.Abs(l-target) > truncateAccuracy*target {
		return Curve{}, -1, fmt.Errorf("truncate: interpolated length %g misses target %g: %w", l, target, ErrDegenerate)
	}

	last := idx + k
	if opts.Reverse {
		out.ReverseInPlace()
		last = c.Size() - 1 - last
	}
	return out, last, nil
}
