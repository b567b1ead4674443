package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func mustCurve(t *testing.T, pts ...Point) Curve {
	t.Helper()
	c, err := CurveFromPoints(pts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// straight returns n points evenly spaced on the x axis from 0 to n-1.
func straight(t *testing.T, n int) Curve {
	t.Helper()
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(float64(i), 0)
	}
	return mustCurve(t, pts...)
}

func pointAt(t *testing.T, c Curve, i int) Point {
	t.Helper()
	pt, err := c.Point(i)
	if err != nil {
		t.Fatal(err)
	}
	return pt
}
