package contour_test

import (
	"fmt"

	"github.com/snakelips/contour"
)

func ExampleTruncate() {
	line, err := contour.Line{P0: contour.Pt(0, 0), P1: contour.Pt(10, 0)}.Sample(11)
	if err != nil {
		panic(err)
	}
	cut, last, err := contour.Truncate(line, contour.Pt(0, 0), 3.5, contour.TruncateOptions{})
	if err != nil {
		panic(err)
	}
	fmt.Println(cut.Size(), cut.End(), cut.Length(), last)
	// Output: 5 (3.5, 0) 3.5 3
}

func ExampleReshapeLip() {
	lip, err := contour.CurveFromPoints(
		contour.Pt(0, 2),
		contour.Pt(0, 1),
		contour.Pt(0.3, -0.2),
		contour.Pt(2, 0),
	)
	if err != nil {
		panic(err)
	}
	smooth, err := contour.ReshapeLip(lip, contour.LipOptions{CircleSamples: 8})
	if err != nil {
		panic(err)
	}
	for _, pt := range smooth.All() {
		fmt.Printf("(%.3f, %.3f)\n", pt.X, pt.Y)
	}
	// Output:
	// (0.000, 2.000)
	// (0.000, 1.000)
	// (0.099, 0.566)
	// (0.777, 0.025)
	// (1.000, 0.000)
	// (2.000, 0.000)
}
