package contour

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a point can't be located on a curve.
	ErrNotFound = errors.New("point not on curve")
	// ErrOutOfRange is returned for indices, strides, and arc lengths that
	// fall outside what a curve provides.
	ErrOutOfRange = errors.New("out of range")
	// ErrDegenerate is returned when a geometric construction is undefined
	// for its input.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrEmpty is returned when an operation would produce a curve without
	// points.
	ErrEmpty = errors.New("empty curve")
)

// IndexError reports an index outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Is(target error) bool { return target == ErrOutOfRange }

// LookupError reports that no point of a curve lies within Tolerance of
// Point. Nearest is the distance to the closest point that was found.
type LookupError struct {
	Point     Point
	Nearest   float64
	Tolerance float64
}

func (e *LookupError) Error() string {
	if e.Tolerance == 0 {
		return fmt.Sprintf("no exact match for %s, nearest point at distance %g", e.Point, e.Nearest)
	}
	return fmt.Sprintf("no point within %g of %s, nearest point at distance %g", e.Tolerance, e.Point, e.Nearest)
}

func (e *LookupError) Is(target error) bool { return target == ErrNotFound }

// LengthError reports a truncation target that the curve can't provide.
type LengthError struct {
	Target    float64
	Available float64
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("target length %g not in (0, %g)", e.Target, e.Available)
}

func (e *LengthError) Is(target error) bool { return target == ErrOutOfRange }

// DegenerateError reports which step of a construction was undefined.
type DegenerateError struct {
	Op     string
	Reason string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *DegenerateError) Is(target error) bool { return target == ErrDegenerate }
