// Package section derives the lip-less variants of a cross-section: it finds
// the lips next to the front and back tips, reshapes them, and splices the
// reshaped lips back into the contour.
package section

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/sgostarter/i/l"
	"github.com/snakelips/contour"
	"github.com/snakelips/contour/internal/bodyfile"
	"github.com/snakelips/contour/internal/config"
	"gonum.org/v1/gonum/floats"
)

// Side selects one half of a cross-section.
type Side int

const (
	// Front is the half with negative x.
	Front Side = iota
	// Back is the half with positive x.
	Back
)

func (s Side) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Normalize scales c to a chord length of 1 and centers its bounding box on
// the origin.
func Normalize(c contour.Curve) (contour.Curve, error) {
	chord := c.BoundingBox().Width()
	if !(chord > 0) || math.IsInf(chord, 0) {
		return contour.Curve{}, fmt.Errorf("normalize: chord length %g: %w", chord, contour.ErrDegenerate)
	}
	xs, ys := c.Coords()
	for i := range xs {
		xs[i] /= chord
		ys[i] /= chord
	}
	scaled, err := contour.NewCurve(xs, ys)
	if err != nil {
		return contour.Curve{}, err
	}
	center := scaled.BoundingBox().Center()
	floats.AddConst(-center.X, xs)
	floats.AddConst(-center.Y, ys)
	return contour.NewCurve(xs, ys)
}

// FindTip returns the lowest point of the given half of c.
func FindTip(c contour.Curve, side Side) (contour.Point, error) {
	half, err := c.Filter(func(_ int, pt contour.Point) bool {
		if side == Front {
			return pt.X < 0
		}
		return pt.X > 0
	})
	if err != nil {
		return contour.Point{}, fmt.Errorf("%s tip: %w", side, err)
	}
	_, ys := half.Coords()
	return half.Point(floats.MinIdx(ys))
}

// Lip is a lip isolated from a contour together with its replacement.
type Lip struct {
	Side     Side
	Tip      contour.Point
	Original contour.Curve
	Reshaped contour.Curve
	// First and Last are the contour indices of the first and last contour
	// points covered by the lip. The reshaped lip replaces the contour
	// points First through Last.
	First int
	Last  int
}

// Sections holds the four variants of a cross-section.
type Sections struct {
	BothLips   contour.Curve
	NoFrontLip contour.Curve
	NoBackLip  contour.Curve
	NoLips     contour.Curve

	Front *Lip
	Back  *Lip
}

type Builder struct {
	cfg    config.Config
	logger l.Wrapper
}

func NewBuilder(cfg config.Config, logger l.Wrapper) *Builder {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Builder{
		cfg:    cfg,
		logger: logger.WithFields(l.StringField(l.ClsKey, "sectionBuilder")),
	}
}

// IsolateLip cuts the lip around the tip of the given side out of c and
// reshapes it. c should already be normalized.
func (b *Builder) IsolateLip(c contour.Curve, side Side) (*Lip, error) {
	lipCfg := b.cfg.Front
	if side == Back {
		lipCfg = b.cfg.Back
	}
	chord := c.BoundingBox().Width()

	tip, err := FindTip(c, side)
	if err != nil {
		return nil, err
	}
	opts := contour.TruncateOptions{Tolerance: b.cfg.Tolerance}

	opts.Reverse = true
	before, first, err := contour.Truncate(c, tip, lipCfg.Before*chord, opts)
	if err != nil {
		return nil, fmt.Errorf("%s lip, before tip: %w", side, err)
	}
	opts.Reverse = false
	after, last, err := contour.Truncate(c, tip, lipCfg.After*chord, opts)
	if err != nil {
		return nil, fmt.Errorf("%s lip, after tip: %w", side, err)
	}

	lip := before.Append(after)
	reshaped, err := contour.ReshapeLip(lip, contour.LipOptions{
		Reverse:       lipCfg.Reverse,
		CircleSamples: b.cfg.CircleSamples,
	})
	if err != nil {
		return nil, fmt.Errorf("%s lip: %w", side, err)
	}

	b.logger.WithFields(
		l.StringField("side", side.String()),
		l.StringField("tip", tip.String()),
		l.IntField("first", first),
		l.IntField("last", last),
		l.StringField("length", fmt.Sprintf("%g", lip.Length())),
		l.StringField("reshapedLength", fmt.Sprintf("%g", reshaped.Length())),
	).Debug("lip reshaped")

	return &Lip{
		Side:     side,
		Tip:      tip,
		Original: lip,
		Reshaped: reshaped,
		First:    first,
		Last:     last,
	}, nil
}

// Build normalizes raw and produces all variants.
func (b *Builder) Build(raw contour.Curve) (*Sections, error) {
	c, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	front, err := b.IsolateLip(c, Front)
	if err != nil {
		return nil, err
	}
	back, err := b.IsolateLip(c, Back)
	if err != nil {
		return nil, err
	}
	if front.Last >= back.First {
		return nil, fmt.Errorf("front lip [%d, %d] and back lip [%d, %d] overlap: %w",
			front.First, front.Last, back.First, back.Last, contour.ErrOutOfRange)
	}

	noFront, err := splice(c, front)
	if err != nil {
		return nil, err
	}
	noBack, err := splice(c, back)
	if err != nil {
		return nil, err
	}
	noLips, err := splice(c, front, back)
	if err != nil {
		return nil, err
	}

	b.logger.WithFields(
		l.IntField("bothLips", c.Size()),
		l.IntField("noFrontLip", noFront.Size()),
		l.IntField("noBackLip", noBack.Size()),
		l.IntField("noLips", noLips.Size()),
	).Debug("sections built")

	return &Sections{
		BothLips:   c,
		NoFrontLip: noFront,
		NoBackLip:  noBack,
		NoLips:     noLips,
		Front:      front,
		Back:       back,
	}, nil
}

// splice replaces the points of each lip in c by its reshaped version. lips
// must be ordered by index and must not overlap.
func splice(c contour.Curve, lips ...*Lip) (contour.Curve, error) {
	var parts []contour.Curve
	next := 0
	for _, lip := range lips {
		part, err := span(c, next, lip.First)
		if err != nil {
			return contour.Curve{}, err
		}
		parts = append(parts, part, lip.Reshaped)
		next = lip.Last + 1
	}
	tail, err := span(c, next, contour.Open)
	if err != nil {
		return contour.Curve{}, err
	}
	parts = append(parts, tail)
	return parts[0].Append(parts[1:]...), nil
}

// span is like View but returns an empty curve for an empty range.
func span(c contour.Curve, start, end int) (contour.Curve, error) {
	v, err := c.View(start, end, 1)
	if errors.Is(err, contour.ErrEmpty) {
		return contour.Curve{}, nil
	}
	return v, err
}

// Write stores every variant in dir under the names in outputs.
func (s *Sections) Write(dir string, outputs config.Outputs) error {
	files := []struct {
		name  string
		curve contour.Curve
	}{
		{outputs.BothLips, s.BothLips},
		{outputs.NoFrontLip, s.NoFrontLip},
		{outputs.NoBackLip, s.NoBackLip},
		{outputs.NoLips, s.NoLips},
	}
	for _, f := range files {
		if err := bodyfile.WriteSectionFile(filepath.Join(dir, f.name), f.curve); err != nil {
			return err
		}
	}
	return nil
}

// PrepareBody resamples a section at the given spacing and rotates it by
// angle degrees about the origin, yielding the body seen by the flow solver.
func PrepareBody(c contour.Curve, spacing, angle float64) (contour.Curve, error) {
	body, err := c.Regularize(spacing)
	if err != nil {
		return contour.Curve{}, err
	}
	return body.Rotated(contour.Pt(0, 0), angle*math.Pi/180), nil
}
