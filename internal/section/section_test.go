package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/snakelips/contour"
	"github.com/snakelips/contour/internal/bodyfile"
	"github.com/snakelips/contour/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSection returns a counter-clockwise contour with a chord of 1: a box
// whose bottom sags towards both corners, so the tips are the bottom corners.
func testSection(t *testing.T) contour.Curve {
	t.Helper()
	var pts []contour.Point
	// Left side, top to bottom, corner excluded.
	for i := range 47 {
		pts = append(pts, contour.Pt(-0.5, 0.4-0.5*float64(i)/47))
	}
	// Bottom, both corners included.
	for i := range 101 {
		x := -0.5 + float64(i)/100
		pts = append(pts, contour.Pt(x, -0.1+0.05*(1-4*x*x)))
	}
	// Right side, bottom to top.
	for i := 1; i <= 47; i++ {
		pts = append(pts, contour.Pt(0.5, -0.1+0.5*float64(i)/47))
	}
	// Top, right to left, corners excluded.
	for i := 1; i < 100; i++ {
		pts = append(pts, contour.Pt(0.5-float64(i)/100, 0.4))
	}
	c, err := contour.CurveFromPoints(pts...)
	require.Nil(t, err)
	return c
}

func TestNormalize(t *testing.T) {
	c, err := contour.CurveFromPoints(contour.Pt(2, 1), contour.Pt(6, 3), contour.Pt(4, -1))
	require.Nil(t, err)
	n, err := Normalize(c)
	require.Nil(t, err)

	bb := n.BoundingBox()
	assert.InDelta(t, 1, bb.Width(), 1e-15)
	assert.InDelta(t, 0, bb.Center().X, 1e-15)
	assert.InDelta(t, 0, bb.Center().Y, 1e-15)
	assert.InDelta(t, -0.5, n.Start().X, 1e-15)
	assert.InDelta(t, 0, n.Start().Y, 1e-15)

	single, err := contour.CurveFromPoints(contour.Pt(1, 1))
	require.Nil(t, err)
	_, err = Normalize(single)
	assert.ErrorIs(t, err, contour.ErrDegenerate)
}

func TestNormalizeDividesByChord(t *testing.T) {
	chord, x, y := 3.0, 2.5, 2.1
	c, err := contour.CurveFromPoints(contour.Pt(0, 0), contour.Pt(chord, 0), contour.Pt(x, y))
	require.Nil(t, err)
	n, err := Normalize(c)
	require.Nil(t, err)

	// Multiplying by the reciprocal rounds differently for these values.
	require.NotEqual(t, x/chord, x*(1/chord))
	cy := 0.5 * (y / chord)
	got, err := n.Point(2)
	require.Nil(t, err)
	assert.Equal(t, contour.Pt(x/chord-0.5, y/chord-cy), got)
}

func TestFindTip(t *testing.T) {
	c := testSection(t)
	tip, err := FindTip(c, Front)
	require.Nil(t, err)
	assert.Equal(t, contour.Pt(-0.5, -0.1), tip)

	tip, err = FindTip(c, Back)
	require.Nil(t, err)
	assert.Equal(t, 0.5, tip.X)
	assert.InDelta(t, -0.1, tip.Y, 1e-15)

	left, err := contour.CurveFromPoints(contour.Pt(-1, 0), contour.Pt(-2, 1))
	require.Nil(t, err)
	_, err = FindTip(left, Back)
	assert.ErrorIs(t, err, contour.ErrEmpty)
}

func TestIsolateLip(t *testing.T) {
	c := testSection(t)
	b := NewBuilder(config.Default(), l.NewConsoleLoggerWrapper())

	front, err := b.IsolateLip(c, Front)
	require.Nil(t, err)
	assert.Equal(t, Front, front.Side)
	assert.Equal(t, 24, front.First)
	assert.InDelta(t, 0.5, front.Original.Length(), 1e-12)
	// The lip starts 0.25 above the tip on the left side.
	assert.Equal(t, -0.5, front.Original.Start().X)
	assert.InDelta(t, 0.15, front.Original.Start().Y, 1e-12)
	assert.Equal(t, front.Original.Start(), front.Reshaped.Start())
	assert.Equal(t, front.Original.End(), front.Reshaped.End())

	back, err := b.IsolateLip(c, Back)
	require.Nil(t, err)
	assert.Equal(t, 170, back.Last)
	assert.InDelta(t, 0.5, back.Original.Length(), 1e-12)
	assert.Equal(t, 0.5, back.Original.End().X)
	assert.InDelta(t, 0.15, back.Original.End().Y, 1e-12)
	assert.Equal(t, back.Original.Start(), back.Reshaped.Start())
	assert.Equal(t, back.Original.End(), back.Reshaped.End())

	// The two lips mirror each other.
	assert.InDelta(t, front.Reshaped.Length(), back.Reshaped.Length(), 1e-9)
	assert.Equal(t, front.Reshaped.Size(), back.Reshaped.Size())
}

func TestBuild(t *testing.T) {
	c := testSection(t)
	b := NewBuilder(config.Default(), nil)
	s, err := b.Build(c)
	require.Nil(t, err)

	// The test section already has a unit chord, so normalizing only
	// recenters it vertically.
	require.Equal(t, c.Size(), s.BothLips.Size())
	assert.InDelta(t, c.Start().Y-0.15, s.BothLips.Start().Y, 1e-15)

	covered := func(lip *Lip) int { return lip.Last - lip.First + 1 }
	n := c.Size()
	assert.Equal(t, n-covered(s.Front)+s.Front.Reshaped.Size(), s.NoFrontLip.Size())
	assert.Equal(t, n-covered(s.Back)+s.Back.Reshaped.Size(), s.NoBackLip.Size())
	assert.Equal(t,
		n-covered(s.Front)-covered(s.Back)+s.Front.Reshaped.Size()+s.Back.Reshaped.Size(),
		s.NoLips.Size())

	at := func(c contour.Curve, i int) contour.Point {
		pt, err := c.Point(i)
		require.Nil(t, err)
		return pt
	}
	// Reshaped lips are spliced in where the original points were.
	assert.Equal(t, s.Front.Reshaped.Start(), at(s.NoFrontLip, s.Front.First))
	assert.Equal(t, at(s.BothLips, s.Front.First-1), at(s.NoFrontLip, s.Front.First-1))
	assert.Equal(t, s.Back.Reshaped.Start(), at(s.NoBackLip, s.Back.First))
	assert.Equal(t, s.BothLips.End(), s.NoLips.End())
	assert.Equal(t, s.BothLips.Start(), s.NoLips.Start())

	// Reshaping lifts the tips.
	for _, side := range []Side{Front, Back} {
		before, err := FindTip(s.BothLips, side)
		require.Nil(t, err)
		after, err := FindTip(s.NoLips, side)
		require.Nil(t, err)
		assert.Greater(t, after.Y, before.Y, side.String())
	}
	// Rounding cuts the corners short.
	assert.Less(t, s.NoLips.Length(), s.BothLips.Length())
}

func TestBuildErrors(t *testing.T) {
	c := testSection(t)

	cfg := config.Default()
	cfg.Front.After = 5
	_, err := NewBuilder(cfg, nil).Build(c)
	assert.ErrorIs(t, err, contour.ErrOutOfRange)

	cfg = config.Default()
	cfg.Front.After = 0.6
	cfg.Back.Before = 0.6
	_, err = NewBuilder(cfg, nil).Build(c)
	assert.ErrorIs(t, err, contour.ErrOutOfRange)
	assert.ErrorContains(t, err, "overlap")
}

func TestSectionsWrite(t *testing.T) {
	s, err := NewBuilder(config.Default(), nil).Build(testSection(t))
	require.Nil(t, err)

	dir := t.TempDir()
	outputs := config.Default().Outputs
	require.Nil(t, s.Write(dir, outputs))

	entries, err := os.ReadDir(dir)
	require.Nil(t, err)
	assert.Len(t, entries, 4)

	got, err := bodyfile.ReadSectionFile(filepath.Join(dir, outputs.NoLips))
	require.Nil(t, err)
	assert.Equal(t, s.NoLips.Points(), got.Points())
}

func TestPrepareBody(t *testing.T) {
	square, err := contour.CurveFromPoints(
		contour.Pt(0, 0), contour.Pt(1, 0), contour.Pt(1, 1), contour.Pt(0, 1),
	)
	require.Nil(t, err)
	body, err := PrepareBody(square, 0.5, 90)
	require.Nil(t, err)
	require.Equal(t, 8, body.Size())

	pt, err := body.Point(1)
	require.Nil(t, err)
	assert.InDelta(t, 0, pt.X, 1e-12)
	assert.InDelta(t, 0.5, pt.Y, 1e-12)
	assert.InDelta(t, 4, body.Length()+body.End().Distance(body.Start()), 1e-12)

	_, err = PrepareBody(square, 0, 0)
	assert.ErrorIs(t, err, contour.ErrOutOfRange)
}
