// Package bodyfile reads and writes cross-section coordinates as
// whitespace-separated two-column text.
//
// Section files start with a "# <N> points" comment and hold one "x y" line
// per point, formatted like numpy.savetxt. Body files, read by the flow
// solver, start with a bare point count instead.
package bodyfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/snakelips/contour"
	"github.com/spf13/cast"
)

const coordFormat = "%.18e %.18e\n"

// ReadSection parses two-column coordinates. Blank lines and lines starting
// with '#' are skipped.
func ReadSection(r io.Reader) (contour.Curve, error) {
	return read(r, 0)
}

// ReadBody parses a body file: a point count line followed by coordinates.
// The point count must match the number of coordinate lines.
func ReadBody(r io.Reader) (contour.Curve, error) {
	return read(r, 1)
}

func read(r io.Reader, skip int) (contour.Curve, error) {
	var xs, ys []float64
	want := -1
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if skip > 0 {
			skip--
			n, err := cast.ToIntE(text)
			if err != nil {
				return contour.Curve{}, fmt.Errorf("line %d: invalid point count %q: %w", line, text, err)
			}
			want = n
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return contour.Curve{}, fmt.Errorf("line %d: want 2 columns, got %d", line, len(fields))
		}
		x, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return contour.Curve{}, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := cast.ToFloat64E(fields[1])
		if err != nil {
			return contour.Curve{}, fmt.Errorf("line %d: %w", line, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := sc.Err(); err != nil {
		return contour.Curve{}, err
	}
	if want >= 0 && want != len(xs) {
		return contour.Curve{}, fmt.Errorf("header announces %d points, found %d", want, len(xs))
	}
	return contour.NewCurve(xs, ys)
}

// WriteSection writes c with a "# <N> points" header.
func WriteSection(w io.Writer, c contour.Curve) error {
	return write(w, fmt.Sprintf("# %d points\n", c.Size()), c)
}

// WriteBody writes c with a bare point count header.
func WriteBody(w io.Writer, c contour.Curve) error {
	return write(w, fmt.Sprintf("%d\n", c.Size()), c)
}

func write(w io.Writer, header string, c contour.Curve) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(header); err != nil {
		return err
	}
	for _, pt := range c.All() {
		if _, err := fmt.Fprintf(bw, coordFormat, pt.X, pt.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSectionFile reads a section file from disk.
func ReadSectionFile(path string) (contour.Curve, error) {
	return readFile(path, ReadSection)
}

// ReadBodyFile reads a body file from disk.
func ReadBodyFile(path string) (contour.Curve, error) {
	return readFile(path, ReadBody)
}

func readFile(path string, fn func(io.Reader) (contour.Curve, error)) (contour.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return contour.Curve{}, err
	}
	defer f.Close()
	c, err := fn(f)
	if err != nil {
		return contour.Curve{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteSectionFile writes a section file to disk, replacing any existing file.
func WriteSectionFile(path string, c contour.Curve) error {
	return writeFile(path, c, WriteSection)
}

// WriteBodyFile writes a body file to disk, replacing any existing file.
func WriteBodyFile(path string, c contour.Curve) error {
	return writeFile(path, c, WriteBody)
}

func writeFile(path string, c contour.Curve, fn func(io.Writer, contour.Curve) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f, c)
}
