package axisbreak

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when two coordinate sequences of
// different lengths are paired.
var ErrLengthMismatch = errors.New("axisbreak: x and y sequences must have the same length")

// Coords is one axis's worth of break coordinates: either a single
// scalar, a sequence, or absent. It replaces the scalar-or-list argument
// pattern with a tagged union resolved once at the entry points.
//
// The zero value is absent, meaning "no breaks in this direction".
type Coords struct {
	vals   []float64
	scalar bool
}

// C wraps a single scalar coordinate.
func C(v float64) Coords {
	return Coords{vals: []float64{v}, scalar: true}
}

// Cs wraps a sequence of coordinates. Cs() with no arguments is absent.
func Cs(vs ...float64) Coords {
	return Coords{vals: vs}
}

// Empty reports whether no coordinates were supplied.
func (c Coords) Empty() bool { return len(c.vals) == 0 }

// Scalar reports whether the value was supplied as a single scalar.
func (c Coords) Scalar() bool { return c.scalar }

// Values returns the underlying coordinates.
func (c Coords) Values() []float64 { return c.vals }

// First returns the first coordinate, or 0 if absent.
func (c Coords) First() float64 {
	if len(c.vals) == 0 {
		return 0
	}
	return c.vals[0]
}

// Last returns the last coordinate, or 0 if absent.
func (c Coords) Last() float64 {
	if len(c.vals) == 0 {
		return 0
	}
	return c.vals[len(c.vals)-1]
}

// Pairs broadcasts x against y into a normalized point list:
//
//	Pairs(C(5), Cs(1, 2, 3))   => (5,1) (5,2) (5,3)
//	Pairs(Cs(1, 2), C(3))      => (1,3) (2,3)
//	Pairs(Cs(1, 2), Cs(3, 4))  => (1,3) (2,4)
//
// Two sequences of different lengths fail with ErrLengthMismatch. A
// scalar is broadcast against a sequence of any length. If either side
// is absent the result is empty.
func Pairs(x, y Coords) ([]Point, error) {
	if x.Empty() || y.Empty() {
		return nil, nil
	}
	xs, ys := x.vals, y.vals
	switch {
	case len(xs) == len(ys):
		// Covers scalar/scalar and equal-length sequences.
	case len(xs) == 1 && x.scalar:
		xs = repeat(xs[0], len(ys))
	case len(ys) == 1 && y.scalar:
		ys = repeat(ys[0], len(xs))
	default:
		return nil, fmt.Errorf("%w: got %d and %d", ErrLengthMismatch, len(xs), len(ys))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Pt(xs[i], ys[i])
	}
	return pts, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
