package interp

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-seis/seis/core"
)

// Errors returned by interpolator construction.
var (
	ErrTooFewPoints   = errors.New("interp: need at least two control points")
	ErrLengthMismatch = errors.New("interp: abscissae and ordinates must have same length")
	ErrNonMonotonic   = errors.New("interp: abscissae must be strictly increasing")
)

// Extrapolation selects the policy for queries outside the control range.
type Extrapolation int

const (
	// ExtrapolateFlat holds the nearest edge ordinate.
	ExtrapolateFlat Extrapolation = iota

	// ExtrapolateSlope continues the slope of the nearest segment.
	ExtrapolateSlope
)

// Monotonic is a piecewise-linear interpolator over strictly increasing
// abscissae. It is immutable after construction and safe for concurrent use.
type Monotonic struct {
	xs   []float64
	ys   []float64
	mode Extrapolation
}

// NewMonotonic builds an interpolator from control points (xs[i], ys[i]).
// The control points are copied; the caller keeps ownership of its slices.
func NewMonotonic(xs, ys []float64, mode Extrapolation) (*Monotonic, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	if !core.IsStrictlyIncreasing(xs) {
		return nil, ErrNonMonotonic
	}

	m := &Monotonic{
		xs:   make([]float64, len(xs)),
		ys:   make([]float64, len(ys)),
		mode: mode,
	}
	copy(m.xs, xs)
	copy(m.ys, ys)
	return m, nil
}

// At evaluates the interpolant at x.
func (m *Monotonic) At(x float64) float64 {
	n := len(m.xs)

	switch {
	case x < m.xs[0]:
		if m.mode == ExtrapolateFlat {
			return m.ys[0]
		}
		return segment(m.xs[0], m.ys[0], m.xs[1], m.ys[1], x)
	case x > m.xs[n-1]:
		if m.mode == ExtrapolateFlat {
			return m.ys[n-1]
		}
		return segment(m.xs[n-2], m.ys[n-2], m.xs[n-1], m.ys[n-1], x)
	}

	// Bracketing segment: xs[i-1] <= x <= xs[i].
	i := sort.SearchFloat64s(m.xs, x)
	if i < len(m.xs) && m.xs[i] == x {
		return m.ys[i]
	}
	return segment(m.xs[i-1], m.ys[i-1], m.xs[i], m.ys[i], x)
}

// Eval evaluates the interpolant at each query point, returning a new slice.
func (m *Monotonic) Eval(xs []float64) []float64 {
	out := make([]float64, len(xs))
	m.EvalTo(out, xs)
	return out
}

// EvalTo evaluates the interpolant at each query point into a pre-allocated
// destination. dst must have length len(xs).
func (m *Monotonic) EvalTo(dst, xs []float64) {
	for i, x := range xs {
		dst[i] = m.At(x)
	}
}

// Min returns the smallest control abscissa.
func (m *Monotonic) Min() float64 { return m.xs[0] }

// Max returns the largest control abscissa.
func (m *Monotonic) Max() float64 { return m.xs[len(m.xs)-1] }

// segment evaluates the line through (x0, y0) and (x1, y1) at x.
func segment(x0, y0, x1, y1, x float64) float64 {
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}
