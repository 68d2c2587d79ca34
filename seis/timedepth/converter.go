package timedepth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-seis/seis/curve"
	"github.com/cwbudde/algo-seis/seis/interp"
)

// Converter maps curves between the depth and time domains through a
// checkshot table. It is immutable and safe for concurrent use.
type Converter struct {
	depthToTime *interp.Monotonic
	timeToDepth *interp.Monotonic
}

// NewConverter builds the forward and inverse piecewise-linear mappings
// from a checkshot table.
func NewConverter(t *Table) (*Converter, error) {
	d2t, err := interp.NewMonotonic(t.depths, t.times, interp.ExtrapolateSlope)
	if err != nil {
		return nil, fmt.Errorf("timedepth: %w", err)
	}
	t2d, err := interp.NewMonotonic(t.times, t.depths, interp.ExtrapolateSlope)
	if err != nil {
		return nil, fmt.Errorf("timedepth: %w", err)
	}

	return &Converter{depthToTime: d2t, timeToDepth: t2d}, nil
}

// TimeAt returns the interpolated time for a single depth.
func (cv *Converter) TimeAt(depth float64) float64 {
	return cv.depthToTime.At(depth)
}

// DepthAt returns the interpolated depth for a single time.
func (cv *Converter) DepthAt(time float64) float64 {
	return cv.timeToDepth.At(time)
}

// DepthToTime converts a depth-indexed curve to a time-indexed curve
// resampled onto a regular time grid with step dt. The input curve is not
// modified.
func (cv *Converter) DepthToTime(c *curve.Curve, dt float64) (*curve.Curve, error) {
	return cv.convert(c, curve.Depth, curve.Time, cv.depthToTime, dt)
}

// TimeToDepth converts a time-indexed curve to a depth-indexed curve
// resampled onto a regular depth grid with step dz. The input curve is not
// modified.
func (cv *Converter) TimeToDepth(c *curve.Curve, dz float64) (*curve.Curve, error) {
	return cv.convert(c, curve.Time, curve.Depth, cv.timeToDepth, dz)
}

func (cv *Converter) convert(c *curve.Curve, from, to curve.Domain, mapping *interp.Monotonic, step float64) (*curve.Curve, error) {
	if c.Domain != from {
		return nil, fmt.Errorf("%w: %q is %s-indexed, expected %s", ErrWrongDomain, c.Name, c.Domain, from)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSampleInterval, step)
	}

	// Stage one: map every index sample through the checkshot relationship.
	// Negated comparison so a NaN mapped sample fails rather than passes.
	mapped := mapping.Eval(c.Index)
	for i := 1; i < len(mapped); i++ {
		if !(mapped[i] > mapped[i-1]) {
			return nil, fmt.Errorf("%w: sample %d maps to %g after %g", ErrDegenerateTimeMapping, i, mapped[i], mapped[i-1])
		}
	}

	// Stage two: resample the irregular converted samples onto a regular
	// grid. The grid starts at the first converted sample and stays inside
	// the converted range, so this pass never extrapolates.
	n := 1
	if len(mapped) > 1 {
		n = int(math.Floor((mapped[len(mapped)-1]-mapped[0])/step)) + 1
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: %g exceeds the converted range", ErrInvalidSampleInterval, step)
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = mapped[0] + float64(i)*step
	}

	m, err := interp.NewMonotonic(mapped, c.Values, interp.ExtrapolateFlat)
	if err != nil {
		return nil, fmt.Errorf("timedepth: %w", err)
	}
	values := make([]float64, n)
	m.EvalTo(values, grid)

	out, err := curve.New(c.Name, c.Unit, to, grid, values)
	if err != nil {
		return nil, fmt.Errorf("timedepth: %w", err)
	}
	return out, nil
}
