package curve

import (
	"fmt"

	"github.com/cwbudde/algo-seis/seis/core"
	"github.com/cwbudde/algo-seis/seis/interp"
)

// Domain identifies the index space a curve is expressed in.
type Domain int

const (
	Depth Domain = iota
	Time
)

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case Depth:
		return "depth"
	case Time:
		return "time"
	default:
		return fmt.Sprintf("domain(%d)", int(d))
	}
}

// Curve is a named, real-valued sequence over a strictly increasing index
// axis. Index and Values always have equal length.
type Curve struct {
	Name   string
	Unit   string
	Domain Domain
	Index  []float64
	Values []float64
}

// New validates and builds a curve. Index and values are copied so the
// caller keeps ownership of its slices.
func New(name, unit string, domain Domain, index, values []float64) (*Curve, error) {
	if len(values) != len(index) {
		return nil, fmt.Errorf("%w: %d values vs %d index samples", ErrDimensionMismatch, len(values), len(index))
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCurve, name)
	}
	if !core.IsStrictlyIncreasing(index) {
		return nil, fmt.Errorf("%w: %q", ErrNonMonotonicIndex, name)
	}

	c := &Curve{
		Name:   name,
		Unit:   unit,
		Domain: domain,
		Index:  make([]float64, len(index)),
		Values: make([]float64, len(values)),
	}
	copy(c.Index, index)
	copy(c.Values, values)
	return c, nil
}

// Len returns the number of samples.
func (c *Curve) Len() int { return len(c.Values) }

// SampleInterval returns the constant sampling interval of the index axis,
// or 0 if the curve is irregularly sampled.
func (c *Curve) SampleInterval() float64 {
	return core.ConstantStep(c.Index)
}

// IsRegular reports whether the curve is sampled at a constant interval.
func (c *Curve) IsRegular() bool {
	return len(c.Index) >= 2 && c.SampleInterval() != 0
}

// Clone returns a deep copy.
func (c *Curve) Clone() *Curve {
	out := &Curve{
		Name:   c.Name,
		Unit:   c.Unit,
		Domain: c.Domain,
		Index:  make([]float64, len(c.Index)),
		Values: make([]float64, len(c.Values)),
	}
	copy(out.Index, c.Index)
	copy(out.Values, c.Values)
	return out
}

// Resample produces a new curve with values linearly interpolated onto
// target. Queries outside the original index range hold the nearest edge
// value: slope continuation is not physically meaningful for log curves.
// Single-sample curves are extended as a constant.
func (c *Curve) Resample(target []float64) (*Curve, error) {
	if !core.IsStrictlyIncreasing(target) {
		return nil, fmt.Errorf("%w: resample target", ErrNonMonotonicIndex)
	}

	values := make([]float64, len(target))
	if len(c.Index) < 2 {
		for i := range values {
			values[i] = c.Values[0]
		}
	} else {
		m, err := interp.NewMonotonic(c.Index, c.Values, interp.ExtrapolateFlat)
		if err != nil {
			return nil, fmt.Errorf("curve: resample %q: %w", c.Name, err)
		}
		m.EvalTo(values, target)
	}

	out := &Curve{
		Name:   c.Name,
		Unit:   c.Unit,
		Domain: c.Domain,
		Index:  make([]float64, len(target)),
		Values: values,
	}
	copy(out.Index, target)
	return out, nil
}
