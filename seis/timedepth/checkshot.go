package timedepth

import (
	"errors"
	"fmt"
)

// Errors returned by checkshot table construction and curve conversion.
var (
	ErrInsufficientControlPoints = errors.New("timedepth: need at least two checkshot pairs")
	ErrNonMonotonicCheckshots    = errors.New("timedepth: checkshot depths and times must be strictly increasing")
	ErrDegenerateTimeMapping     = errors.New("timedepth: converted index is not strictly increasing")
	ErrInvalidSampleInterval     = errors.New("timedepth: output sample interval must be > 0")
	ErrWrongDomain               = errors.New("timedepth: curve is not in the expected domain")
)

// Checkshot is one surveyed depth/time control pair.
type Checkshot struct {
	Depth float64
	Time  float64
}

// Table is an ordered set of checkshot pairs, strictly increasing in both
// depth and time. It is immutable once built; a well loads one table and
// keeps it for the life of the pipeline.
type Table struct {
	depths []float64
	times  []float64
}

// NewTable validates and builds a checkshot table. The pairs are copied.
func NewTable(shots []Checkshot) (*Table, error) {
	if len(shots) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientControlPoints, len(shots))
	}

	t := &Table{
		depths: make([]float64, len(shots)),
		times:  make([]float64, len(shots)),
	}
	for i, cs := range shots {
		t.depths[i] = cs.Depth
		t.times[i] = cs.Time
	}

	// Negated comparisons so a NaN pair fails rather than passes.
	for i := 1; i < len(shots); i++ {
		if !(t.depths[i] > t.depths[i-1]) {
			return nil, fmt.Errorf("%w: depth %g at pair %d", ErrNonMonotonicCheckshots, t.depths[i], i)
		}
		if !(t.times[i] > t.times[i-1]) {
			return nil, fmt.Errorf("%w: time %g at pair %d", ErrNonMonotonicCheckshots, t.times[i], i)
		}
	}

	return t, nil
}

// Len returns the number of control pairs.
func (t *Table) Len() int { return len(t.depths) }

// Depths returns a copy of the control depths.
func (t *Table) Depths() []float64 {
	out := make([]float64, len(t.depths))
	copy(out, t.depths)
	return out
}

// Times returns a copy of the control times.
func (t *Table) Times() []float64 {
	out := make([]float64, len(t.times))
	copy(out, t.times)
	return out
}
