package curve

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-seis/seis/core"
)

// Store is an owning collection of curves for one well. Curves registered
// under the same domain share identical index values; the first curve added
// in a domain establishes that domain's axis.
type Store struct {
	axes   map[Domain][]float64
	curves map[Domain]map[string]*Curve
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		axes:   make(map[Domain][]float64),
		curves: make(map[Domain]map[string]*Curve),
	}
}

// AddCurve validates and registers a new curve. The values and index are
// copied. Fails if the lengths disagree, the index is not strictly
// increasing, the index differs from the domain's established axis, or the
// name is already taken in that domain.
func (s *Store) AddCurve(name string, values, index []float64, unit string, domain Domain) error {
	c, err := New(name, unit, domain, index, values)
	if err != nil {
		return err
	}
	return s.Add(c)
}

// Add registers an already-built curve. The store takes ownership.
func (s *Store) Add(c *Curve) error {
	if axis, ok := s.axes[c.Domain]; ok {
		if !sameAxis(axis, c.Index) {
			return fmt.Errorf("%w: %q in %s domain", ErrAxisMismatch, c.Name, c.Domain)
		}
	} else {
		s.axes[c.Domain] = c.Index
		s.curves[c.Domain] = make(map[string]*Curve)
	}

	if _, ok := s.curves[c.Domain][c.Name]; ok {
		return fmt.Errorf("%w: %q in %s domain", ErrDuplicateName, c.Name, c.Domain)
	}

	s.curves[c.Domain][c.Name] = c
	return nil
}

// Curve returns the named curve in the given domain. Callers must treat the
// result as read-only; stages that transform a curve return a new one.
func (s *Store) Curve(name string, domain Domain) (*Curve, error) {
	c, ok := s.curves[domain][name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s domain", ErrCurveNotFound, name, domain)
	}
	return c, nil
}

// Has reports whether the named curve exists in the given domain.
func (s *Store) Has(name string, domain Domain) bool {
	_, ok := s.curves[domain][name]
	return ok
}

// Names returns the sorted curve names registered in the given domain.
func (s *Store) Names(domain Domain) []string {
	names := make([]string, 0, len(s.curves[domain]))
	for name := range s.curves[domain] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Axis returns a copy of the index axis for the given domain, or nil if no
// curve has been registered there.
func (s *Store) Axis(domain Domain) []float64 {
	axis, ok := s.axes[domain]
	if !ok {
		return nil
	}
	out := make([]float64, len(axis))
	copy(out, axis)
	return out
}

// Len returns the number of curves registered in the given domain.
func (s *Store) Len(domain Domain) int {
	return len(s.curves[domain])
}

// ResampleTo produces a new store with every curve of the given domain
// resampled onto target via linear interpolation with flat extrapolation.
// Curves in other domains are not carried over.
func (s *Store) ResampleTo(domain Domain, target []float64) (*Store, error) {
	if !core.IsStrictlyIncreasing(target) {
		return nil, fmt.Errorf("%w: resample target", ErrNonMonotonicIndex)
	}

	out := NewStore()
	for _, name := range s.Names(domain) {
		rc, err := s.curves[domain][name].Resample(target)
		if err != nil {
			return nil, err
		}
		if err := out.Add(rc); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
