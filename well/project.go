package well

import (
	"fmt"
	"sort"
)

// Project is a named collection of wells for multi-well analysis. Well
// names are unique: adding a well under a taken name fails instead of
// silently overwriting.
type Project struct {
	Name  string
	wells map[string]*Well
}

// NewProject creates an empty project.
func NewProject(name string) *Project {
	return &Project{Name: name, wells: make(map[string]*Well)}
}

// AddWell registers a well, keyed by its header name.
func (p *Project) AddWell(w *Well) error {
	name := w.Header.Name
	if name == "" {
		return ErrUnnamedWell
	}
	if _, ok := p.wells[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateWell, name)
	}
	p.wells[name] = w
	return nil
}

// Well returns the named well.
func (p *Project) Well(name string) (*Well, error) {
	w, ok := p.wells[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrWellNotFound, name)
	}
	return w, nil
}

// Names returns the sorted well names.
func (p *Project) Names() []string {
	out := make([]string, 0, len(p.wells))
	for name := range p.wells {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Wells returns the wells in name order.
func (p *Project) Wells() []*Well {
	names := p.Names()
	out := make([]*Well, len(names))
	for i, name := range names {
		out[i] = p.wells[name]
	}
	return out
}

// Len returns the number of wells.
func (p *Project) Len() int { return len(p.wells) }
