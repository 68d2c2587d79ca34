// Package well models a single well — header metadata, depth-indexed log
// curves, formation tops, and an optional checkshot survey — and a project
// collection for multi-well work.
package well

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-seis/seis/curve"
	"github.com/cwbudde/algo-seis/seis/timedepth"
)

// Errors returned by well and project operations.
var (
	ErrTopNotFound   = errors.New("well: formation top not found")
	ErrNoCheckshots  = errors.New("well: no checkshot table loaded")
	ErrUnnamedWell   = errors.New("well: well has no name")
	ErrDuplicateWell = errors.New("well: well already in project")
	ErrWellNotFound  = errors.New("well: well not found in project")
)

// Header holds well identification and reference metadata.
type Header struct {
	Name     string
	UWI      string
	Field    string
	Location string
	Datum    float64 // reference elevation for depths
}

// Top is a named formation top depth.
type Top struct {
	Name  string
	Depth float64
}

// TimeTop is a formation top with its two-way time from the checkshot
// mapping.
type TimeTop struct {
	Name  string
	Depth float64
	Time  float64
}

// Interval spans from one formation top to the next one below it.
type Interval struct {
	TopName   string
	TopDepth  float64
	BaseName  string
	BaseDepth float64
}

// Well owns the curves and survey data of one well. Populate it during
// load; the numerical stages only read from it.
type Well struct {
	Header     Header
	Curves     *curve.Store
	Checkshots *timedepth.Table

	tops map[string]float64
}

// New creates an empty well with the given header.
func New(h Header) *Well {
	return &Well{
		Header: h,
		Curves: curve.NewStore(),
		tops:   make(map[string]float64),
	}
}

// AddTop registers a formation top, replacing any previous depth for the
// same name.
func (w *Well) AddTop(name string, depth float64) {
	w.tops[name] = depth
}

// TopDepth returns the depth of a named top.
func (w *Well) TopDepth(name string) (float64, error) {
	d, ok := w.tops[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTopNotFound, name)
	}
	return d, nil
}

// Tops returns all formation tops sorted by depth.
func (w *Well) Tops() []Top {
	out := make([]Top, 0, len(w.tops))
	for name, depth := range w.tops {
		out = append(out, Top{Name: name, Depth: depth})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Intervals pairs each top with the next one below it.
func (w *Well) Intervals() []Interval {
	tops := w.Tops()
	if len(tops) < 2 {
		return nil
	}

	out := make([]Interval, 0, len(tops)-1)
	for i := 0; i < len(tops)-1; i++ {
		out = append(out, Interval{
			TopName:   tops[i].Name,
			TopDepth:  tops[i].Depth,
			BaseName:  tops[i+1].Name,
			BaseDepth: tops[i+1].Depth,
		})
	}
	return out
}

// TimeTops converts the formation tops to two-way time through the well's
// checkshot table, sorted by depth.
func (w *Well) TimeTops() ([]TimeTop, error) {
	if w.Checkshots == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoCheckshots, w.Header.Name)
	}

	cv, err := timedepth.NewConverter(w.Checkshots)
	if err != nil {
		return nil, err
	}

	tops := w.Tops()
	out := make([]TimeTop, len(tops))
	for i, top := range tops {
		out[i] = TimeTop{
			Name:  top.Name,
			Depth: top.Depth,
			Time:  cv.TimeAt(top.Depth),
		}
	}
	return out, nil
}
