// Package unit provides an explicit unit-conversion table for normalizing
// log curves before they reach the numerical pipeline.
//
// A Converter is an ordinary value passed to whoever needs it; there is no
// package-level registry. The built-in table covers the quantities that
// commonly appear in LAS files: depth, density, slowness, velocity,
// pressure, and time.
package unit

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by conversion.
var (
	ErrUnknownUnit     = errors.New("unit: unknown unit")
	ErrIncompatible    = errors.New("unit: units measure different quantities")
	ErrInvalidSlowness = errors.New("unit: slowness and velocity values must be > 0")
)

// dimension groups units that convert into each other linearly.
type dimension int

const (
	dimLength dimension = iota
	dimDensity
	dimSlowness
	dimVelocity
	dimPressure
	dimTime
)

// entry is a unit's dimension and its scale to that dimension's base unit
// (m, kg/m3, s/m, m/s, Pa, s).
type entry struct {
	dim   dimension
	scale float64
}

// Converter translates values between recognized units. The zero value is
// not usable; construct one with NewConverter.
type Converter struct {
	table map[string]entry
}

// NewConverter builds a converter with the built-in unit table.
func NewConverter() *Converter {
	return &Converter{table: map[string]entry{
		"m":     {dimLength, 1},
		"ft":    {dimLength, 0.3048},
		"km":    {dimLength, 1000},
		"kg/m3": {dimDensity, 1},
		"g/cm3": {dimDensity, 1000},
		"us/m":  {dimSlowness, 1e-6},
		"us/ft": {dimSlowness, 1e-6 / 0.3048},
		"m/s":   {dimVelocity, 1},
		"ft/s":  {dimVelocity, 0.3048},
		"km/s":  {dimVelocity, 1000},
		"pa":    {dimPressure, 1},
		"kpa":   {dimPressure, 1e3},
		"mpa":   {dimPressure, 1e6},
		"psi":   {dimPressure, 6894.757293168},
		"s":     {dimTime, 1},
		"ms":    {dimTime, 1e-3},
		"us":    {dimTime, 1e-6},
	}}
}

// Convert translates value from one unit to another. Slowness converts to
// velocity (and back) by reciprocal; all other conversions require the same
// dimension.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	fe, err := c.lookup(from)
	if err != nil {
		return 0, err
	}
	te, err := c.lookup(to)
	if err != nil {
		return 0, err
	}

	if fe.dim == te.dim {
		return value * fe.scale / te.scale, nil
	}

	// Reciprocal pair: slowness <-> velocity.
	if (fe.dim == dimSlowness && te.dim == dimVelocity) ||
		(fe.dim == dimVelocity && te.dim == dimSlowness) {
		if value <= 0 {
			return 0, fmt.Errorf("%w: got %g", ErrInvalidSlowness, value)
		}
		return 1 / (value * fe.scale) / te.scale, nil
	}

	return 0, fmt.Errorf("%w: %q -> %q", ErrIncompatible, from, to)
}

// ConvertSlice translates every value in vals, returning a new slice.
func (c *Converter) ConvertSlice(vals []float64, from, to string) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		cv, err := c.Convert(v, from, to)
		if err != nil {
			return nil, fmt.Errorf("unit: sample %d: %w", i, err)
		}
		out[i] = cv
	}
	return out, nil
}

// Knows reports whether the unit name is in the table.
func (c *Converter) Knows(name string) bool {
	_, err := c.lookup(name)
	return err == nil
}

func (c *Converter) lookup(name string) (entry, error) {
	e, ok := c.table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return entry{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return e, nil
}
