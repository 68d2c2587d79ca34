package petro

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by pore pressure prediction.
var (
	ErrUnknownIndicator = errors.New("petro: unknown compaction indicator")
)

// EatonIndicator selects which log drives the normal compaction trend in
// Eaton's method.
type EatonIndicator int

const (
	// IndicatorResistivity models the trend as log10(Rt) = a + b*depth.
	IndicatorResistivity EatonIndicator = iota

	// IndicatorSonic models the trend as DT = a + b*depth.
	IndicatorSonic
)

// Conventional Eaton parameters.
const (
	// DefaultEatonExponentResistivity is the customary exponent for a
	// resistivity indicator.
	DefaultEatonExponentResistivity = 1.2

	// DefaultEatonExponentSonic is the customary exponent for a sonic
	// indicator.
	DefaultEatonExponentSonic = 3.0

	// DefaultHydrostaticGradient is the freshwater pressure gradient in
	// MPa/m.
	DefaultHydrostaticGradient = 0.00981
)

// PorePressure holds the pressure profiles of one Eaton run, all in MPa on
// the input depth samples.
type PorePressure struct {
	Overburden  []float64
	Hydrostatic []float64
	Pore        []float64
}

// PorePressureEaton predicts pore pressure from a bulk-density log (g/cm3)
// and a compaction indicator log on a common depth axis in meters.
// Overburden pressure integrates density down the axis; the normal
// compaction trend is the line nctA + nctB*depth in the indicator's space;
// pore pressure follows Eaton's gradient relation
//
//	PPgrad = OBPgrad - (OBPgrad - hydroGrad) * ratio^(-exp)
//
// Samples where the relation degenerates (zero depth, zero indicator) fall
// back to hydrostatic pressure rather than propagating infinities.
func PorePressureEaton(depth, rhob, indicator []float64, nctA, nctB float64, ind EatonIndicator, eatonExp, hydroGrad float64) (*PorePressure, error) {
	if len(depth) != len(rhob) || len(depth) != len(indicator) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(depth), len(rhob), len(indicator))
	}
	if hydroGrad <= 0 {
		return nil, fmt.Errorf("%w: hydrostatic gradient %g", ErrNonPositiveInput, hydroGrad)
	}

	n := len(depth)
	pp := &PorePressure{
		Overburden:  make([]float64, n),
		Hydrostatic: make([]float64, n),
		Pore:        make([]float64, n),
	}

	for i := range depth {
		pp.Hydrostatic[i] = depth[i] * hydroGrad
	}

	// Overburden: cumulative density integral; the first sample has no
	// preceding step and starts at zero.
	obp := 0.0
	for i := 1; i < n; i++ {
		obp += rhob[i] * 0.00981 * (depth[i] - depth[i-1])
		pp.Overburden[i] = obp
	}

	for i := range depth {
		if i == 0 || depth[i] == 0 {
			pp.Pore[i] = pp.Hydrostatic[i]
			continue
		}

		indicatorValue := indicator[i]
		if indicatorValue == 0 {
			indicatorValue = 0.001
		}

		var ratio float64
		switch ind {
		case IndicatorResistivity:
			ratio = math.Pow(10, nctA+nctB*depth[i]) / indicatorValue
		case IndicatorSonic:
			ratio = indicatorValue / (nctA + nctB*depth[i])
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownIndicator, int(ind))
		}

		obpGrad := pp.Overburden[i] / depth[i]
		ppGrad := obpGrad - (obpGrad-hydroGrad)*math.Pow(ratio, -eatonExp)
		p := ppGrad * depth[i]
		if math.IsNaN(p) || math.IsInf(p, 0) {
			p = pp.Hydrostatic[i]
		}
		pp.Pore[i] = p
	}

	return pp, nil
}
