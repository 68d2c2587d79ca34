// Package petro provides direct petrophysical and elastic formulas applied
// sample-by-sample to log arrays.
//
// All functions are pure: they validate their parameters, allocate a new
// output slice, and never modify their inputs. Curves are expected to
// arrive already normalized to a consistent unit system.
package petro

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-seis/seis/core"
)

// Errors returned by formula parameter validation.
var (
	ErrLengthMismatch    = errors.New("petro: input logs must have same length")
	ErrEqualEndpoints    = errors.New("petro: clean and shale reference values must differ")
	ErrEqualDensities    = errors.New("petro: matrix density must differ from fluid density")
	ErrNonPositiveInput  = errors.New("petro: input value must be > 0")
	ErrInvalidSaturation = errors.New("petro: Archie parameters must be > 0")
)

// VshaleFromGR computes volume of shale from a gamma-ray log by linear
// scaling between clean-sand and pure-shale reference values, clipped to
// [0, 1].
func VshaleFromGR(gr []float64, grClean, grShale float64) ([]float64, error) {
	if grShale == grClean {
		return nil, fmt.Errorf("%w: GR %g", ErrEqualEndpoints, grClean)
	}

	out := make([]float64, len(gr))
	for i, v := range gr {
		out[i] = clip01((v - grClean) / (grShale - grClean))
	}
	return out, nil
}

// VshaleFromSP computes volume of shale from a spontaneous-potential log by
// linear scaling between clean-sand and pure-shale reference values,
// clipped to [0, 1].
func VshaleFromSP(sp []float64, spClean, spShale float64) ([]float64, error) {
	if spShale == spClean {
		return nil, fmt.Errorf("%w: SP %g", ErrEqualEndpoints, spClean)
	}

	out := make([]float64, len(sp))
	for i, v := range sp {
		out[i] = clip01((spShale - v) / (spShale - spClean))
	}
	return out, nil
}

// DensityPorosity computes porosity from a bulk-density log given matrix
// and fluid densities, clipped to [0, 1].
func DensityPorosity(bulkDensity []float64, matrixDensity, fluidDensity float64) ([]float64, error) {
	if matrixDensity == fluidDensity {
		return nil, fmt.Errorf("%w: both %g", ErrEqualDensities, matrixDensity)
	}

	out := make([]float64, len(bulkDensity))
	for i, rhob := range bulkDensity {
		out[i] = clip01((matrixDensity - rhob) / (matrixDensity - fluidDensity))
	}
	return out, nil
}

// SonicPorosityWyllie computes porosity from a sonic transit-time log using
// the Wyllie time-average equation, clipped to [0, 1]. Transit times are in
// the same unit as the matrix and fluid references (conventionally µs/ft).
func SonicPorosityWyllie(deltaT []float64, deltaTMatrix, deltaTFluid float64) ([]float64, error) {
	if deltaTFluid == deltaTMatrix {
		return nil, fmt.Errorf("%w: both %g", ErrEqualEndpoints, deltaTMatrix)
	}

	out := make([]float64, len(deltaT))
	for i, dt := range deltaT {
		out[i] = clip01((dt - deltaTMatrix) / (deltaTFluid - deltaTMatrix))
	}
	return out, nil
}

// SonicPorosityRHG computes porosity from a sonic transit-time log using
// the Raymer-Hunt-Gardner equation phi = c * (dt - dtMatrix) / dt, clipped
// to [0, 1]. The empirical constant c is conventionally 0.67; common matrix
// transit times are 55.5 µs/ft (sandstone), 47.5 (limestone), 43.5
// (dolomite).
func SonicPorosityRHG(deltaT []float64, deltaTMatrix, c float64) ([]float64, error) {
	if deltaTMatrix <= 0 {
		return nil, fmt.Errorf("%w: matrix transit time %g", ErrNonPositiveInput, deltaTMatrix)
	}

	out := make([]float64, len(deltaT))
	for i, dt := range deltaT {
		if dt <= 0 {
			return nil, fmt.Errorf("%w: DT[%d] = %g", ErrNonPositiveInput, i, dt)
		}
		out[i] = clip01(c * (dt - deltaTMatrix) / dt)
	}
	return out, nil
}

// VclayFromNeutronDensity computes volume of clay from the neutron-density
// crossplot: the neutron-derived and density-derived estimates are scaled
// between clean and clay reference readings and averaged, clipped to [0, 1].
func VclayFromNeutronDensity(nphi, rhob []float64, nphiClean, rhobClean, nphiClay, rhobClay float64) ([]float64, error) {
	if len(nphi) != len(rhob) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(nphi), len(rhob))
	}
	if nphiClay == nphiClean {
		return nil, fmt.Errorf("%w: NPHI %g", ErrEqualEndpoints, nphiClean)
	}
	if rhobClay == rhobClean {
		return nil, fmt.Errorf("%w: RHOB %g", ErrEqualEndpoints, rhobClean)
	}

	out := make([]float64, len(nphi))
	for i := range out {
		fromNeutron := (nphi[i] - nphiClean) / (nphiClay - nphiClean)
		fromDensity := (rhobClay - rhob[i]) / (rhobClay - rhobClean)
		out[i] = clip01((fromNeutron + fromDensity) / 2)
	}
	return out, nil
}

// WaterSaturationArchie computes water saturation from porosity and true
// resistivity using the Archie equation
//
//	Sw = ((a * Rw) / (phi^m * Rt))^(1/n)
//
// with tortuosity a, cementation exponent m, saturation exponent n, and
// formation-water resistivity rw. The result is clipped to [0, 1].
func WaterSaturationArchie(porosity, rt []float64, a, m, n, rw float64) ([]float64, error) {
	if len(porosity) != len(rt) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(porosity), len(rt))
	}
	if a <= 0 || m <= 0 || n <= 0 || rw <= 0 {
		return nil, fmt.Errorf("%w: a=%g m=%g n=%g rw=%g", ErrInvalidSaturation, a, m, n, rw)
	}

	out := make([]float64, len(porosity))
	for i := range porosity {
		if porosity[i] <= 0 || rt[i] <= 0 {
			out[i] = 1
			continue
		}
		sw := math.Pow(a*rw/(math.Pow(porosity[i], m)*rt[i]), 1/n)
		out[i] = clip01(sw)
	}
	return out, nil
}

// AcousticImpedance computes density times velocity sample-by-sample.
func AcousticImpedance(density, velocity []float64) ([]float64, error) {
	if len(density) != len(velocity) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(density), len(velocity))
	}

	out := make([]float64, len(density))
	for i := range density {
		out[i] = density[i] * velocity[i]
	}
	return out, nil
}

// VelocityFromSonic converts sonic slowness in µs/ft to velocity in m/s.
func VelocityFromSonic(deltaT []float64) ([]float64, error) {
	out := make([]float64, len(deltaT))
	for i, dt := range deltaT {
		if dt <= 0 {
			return nil, fmt.Errorf("%w: DT[%d] = %g", ErrNonPositiveInput, i, dt)
		}
		// 1 ft = 0.3048 m; slowness µs/ft -> velocity m/s.
		out[i] = 0.3048 * 1e6 / dt
	}
	return out, nil
}

func clip01(v float64) float64 {
	return core.Clamp(v, 0, 1)
}
