package petro

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by elastic model parameter validation.
var (
	ErrInvalidFraction = errors.New("petro: volume fraction must be in [0, 1]")
	ErrNonPositiveVs   = errors.New("petro: predicted shear velocity must be > 0")
)

// VoigtAverage computes the Voigt (upper bound) average modulus of a
// two-component mixture with volume fraction f1 of the first component.
func VoigtAverage(f1, m1, m2 float64) (float64, error) {
	if f1 < 0 || f1 > 1 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidFraction, f1)
	}
	return f1*m1 + (1-f1)*m2, nil
}

// ReussAverage computes the Reuss (lower bound) average modulus of a
// two-component mixture with volume fraction f1 of the first component.
func ReussAverage(f1, m1, m2 float64) (float64, error) {
	if f1 < 0 || f1 > 1 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidFraction, f1)
	}
	if m1 <= 0 || m2 <= 0 {
		return 0, fmt.Errorf("%w: moduli %g, %g", ErrNonPositiveInput, m1, m2)
	}
	return 1 / (f1/m1 + (1-f1)/m2), nil
}

// HillAverage computes the Voigt-Reuss-Hill average, the arithmetic mean of
// the two bounds.
func HillAverage(voigt, reuss float64) float64 {
	return (voigt + reuss) / 2
}

// ShearModulus computes mu = rho * Vs^2 sample-by-sample. Density in
// kg/m3 and velocity in m/s give Pa.
func ShearModulus(sVelocity, density []float64) ([]float64, error) {
	if len(sVelocity) != len(density) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(sVelocity), len(density))
	}

	out := make([]float64, len(sVelocity))
	for i := range out {
		out[i] = density[i] * sVelocity[i] * sVelocity[i]
	}
	return out, nil
}

// BulkModulus computes K = rho * (Vp^2 - 4/3 Vs^2) sample-by-sample.
func BulkModulus(pVelocity, sVelocity, density []float64) ([]float64, error) {
	if len(pVelocity) != len(sVelocity) || len(pVelocity) != len(density) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(pVelocity), len(sVelocity), len(density))
	}

	out := make([]float64, len(pVelocity))
	for i := range out {
		out[i] = density[i] * (pVelocity[i]*pVelocity[i] - 4.0/3.0*sVelocity[i]*sVelocity[i])
	}
	return out, nil
}

// PWaveVelocity computes Vp = sqrt((K + 4/3 mu) / rho) sample-by-sample.
func PWaveVelocity(bulkModulus, shearModulus, density []float64) ([]float64, error) {
	if len(bulkModulus) != len(shearModulus) || len(bulkModulus) != len(density) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(bulkModulus), len(shearModulus), len(density))
	}

	out := make([]float64, len(bulkModulus))
	for i := range out {
		if density[i] <= 0 {
			return nil, fmt.Errorf("%w: density[%d] = %g", ErrNonPositiveInput, i, density[i])
		}
		out[i] = math.Sqrt((bulkModulus[i] + 4.0/3.0*shearModulus[i]) / density[i])
	}
	return out, nil
}

// SWaveVelocity computes Vs = sqrt(mu / rho) sample-by-sample.
func SWaveVelocity(shearModulus, density []float64) ([]float64, error) {
	if len(shearModulus) != len(density) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(shearModulus), len(density))
	}

	out := make([]float64, len(shearModulus))
	for i := range out {
		if density[i] <= 0 {
			return nil, fmt.Errorf("%w: density[%d] = %g", ErrNonPositiveInput, i, density[i])
		}
		out[i] = math.Sqrt(shearModulus[i] / density[i])
	}
	return out, nil
}

// GreenbergCastagnaVs predicts shear velocity from compressional velocity
// for a sand-shale mixture: the sand and shale line predictions are blended
// as the mean of their arithmetic and harmonic Vshale-weighted averages.
// The Castagna line coefficients assume velocities in km/s.
func GreenbergCastagnaVs(pVelocity, vshale []float64) ([]float64, error) {
	if len(pVelocity) != len(vshale) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(pVelocity), len(vshale))
	}

	out := make([]float64, len(pVelocity))
	for i := range out {
		vsSand := 0.80416*pVelocity[i] - 0.85588
		vsShale := 0.76969*pVelocity[i] - 0.86735
		if vsSand <= 0 || vsShale <= 0 {
			return nil, fmt.Errorf("%w: Vp[%d] = %g", ErrNonPositiveVs, i, pVelocity[i])
		}

		vsh := clip01(vshale[i])
		arith := (1-vsh)*vsSand + vsh*vsShale
		harm := 1 / ((1-vsh)/vsSand + vsh/vsShale)
		out[i] = 0.5 * (arith + harm)
	}
	return out, nil
}

// DryModulus inverts Gassmann's equation to recover the dry-rock bulk
// modulus from the saturated modulus, the fluid and mineral moduli, and
// porosity.
func DryModulus(kSat []float64, kFluid, kMineral float64, porosity []float64) ([]float64, error) {
	if len(kSat) != len(porosity) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(kSat), len(porosity))
	}
	if kFluid <= 0 || kMineral <= 0 {
		return nil, fmt.Errorf("%w: kFluid=%g kMineral=%g", ErrNonPositiveInput, kFluid, kMineral)
	}

	out := make([]float64, len(kSat))
	for i := range out {
		phi := porosity[i]
		if phi < 0 || phi > 1 {
			return nil, fmt.Errorf("%w: porosity[%d] = %g", ErrInvalidFraction, i, phi)
		}
		out[i] = (kSat[i]*(phi*kMineral/kFluid+1-phi) - kMineral) /
			(phi*kMineral/kFluid + kSat[i]/kMineral - 1 - phi)
	}
	return out, nil
}

// Gassmann performs fluid substitution: the saturated bulk modulus of the
// rock filled with a fluid of modulus kFluid, from the dry-rock modulus.
// The shear modulus is unaffected by the pore fluid and passes through
// substitution unchanged.
func Gassmann(kDry []float64, kFluid, kMineral float64, porosity []float64) ([]float64, error) {
	if len(kDry) != len(porosity) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(kDry), len(porosity))
	}
	if kFluid <= 0 || kMineral <= 0 {
		return nil, fmt.Errorf("%w: kFluid=%g kMineral=%g", ErrNonPositiveInput, kFluid, kMineral)
	}

	out := make([]float64, len(kDry))
	for i := range out {
		phi := porosity[i]
		if phi < 0 || phi > 1 {
			return nil, fmt.Errorf("%w: porosity[%d] = %g", ErrInvalidFraction, i, phi)
		}
		d := kDry[i] / kMineral
		out[i] = kDry[i] + (1-d)*(1-d)/
			(phi/kFluid+(1-phi)/kMineral-kDry[i]/(kMineral*kMineral))
	}
	return out, nil
}
