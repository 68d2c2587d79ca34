// Package reflectivity derives reflection-coefficient series from acoustic
// impedance curves.
//
// The coefficient for the interface between samples i and i+1 is
//
//	RC[i] = (AI[i+1] - AI[i]) / (AI[i+1] + AI[i])
//
// Indexing convention: each coefficient is aligned to the lower sample's
// index position, and the output carries one leading sentinel zero so it
// has the same length and index as the input. This keeps the series
// directly convolvable against a wavelet without re-alignment.
package reflectivity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-seis/seis/curve"
)

// Errors returned by Compute.
var (
	ErrZeroOrNegativeImpedance = errors.New("reflectivity: impedance must be positive")
	ErrCurveTooShort           = errors.New("reflectivity: need at least two impedance samples")
)

// Compute derives the reflection-coefficient series from an acoustic
// impedance curve. It works in either domain and never mutates its input.
func Compute(ai *curve.Curve) (*curve.Curve, error) {
	if ai.Len() < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrCurveTooShort, ai.Len())
	}

	z := ai.Values
	rc := make([]float64, len(z))
	rc[0] = 0

	for i := 0; i < len(z)-1; i++ {
		if z[i] <= 0 {
			return nil, fmt.Errorf("%w: AI[%d] = %g", ErrZeroOrNegativeImpedance, i, z[i])
		}
		sum := z[i] + z[i+1]
		if sum == 0 {
			return nil, fmt.Errorf("%w: AI[%d]+AI[%d] = 0", ErrZeroOrNegativeImpedance, i, i+1)
		}
		rc[i+1] = (z[i+1] - z[i]) / sum
	}
	if last := z[len(z)-1]; last <= 0 {
		return nil, fmt.Errorf("%w: AI[%d] = %g", ErrZeroOrNegativeImpedance, len(z)-1, last)
	}

	out, err := curve.New("RC", "", ai.Domain, ai.Index, rc)
	if err != nil {
		return nil, fmt.Errorf("reflectivity: %w", err)
	}
	return out, nil
}
