package synth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seis/seis/core"
	"github.com/cwbudde/algo-seis/seis/curve"
	"github.com/cwbudde/algo-seis/seis/wavelet"
)

// Errors returned by trace building.
var (
	ErrSampleRateMismatch = errors.New("synth: reflectivity and wavelet sample intervals disagree")
	ErrIrregularSeries    = errors.New("synth: reflectivity series must be regularly sampled")
	ErrEmptyInput         = errors.New("synth: empty input")
	ErrEmptyKernel        = errors.New("synth: empty wavelet")
)

// Build convolves a reflectivity series with a wavelet and returns the
// synthetic trace. The trace shares the reflectivity curve's index and
// domain; neither input is modified.
func Build(rc *curve.Curve, w *wavelet.Wavelet) (*curve.Curve, error) {
	if rc.Len() == 0 {
		return nil, ErrEmptyInput
	}
	if w == nil || len(w.Samples) == 0 {
		return nil, ErrEmptyKernel
	}

	rcStep := rc.SampleInterval()
	if rc.Len() > 1 && rcStep == 0 {
		return nil, fmt.Errorf("%w: %q", ErrIrregularSeries, rc.Name)
	}
	if rc.Len() > 1 && !core.NearlyEqual(rcStep, w.Interval, 1e-9*w.Interval) {
		return nil, fmt.Errorf("%w: %g vs %g", ErrSampleRateMismatch, rcStep, w.Interval)
	}

	full, err := convolve(rc.Values, w.Samples)
	if err != nil {
		return nil, err
	}
	trace := trimSame(full, rc.Len(), len(w.Samples))

	out, err := curve.New("synthetic", rc.Unit, rc.Domain, rc.Index, trace)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	return out, nil
}

// convolve performs full linear convolution with automatic algorithm
// selection: direct time-domain for short kernels, zero-padded FFT for
// longer ones.
func convolve(a, b []float64) ([]float64, error) {
	// Ensure a is the longer signal.
	if len(b) > len(a) {
		a, b = b, a
	}

	const directThreshold = 64
	if len(b) <= directThreshold {
		return direct(a, b)
	}
	return fftConvolve(a, b)
}

// direct performs O(N*M) time-domain linear convolution, returning a slice
// of length len(a)+len(b)-1.
func direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)

	// Vectorized path for kernels of at least a few samples.
	const simdThreshold = 4
	if len(b) >= simdThreshold {
		temp := make([]float64, len(b))
		for i := range a {
			vecmath.ScaleBlock(temp, b, a[i])
			vecmath.AddBlockInPlace(result[i:i+len(b)], temp)
		}
		return result, nil
	}

	for i := range a {
		for j := range b {
			result[i+j] += a[i] * b[j]
		}
	}
	return result, nil
}

// trimSame extracts the centered same-length portion of a full convolution
// result so the wavelet's center sample aligns with each series position.
func trimSame(full []float64, seriesLen, kernelLen int) []float64 {
	start := (kernelLen - 1) / 2
	out := make([]float64, seriesLen)
	copy(out, full[start:start+seriesLen])
	return out
}
