package synth

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// fftConvolve performs full linear convolution via a single zero-padded
// FFT round trip. Reflectivity series run to a few thousand samples and
// wavelets to a few hundred, so one transform of the padded length is
// simpler and no slower than streaming the series in blocks.
func fftConvolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	outLen := len(signal) + len(kernel) - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("synth: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	for i, v := range signal {
		a[i] = complex(v, 0)
	}
	b := make([]complex128, fftSize)
	for i, v := range kernel {
		b[i] = complex(v, 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return nil, fmt.Errorf("synth: forward FFT failed: %w", err)
	}
	if err := plan.Forward(b, b); err != nil {
		return nil, fmt.Errorf("synth: forward FFT failed: %w", err)
	}
	for i := range a {
		a[i] *= b[i]
	}
	if err := plan.Inverse(a, a); err != nil {
		return nil, fmt.Errorf("synth: inverse FFT failed: %w", err)
	}

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(a[i])
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
