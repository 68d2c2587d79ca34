// Package wavelet synthesizes zero-phase analytic wavelets for synthetic
// seismogram generation.
//
// Wavelets are sampled over a symmetric window around t = 0 and always have
// odd length, so the center sample sits exactly at zero time and
// convolution alignment is unambiguous. Frequency and sample interval must
// use consistent units: hertz with an interval in seconds, or equivalently
// cycles-per-millisecond with an interval in milliseconds.
package wavelet

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Wavelet is a short, symmetric-around-center sequence sampled at a fixed
// interval. It has no dependency on any well.
type Wavelet struct {
	Name      string
	Frequency float64
	Interval  float64
	Samples   []float64
}

// Option configures wavelet generation.
type Option func(*config)

type config struct {
	normalizePeak float64
}

// WithNormalize scales the generated wavelet so its absolute peak equals
// peak. Non-positive values leave the wavelet unscaled.
func WithNormalize(peak float64) Option {
	return func(c *config) {
		if peak > 0 {
			c.normalizePeak = peak
		}
	}
}

// Ricker generates a Ricker (Mexican hat) wavelet with the given dominant
// frequency, sampled at interval dt over a symmetric window of the given
// duration:
//
//	w(t) = (1 - 2*(pi*f*t)^2) * exp(-(pi*f*t)^2)
//
// The sample count is floor(duration/dt)+1; if that count is even, one
// sample is added to restore symmetry around t = 0.
func Ricker(freq, dt, duration float64, opts ...Option) (*Wavelet, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidFrequency, freq)
	}
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSampleInterval, dt)
	}
	if duration <= 0 || duration < dt {
		return nil, fmt.Errorf("%w: duration %g at interval %g", ErrInvalidDuration, duration, dt)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := int(math.Floor(duration/dt)) + 1
	if n%2 == 0 {
		n++
	}
	center := (n - 1) / 2

	samples := make([]float64, n)
	for i := range samples {
		t := float64(i-center) * dt
		arg := math.Pi * freq * t
		argSq := arg * arg
		samples[i] = (1 - 2*argSq) * math.Exp(-argSq)
	}

	if cfg.normalizePeak > 0 {
		if peak := vecmath.MaxAbs(samples); peak > 0 {
			vecmath.ScaleBlockInPlace(samples, cfg.normalizePeak/peak)
		}
	}

	return &Wavelet{
		Name:      fmt.Sprintf("ricker_%g", freq),
		Frequency: freq,
		Interval:  dt,
		Samples:   samples,
	}, nil
}

// Len returns the number of samples.
func (w *Wavelet) Len() int { return len(w.Samples) }

// Times returns the sample times of the symmetric window, centered at zero.
func (w *Wavelet) Times() []float64 {
	center := (len(w.Samples) - 1) / 2
	out := make([]float64, len(w.Samples))
	for i := range out {
		out[i] = float64(i-center) * w.Interval
	}
	return out
}
