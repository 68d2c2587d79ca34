// Package pipeline chains the well-log stages into a synthetic seismogram:
// impedance from density and sonic, depth-to-time conversion through the
// well's checkshots, reflectivity, and convolution with a Ricker wavelet.
package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-seis/nomen"
	"github.com/cwbudde/algo-seis/petro"
	"github.com/cwbudde/algo-seis/seis/curve"
	"github.com/cwbudde/algo-seis/seis/reflectivity"
	"github.com/cwbudde/algo-seis/seis/synth"
	"github.com/cwbudde/algo-seis/seis/timedepth"
	"github.com/cwbudde/algo-seis/seis/wavelet"
	"github.com/cwbudde/algo-seis/unit"
	"github.com/cwbudde/algo-seis/well"
)

// Errors returned by the pipeline.
var (
	ErrCurveNotResolved = errors.New("pipeline: curve not resolved")
	ErrNoCheckshots     = errors.New("pipeline: well has no checkshot table")
	ErrAllSamplesNull   = errors.New("pipeline: curve has no valid samples")
)

// Config selects the input curves and wavelet parameters for a run.
// DensityCurve and SonicCurve name curves in the well's depth store; when
// Aliases is set they may instead name canonical log types resolved
// against the store's mnemonics. Units default to g/cm3 for density and
// us/ft for sonic when the curve does not declare one.
type Config struct {
	DensityCurve string
	SonicCurve   string

	// Frequency is the Ricker peak frequency in Hz. SampleInterval and
	// WaveletDuration are in the checkshot table's time unit.
	Frequency       float64
	SampleInterval  float64
	WaveletDuration float64

	Aliases *nomen.Nomenclature
	Units   *unit.Converter
}

// Result holds the intermediate and final products of one run. Impedance
// is in the depth domain; Reflectivity and Trace are on the regular time
// grid established by the checkshot conversion.
type Result struct {
	Impedance    *curve.Curve
	Reflectivity *curve.Curve
	Trace        *curve.Curve
	Wavelet      *wavelet.Wavelet
}

// Run computes a synthetic seismogram for one well.
func Run(w *well.Well, cfg Config) (*Result, error) {
	if w.Checkshots == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoCheckshots, w.Header.Name)
	}

	density, err := resolveCurve(w.Curves, cfg.DensityCurve, cfg.Aliases)
	if err != nil {
		return nil, err
	}
	sonic, err := resolveCurve(w.Curves, cfg.SonicCurve, cfg.Aliases)
	if err != nil {
		return nil, err
	}

	rho, err := toSI(density, "g/cm3", "kg/m3", cfg.Units)
	if err != nil {
		return nil, fmt.Errorf("pipeline: density %q: %w", density.Name, err)
	}
	velocity, err := sonicToVelocity(sonic, cfg.Units)
	if err != nil {
		return nil, fmt.Errorf("pipeline: sonic %q: %w", sonic.Name, err)
	}

	if err := fillGaps(rho); err != nil {
		return nil, fmt.Errorf("pipeline: density %q: %w", density.Name, err)
	}
	if err := fillGaps(velocity); err != nil {
		return nil, fmt.Errorf("pipeline: sonic %q: %w", sonic.Name, err)
	}

	aiValues, err := petro.AcousticImpedance(rho, velocity)
	if err != nil {
		return nil, fmt.Errorf("pipeline: impedance: %w", err)
	}
	ai, err := curve.New("AI", "kg/m2s", curve.Depth, density.Index, aiValues)
	if err != nil {
		return nil, fmt.Errorf("pipeline: impedance: %w", err)
	}

	conv, err := timedepth.NewConverter(w.Checkshots)
	if err != nil {
		return nil, fmt.Errorf("pipeline: checkshots: %w", err)
	}
	aiTime, err := conv.DepthToTime(ai, cfg.SampleInterval)
	if err != nil {
		return nil, fmt.Errorf("pipeline: depth to time: %w", err)
	}

	rc, err := reflectivity.Compute(aiTime)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reflectivity: %w", err)
	}

	wav, err := wavelet.Ricker(cfg.Frequency, cfg.SampleInterval, cfg.WaveletDuration)
	if err != nil {
		return nil, fmt.Errorf("pipeline: wavelet: %w", err)
	}

	trace, err := synth.Build(rc, wav)
	if err != nil {
		return nil, fmt.Errorf("pipeline: synthetic: %w", err)
	}

	return &Result{
		Impedance:    ai,
		Reflectivity: rc,
		Trace:        trace,
		Wavelet:      wav,
	}, nil
}

// resolveCurve looks a curve up by name, falling back to canonical log
// type matching when an alias nomenclature is configured.
func resolveCurve(store *curve.Store, name string, aliases *nomen.Nomenclature) (*curve.Curve, error) {
	if c, err := store.Curve(name, curve.Depth); err == nil {
		return c, nil
	}
	if aliases != nil {
		want := strings.ToUpper(name)
		for _, mnem := range store.Names(curve.Depth) {
			if aliases.LogType(mnem) == want {
				return store.Curve(mnem, curve.Depth)
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrCurveNotResolved, name)
}

// toSI converts a curve's values when its unit is recognized, otherwise
// the values pass through unchanged.
func toSI(c *curve.Curve, fallbackUnit, target string, units *unit.Converter) ([]float64, error) {
	from := c.Unit
	if from == "" {
		from = fallbackUnit
	}
	if units == nil || !units.Knows(from) {
		out := make([]float64, len(c.Values))
		copy(out, c.Values)
		return out, nil
	}
	return units.ConvertSlice(c.Values, from, target)
}

// sonicToVelocity converts a slowness log to velocity in m/s. Without a
// unit converter the curve is assumed to be us/ft sonic transit time.
func sonicToVelocity(c *curve.Curve, units *unit.Converter) ([]float64, error) {
	from := c.Unit
	if from == "" {
		from = "us/ft"
	}
	if units != nil && units.Knows(from) {
		return units.ConvertSlice(c.Values, from, "m/s")
	}
	return petro.VelocityFromSonic(c.Values)
}

// fillGaps replaces NaN samples in place: interior gaps are bridged
// linearly between the nearest valid neighbors, leading and trailing gaps
// take the nearest valid value.
func fillGaps(values []float64) error {
	first := -1
	for i, v := range values {
		if !math.IsNaN(v) {
			first = i
			break
		}
	}
	if first < 0 {
		return ErrAllSamplesNull
	}
	for i := 0; i < first; i++ {
		values[i] = values[first]
	}

	prev := first
	for i := first + 1; i < len(values); i++ {
		if math.IsNaN(values[i]) {
			continue
		}
		if i > prev+1 {
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				frac := float64(j-prev) / span
				values[j] = values[prev] + frac*(values[i]-values[prev])
			}
		}
		prev = i
	}
	for i := prev + 1; i < len(values); i++ {
		values[i] = values[prev]
	}
	return nil
}
