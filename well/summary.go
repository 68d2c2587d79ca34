package well

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-seis/seis/curve"
)

// ErrNoIntervals reports a summary request on a well with fewer than two
// formation tops.
var ErrNoIntervals = errors.New("well: need at least two tops to form intervals")

// SummaryConfig selects the cutoff curves for interval summaries. The
// Vshale curve is required; net pay is computed only when all three of the
// porosity and saturation fields are set alongside it.
type SummaryConfig struct {
	VshaleCurve  string
	VshaleCutoff float64

	PorosityCurve    string
	PorosityCutoff   float64
	SaturationCurve  string
	SaturationCutoff float64

	// AverageCurves lists curves to average over each interval, skipping
	// NaN samples.
	AverageCurves []string
}

// IntervalSummary holds the net-sand and optional net-pay figures for one
// top-to-top interval. NetPay is NaN when pay cutoffs were not configured;
// NetToGross is NaN for a degenerate interval.
type IntervalSummary struct {
	Top       string
	Base      string
	TopDepth  float64
	BaseDepth float64

	GrossThickness float64
	NetSand        float64
	NetToGross     float64
	NetPay         float64

	Averages map[string]float64
}

// SummarizeIntervals computes thickness, net sand, optional net pay, and
// average properties for every interval between consecutive tops. Samples
// belong to an interval when top <= depth < base. Intervals containing no
// samples are skipped.
func (w *Well) SummarizeIntervals(cfg SummaryConfig) ([]IntervalSummary, error) {
	intervals := w.Intervals()
	if len(intervals) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoIntervals, w.Header.Name)
	}

	vsh, err := w.Curves.Curve(cfg.VshaleCurve, curve.Depth)
	if err != nil {
		return nil, err
	}

	wantPay := cfg.PorosityCurve != "" && cfg.SaturationCurve != ""
	var phi, sw *curve.Curve
	if wantPay {
		if phi, err = w.Curves.Curve(cfg.PorosityCurve, curve.Depth); err != nil {
			return nil, err
		}
		if sw, err = w.Curves.Curve(cfg.SaturationCurve, curve.Depth); err != nil {
			return nil, err
		}
	}

	avgs := make([]*curve.Curve, len(cfg.AverageCurves))
	for i, name := range cfg.AverageCurves {
		if avgs[i], err = w.Curves.Curve(name, curve.Depth); err != nil {
			return nil, err
		}
	}

	depth := vsh.Index
	out := make([]IntervalSummary, 0, len(intervals))
	for _, iv := range intervals {
		first, last := sampleRange(depth, iv.TopDepth, iv.BaseDepth)
		if first >= last {
			continue
		}

		s := IntervalSummary{
			Top:       iv.TopName,
			Base:      iv.BaseName,
			TopDepth:  iv.TopDepth,
			BaseDepth: iv.BaseDepth,
			NetPay:    math.NaN(),
			Averages:  make(map[string]float64, len(avgs)),
		}

		step := medianStep(depth[first:last])
		s.GrossThickness = depth[last-1] - depth[first] + step

		netSamples := 0
		for i := first; i < last; i++ {
			if vsh.Values[i] < cfg.VshaleCutoff {
				netSamples++
			}
		}
		s.NetSand = float64(netSamples) * step
		if s.GrossThickness > 0 {
			s.NetToGross = s.NetSand / s.GrossThickness
		} else {
			s.NetToGross = math.NaN()
		}

		if wantPay {
			paySamples := 0
			for i := first; i < last; i++ {
				if vsh.Values[i] < cfg.VshaleCutoff &&
					phi.Values[i] > cfg.PorosityCutoff &&
					sw.Values[i] < cfg.SaturationCutoff {
					paySamples++
				}
			}
			s.NetPay = float64(paySamples) * step
		}

		for i, c := range avgs {
			s.Averages[cfg.AverageCurves[i]] = meanValid(c.Values[first:last])
		}

		out = append(out, s)
	}

	return out, nil
}

// sampleRange returns the half-open index range of depth samples with
// top <= depth < base. The axis is strictly increasing.
func sampleRange(depth []float64, top, base float64) (int, int) {
	first := sort.SearchFloat64s(depth, top)
	last := sort.SearchFloat64s(depth, base)
	return first, last
}

// medianStep returns the median depth increment of the samples, or 0 for
// fewer than two samples.
func medianStep(depth []float64) float64 {
	if len(depth) < 2 {
		return 0
	}

	steps := make([]float64, len(depth)-1)
	for i := 1; i < len(depth); i++ {
		steps[i-1] = depth[i] - depth[i-1]
	}
	sort.Float64s(steps)

	mid := len(steps) / 2
	if len(steps)%2 == 1 {
		return steps[mid]
	}
	return (steps[mid-1] + steps[mid]) / 2
}

// meanValid averages the non-NaN samples, or NaN if none are valid.
func meanValid(values []float64) float64 {
	sum, count := 0.0, 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
