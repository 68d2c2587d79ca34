package well

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-seis/seis/curve"
)

// summaryWell builds a well with ten samples at 1 m spacing and two
// intervals: A [1000, 1005) and B [1005, 1010).
func summaryWell(t *testing.T) *Well {
	t.Helper()

	depth := []float64{1000, 1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009}
	vsh := []float64{0.1, 0.2, 0.6, 0.1, 0.7, 0.3, 0.3, 0.8, 0.2, 0.9}
	phi := []float64{0.25, 0.05, 0.22, 0.18, 0.20, 0.24, 0.08, 0.21, 0.19, 0.02}
	sw := []float64{0.3, 0.4, 0.2, 0.9, 0.5, 0.4, 0.3, 0.6, 0.2, 0.8}
	gr := []float64{40, 50, 110, 45, math.NaN(), 60, 55, 120, 50, 130}

	w := New(Header{Name: "DISCOVERY-1"})
	require.NoError(t, w.Curves.AddCurve("VSH", vsh, depth, "v/v", curve.Depth))
	require.NoError(t, w.Curves.AddCurve("PHIE", phi, depth, "v/v", curve.Depth))
	require.NoError(t, w.Curves.AddCurve("SW", sw, depth, "v/v", curve.Depth))
	require.NoError(t, w.Curves.AddCurve("GR", gr, depth, "gAPI", curve.Depth))

	w.AddTop("A", 1000)
	w.AddTop("B", 1005)
	w.AddTop("C", 1010)
	return w
}

func TestSummarizeIntervalsNetSand(t *testing.T) {
	w := summaryWell(t)

	got, err := w.SummarizeIntervals(SummaryConfig{
		VshaleCurve:  "VSH",
		VshaleCutoff: 0.5,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	a := got[0]
	assert.Equal(t, "A", a.Top)
	assert.Equal(t, "B", a.Base)
	// Five 1 m samples: four below the 4 m span plus one median step.
	assert.InDelta(t, 5.0, a.GrossThickness, 1e-12)
	// vsh 0.1, 0.2, 0.1 pass the 0.5 cutoff.
	assert.InDelta(t, 3.0, a.NetSand, 1e-12)
	assert.InDelta(t, 0.6, a.NetToGross, 1e-12)
	assert.True(t, math.IsNaN(a.NetPay), "no pay cutoffs configured")

	b := got[1]
	assert.Equal(t, "B", b.Top)
	assert.InDelta(t, 5.0, b.GrossThickness, 1e-12)
	assert.InDelta(t, 3.0, b.NetSand, 1e-12)
}

func TestSummarizeIntervalsNetPay(t *testing.T) {
	w := summaryWell(t)

	got, err := w.SummarizeIntervals(SummaryConfig{
		VshaleCurve:      "VSH",
		VshaleCutoff:     0.5,
		PorosityCurve:    "PHIE",
		PorosityCutoff:   0.1,
		SaturationCurve:  "SW",
		SaturationCutoff: 0.65,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Interval A: of the sand samples at 1000, 1001, 1003, only 1000 also
	// passes phi > 0.1 and sw < 0.65 (1001 fails phi, 1003 fails sw).
	assert.InDelta(t, 1.0, got[0].NetPay, 1e-12)
	// Interval B: samples at 1005 and 1008 pass all three; 1006 fails phi.
	assert.InDelta(t, 2.0, got[1].NetPay, 1e-12)
}

func TestSummarizeIntervalsAverages(t *testing.T) {
	w := summaryWell(t)

	got, err := w.SummarizeIntervals(SummaryConfig{
		VshaleCurve:   "VSH",
		VshaleCutoff:  0.5,
		AverageCurves: []string{"GR", "PHIE"},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// The NaN GR sample at 1004 is skipped: (40+50+110+45)/4.
	assert.InDelta(t, 61.25, got[0].Averages["GR"], 1e-12)
	assert.InDelta(t, 0.18, got[0].Averages["PHIE"], 1e-12)
	assert.InDelta(t, 83.0, got[1].Averages["GR"], 1e-12)
}

func TestSummarizeIntervalsErrors(t *testing.T) {
	w := summaryWell(t)

	_, err := w.SummarizeIntervals(SummaryConfig{VshaleCurve: "MISSING"})
	assert.ErrorIs(t, err, curve.ErrCurveNotFound)

	_, err = w.SummarizeIntervals(SummaryConfig{
		VshaleCurve:   "VSH",
		AverageCurves: []string{"MISSING"},
	})
	assert.ErrorIs(t, err, curve.ErrCurveNotFound)

	empty := New(Header{Name: "EMPTY"})
	_, err = empty.SummarizeIntervals(SummaryConfig{VshaleCurve: "VSH"})
	assert.ErrorIs(t, err, ErrNoIntervals)
}

func TestSummarizeIntervalsSkipsEmptyInterval(t *testing.T) {
	w := summaryWell(t)
	// Tops above the logged section form an interval with no samples.
	w.AddTop("SHALLOW_A", 100)
	w.AddTop("SHALLOW_B", 200)

	got, err := w.SummarizeIntervals(SummaryConfig{
		VshaleCurve:  "VSH",
		VshaleCutoff: 0.5,
	})
	require.NoError(t, err)
	// SHALLOW_A–SHALLOW_B is dropped; SHALLOW_B–A covers no samples either
	// since the axis begins exactly at top A's depth.
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Top)
}

func TestSummarizeIntervalsMedianStep(t *testing.T) {
	// Median step with an irregular axis: steps {1, 1, 3} give median 1.
	depth := []float64{2000, 2001, 2002, 2005}
	vsh := []float64{0.1, 0.9, 0.1, 0.2}

	w := New(Header{Name: "IRREGULAR-1"})
	require.NoError(t, w.Curves.AddCurve("VSH", vsh, depth, "v/v", curve.Depth))
	w.AddTop("TOP", 2000)
	w.AddTop("BASE", 2010)

	got, err := w.SummarizeIntervals(SummaryConfig{
		VshaleCurve:  "VSH",
		VshaleCutoff: 0.5,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.InDelta(t, 6.0, got[0].GrossThickness, 1e-12) // 5 m span + 1 m median step
	assert.InDelta(t, 3.0, got[0].NetSand, 1e-12)
}
