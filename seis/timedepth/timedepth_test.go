package timedepth

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-seis/seis/curve"
)

func surveyTable(t *testing.T) *Table {
	t.Helper()

	tbl, err := NewTable([]Checkshot{
		{Depth: 0, Time: 0},
		{Depth: 1000, Time: 500},
		{Depth: 2000, Time: 1100},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		shots   []Checkshot
		wantErr error
	}{
		{"too few", []Checkshot{{0, 0}}, ErrInsufficientControlPoints},
		{"empty", nil, ErrInsufficientControlPoints},
		{"duplicate depth", []Checkshot{{0, 0}, {0, 10}, {100, 20}}, ErrNonMonotonicCheckshots},
		{"decreasing time", []Checkshot{{0, 0}, {100, 50}, {200, 40}}, ErrNonMonotonicCheckshots},
		{"duplicate time", []Checkshot{{0, 0}, {100, 50}, {200, 50}}, ErrNonMonotonicCheckshots},
		{"NaN depth", []Checkshot{{0, 0}, {math.NaN(), 50}, {200, 100}}, ErrNonMonotonicCheckshots},
		{"NaN time", []Checkshot{{0, 0}, {100, math.NaN()}, {200, 100}}, ErrNonMonotonicCheckshots},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.shots)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTimeAtPiecewiseLinear(t *testing.T) {
	cv, err := NewConverter(surveyTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		depth    float64
		expected float64
	}{
		{0, 0},
		{500, 250},
		{1000, 500},
		{1500, 800},
		{2000, 1100},
	}

	for _, tt := range tests {
		if got := cv.TimeAt(tt.depth); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("TimeAt(%v) = %v, expected %v", tt.depth, got, tt.expected)
		}
	}
}

func TestSlopeExtrapolationOutsideSurvey(t *testing.T) {
	cv, err := NewConverter(surveyTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Below the first pair: first segment slope 0.5 ms/m.
	if got := cv.TimeAt(-100); math.Abs(got-(-50)) > 1e-9 {
		t.Errorf("TimeAt(-100) = %v, expected -50", got)
	}

	// Beyond the last pair: last segment slope 0.6 ms/m.
	if got := cv.TimeAt(2500); math.Abs(got-1400) > 1e-9 {
		t.Errorf("TimeAt(2500) = %v, expected 1400", got)
	}
}

func TestRoundTripAtControlPoints(t *testing.T) {
	tbl := surveyTable(t)
	cv, err := NewConverter(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, depth := range tbl.Depths() {
		back := cv.DepthAt(cv.TimeAt(depth))
		if math.Abs(back-depth) > 1e-9 {
			t.Errorf("pair %d: round trip of depth %v gave %v", i, depth, back)
		}
	}
}

func TestDepthToTime(t *testing.T) {
	cv, err := NewConverter(surveyTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := curve.New("AI", "kPa.s/m", curve.Depth,
		[]float64{0, 500, 1000, 1500, 2000},
		[]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := cv.DepthToTime(c, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Domain != curve.Time {
		t.Errorf("output domain = %s, expected time", out.Domain)
	}
	if got := out.Len(); got != 23 {
		t.Fatalf("output length = %d, expected 23 (grid 0..1100 step 50)", got)
	}
	if got := out.SampleInterval(); math.Abs(got-50) > 1e-9 {
		t.Errorf("output interval = %v, expected 50", got)
	}

	// Converted samples land at times [0, 250, 500, 800, 1100]; grid points
	// coinciding with them reproduce the source values.
	checks := map[int]float64{
		0:  1,   // t=0
		5:  2,   // t=250
		10: 3,   // t=500
		16: 4,   // t=800
		22: 5,   // t=1100
		2:  1.4, // t=100, inside the first converted segment
	}
	for i, want := range checks {
		if math.Abs(out.Values[i]-want) > 1e-9 {
			t.Errorf("values[%d] = %v, expected %v", i, out.Values[i], want)
		}
	}

	// Input untouched.
	if c.Domain != curve.Depth || c.Len() != 5 {
		t.Error("DepthToTime mutated the input curve")
	}
}

func TestDepthToTimeErrors(t *testing.T) {
	cv, err := NewConverter(surveyTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	depthCurve, err := curve.New("AI", "", curve.Depth, []float64{0, 1000}, []float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = cv.DepthToTime(depthCurve, 0)
	if !errors.Is(err, ErrInvalidSampleInterval) {
		t.Errorf("expected ErrInvalidSampleInterval, got %v", err)
	}

	_, err = cv.DepthToTime(depthCurve, 2000)
	if !errors.Is(err, ErrInvalidSampleInterval) {
		t.Errorf("interval exceeding converted range: expected ErrInvalidSampleInterval, got %v", err)
	}

	timeCurve, err := curve.New("AI", "", curve.Time, []float64{0, 1000}, []float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = cv.DepthToTime(timeCurve, 10)
	if !errors.Is(err, ErrWrongDomain) {
		t.Errorf("expected ErrWrongDomain, got %v", err)
	}
	_, err = cv.TimeToDepth(depthCurve, 10)
	if !errors.Is(err, ErrWrongDomain) {
		t.Errorf("expected ErrWrongDomain, got %v", err)
	}
}

func TestDegenerateTimeMapping(t *testing.T) {
	// The mapped times differ by far less than one ulp at 1e9, so distinct
	// depth samples collapse onto the same converted time.
	tbl, err := NewTable([]Checkshot{
		{Depth: 0, Time: 1e9},
		{Depth: 1e9, Time: 1e9 + 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cv, err := NewConverter(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, err := curve.New("AI", "", curve.Depth, []float64{1, 2, 3}, []float64{10, 20, 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = cv.DepthToTime(c, 0.001)
	if !errors.Is(err, ErrDegenerateTimeMapping) {
		t.Fatalf("expected ErrDegenerateTimeMapping, got %v", err)
	}
}

func TestCurveRoundTripAtCheckshotDepths(t *testing.T) {
	cv, err := NewConverter(surveyTable(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src, err := curve.New("AI", "", curve.Depth,
		[]float64{0, 1000, 2000},
		[]float64{10, 20, 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inTime, err := cv.DepthToTime(src, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := cv.TimeToDepth(inTime, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if back.Domain != curve.Depth {
		t.Fatalf("round trip domain = %s, expected depth", back.Domain)
	}

	// Values at the control depths survive the double conversion. Both
	// conversions are piecewise linear between samples that include the
	// control points, so only interpolation tolerance applies.
	for i, depth := range []float64{0, 1000, 2000} {
		want := src.Values[i]
		got := valueAt(t, back, depth)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("depth %v: got %v, expected %v", depth, got, want)
		}
	}
}

// valueAt linearly interpolates a curve at x for verification.
func valueAt(t *testing.T, c *curve.Curve, x float64) float64 {
	t.Helper()

	if x <= c.Index[0] {
		return c.Values[0]
	}
	for i := 1; i < c.Len(); i++ {
		if x <= c.Index[i] {
			f := (x - c.Index[i-1]) / (c.Index[i] - c.Index[i-1])
			return c.Values[i-1] + f*(c.Values[i]-c.Values[i-1])
		}
	}
	return c.Values[c.Len()-1]
}
