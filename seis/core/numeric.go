package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsStrictlyIncreasing reports whether xs is strictly monotonically increasing.
// Sequences shorter than two samples are trivially increasing. Any NaN sample
// fails the check: NaN is incomparable, so the test is the negated form.
func IsStrictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return false
		}
	}

	return true
}

// ConstantStep returns the sampling interval of xs if all consecutive
// differences agree within a relative tolerance, and 0 if the sequence is
// irregularly sampled or has fewer than two samples.
func ConstantStep(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	step := xs[1] - xs[0]
	for i := 2; i < len(xs); i++ {
		if !NearlyEqual(xs[i]-xs[i-1], step, 1e-9*math.Abs(step)) {
			return 0
		}
	}

	return step
}
