// Package interp provides monotonic piecewise-linear interpolation over
// irregularly sampled control points.
//
// Two extrapolation policies are supported for queries outside the control
// range:
//
//   - [ExtrapolateFlat]:  hold the nearest edge value (log-curve resampling)
//   - [ExtrapolateSlope]: continue the slope of the nearest segment
//     (time-depth relationships, which are locally near-linear)
//
// The policy is fixed at construction so the two code paths cannot be
// conflated at a call site.
package interp
