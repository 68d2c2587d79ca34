// Package timedepth converts curves between the depth and time domains
// using a sparse checkshot survey.
//
// Conversion is a two-stage interpolation. First, each input index sample
// is mapped through the piecewise-linear checkshot relationship (slope
// extrapolation outside the surveyed range, since time-depth trends are
// locally near-linear). Because the input sampling is in general irregular,
// the mapped index is irregular too, so a second linear interpolation pass
// resamples the converted curve onto a regular output grid at a
// caller-specified interval.
//
// The intermediate mapped index must remain strictly increasing; degenerate
// checkshot data that folds the mapping is rejected rather than repaired.
package timedepth
