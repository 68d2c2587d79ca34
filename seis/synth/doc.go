// Package synth builds synthetic seismic traces by convolving a
// reflectivity series with a wavelet.
//
// The convolution runs in same-length mode: the wavelet's center sample is
// aligned with each reflectivity sample, so the output trace has exactly
// the length and index of the reflectivity series. The builder requires the
// two inputs to share one sample interval and never resamples silently — a
// rate mismatch almost always means a misconfigured time grid upstream, and
// hiding it would corrupt the trace plausibly.
//
// Short wavelets convolve directly in the time domain; long ones go through
// a zero-padded FFT. Both produce identical results within floating point
// tolerance.
package synth
