package wavelet

import "errors"

// Errors returned by wavelet generation.
var (
	ErrInvalidFrequency      = errors.New("wavelet: dominant frequency must be > 0")
	ErrInvalidSampleInterval = errors.New("wavelet: sample interval must be > 0")
	ErrInvalidDuration       = errors.New("wavelet: duration must be >= one sample interval")
)
