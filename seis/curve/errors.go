package curve

import "errors"

// Errors returned by curve construction and store access.
var (
	ErrDimensionMismatch = errors.New("curve: values and index must have same length")
	ErrNonMonotonicIndex = errors.New("curve: index must be strictly increasing")
	ErrCurveNotFound     = errors.New("curve: curve not found")
	ErrAxisMismatch      = errors.New("curve: index does not match the domain axis")
	ErrEmptyCurve        = errors.New("curve: curve must not be empty")
	ErrDuplicateName     = errors.New("curve: curve with this name already registered")
)
