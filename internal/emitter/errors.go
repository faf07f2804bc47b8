package emitter

import "errors"

// Configuration errors, surfaced at the setter/constructor boundary so a
// violated range invariant never reaches the sampling routines.
var (
	// ErrRangeInverted indicates min > max on a configured range.
	ErrRangeInverted = errors.New("emitter: range min exceeds max")

	// ErrNegativeRate indicates a negative emission rate.
	ErrNegativeRate = errors.New("emitter: emission rate must be non-negative")

	// ErrNegativeVariance indicates a variance vector with a negative component.
	ErrNegativeVariance = errors.New("emitter: variance components must be non-negative")

	// ErrInvalidCapacity indicates a non-positive pool capacity.
	ErrInvalidCapacity = errors.New("emitter: capacity must be positive")
)
