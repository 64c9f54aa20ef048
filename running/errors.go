// Package running models races, recorded runnings and runner profiles, and
// derives average pace, speed and split plans from them.
package running

import "errors"

var (
	// ErrNegativeDistance indicates a race constructed with a negative distance
	ErrNegativeDistance = errors.New("race distance must not be negative")

	// ErrZeroDistance indicates a pace computed against a zero-distance race
	ErrZeroDistance = errors.New("race distance must be greater than zero")

	// ErrNegativeDuration indicates a running constructed with a negative duration
	ErrNegativeDuration = errors.New("running duration must not be negative")

	// ErrZeroDuration indicates a speed computed from a zero-duration running
	ErrZeroDuration = errors.New("running duration must be greater than zero")

	// ErrUnknownSystem indicates a unit system name that is neither metric nor imperial
	ErrUnknownSystem = errors.New("unknown unit system")

	// ErrPaceVariation indicates a split variation degree larger than the average pace
	ErrPaceVariation = errors.New("pace variation degree exceeds average pace")

	// ErrInvalidProfile indicates a runner profile with non-positive weight or height
	ErrInvalidProfile = errors.New("runner weight and height must be greater than zero")

	// ErrNegativeAge indicates a runner profile with a negative age
	ErrNegativeAge = errors.New("runner age must not be negative")
)
