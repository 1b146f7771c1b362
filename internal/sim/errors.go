package sim

import "errors"

// Domain errors for simulation runs.
var (
	// ErrInvalidHorizon indicates a non-positive simulation horizon.
	ErrInvalidHorizon = errors.New("sim: horizon must be positive")

	// ErrInvalidRunCount indicates a non-positive campaign run count.
	ErrInvalidRunCount = errors.New("sim: run count must be positive")
)
