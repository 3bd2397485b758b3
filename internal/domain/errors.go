package domain

import "errors"

var (
	// ErrInvalidTimeWindow is returned for a non-positive time window,
	// before any analyzer runs.
	ErrInvalidTimeWindow = errors.New("invalid time window")
	// ErrSimulatedFailure is returned for the reserved sentinel window value,
	// used by downstream consumers to exercise their failure paths.
	ErrSimulatedFailure = errors.New("simulated error for testing purposes")
)
