package core

import "errors"

// ---------------------------------------------------------------------------
// Sentinel errors – exported so callers can compare with errors.Is()
// ---------------------------------------------------------------------------
var (
	// ErrInvalidOption reports an option outside its indicator-specific range.
	ErrInvalidOption = errors.New("invalid option")
	// ErrNotFound reports an unknown indicator name.
	ErrNotFound = errors.New("indicator not found")
	// ErrInvalidInput reports a channel or option count mismatch, or input
	// channels of unequal length.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientData reports input no longer than the lookback.
	ErrInsufficientData = errors.New("insufficient data")
)
