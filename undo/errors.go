package undo

import "errors"

// Sentinel errors for the undo coordinator.
var (
	// ErrInvalidLimit is returned when a coordinator is constructed with a
	// non-positive entry limit.
	ErrInvalidLimit = errors.New("undo limit must be positive")

	// ErrNilAction is returned when a nil action is registered.
	ErrNilAction = errors.New("action cannot be nil")
)
