package navhist

import "errors"

// Sentinel errors for stack operations.
var (
	// ErrNilItem is returned when a nil item is passed to NavigateTo.
	ErrNilItem = errors.New("item cannot be nil")

	// ErrCursorRange is returned when a snapshot is constructed or restored
	// with a cursor inconsistent with its items.
	ErrCursorRange = errors.New("cursor out of range")

	// ErrNoGateway is returned by Save and Load when no persistence gateway
	// was configured.
	ErrNoGateway = errors.New("no persistence gateway configured")
)
