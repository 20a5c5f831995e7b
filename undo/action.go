package undo

import "time"

// Action represents a reversible operation that can be registered with a
// Coordinator.
type Action interface {
	// Execute applies the action's effect. Used for redo.
	Execute() error

	// Undo reverses the action's effect.
	Undo() error

	// Description returns a human-readable description of the action.
	Description() string
}

// ActionInfo describes a registered action without exposing it.
type ActionInfo struct {
	Description string
	Timestamp   time.Time
}
