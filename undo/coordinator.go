package undo

import (
	"fmt"
	"time"
)

// entry wraps a registered action with metadata.
type entry struct {
	action    Action
	timestamp time.Time
}

// Coordinator manages a bounded, linear undo/redo timeline.
//
// Not safe for concurrent use; see the package documentation.
type Coordinator struct {
	undoStack []*entry
	redoStack []*entry
	limit     int

	listeners []listener
	nextSubID uint64
}

// NewCoordinator creates a coordinator that retains at most limit undoable
// actions. A non-positive limit is a construction failure, never silently
// clamped.
func NewCoordinator(limit int) (*Coordinator, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return &Coordinator{limit: limit}, nil
}

// Register pushes an action onto the undo stack and clears the redo stack.
// Registering a new action destroys any pending redo continuation. If the
// undo stack exceeds the limit, the oldest entries are evicted.
func (c *Coordinator) Register(a Action) error {
	if a == nil {
		return ErrNilAction
	}

	c.undoStack = append(c.undoStack, &entry{
		action:    a,
		timestamp: time.Now(),
	})
	c.redoStack = nil

	if len(c.undoStack) > c.limit {
		excess := len(c.undoStack) - c.limit
		c.undoStack = c.undoStack[excess:]
	}

	c.notify()
	return nil
}

// Undo reverses the most recently registered action.
// Returns (false, nil) when there is nothing to undo. If the action's Undo
// fails, the entry is restored to the undo stack and the error propagates.
func (c *Coordinator) Undo() (bool, error) {
	if len(c.undoStack) == 0 {
		return false, nil
	}

	e := c.undoStack[len(c.undoStack)-1]
	c.undoStack = c.undoStack[:len(c.undoStack)-1]

	if err := e.action.Undo(); err != nil {
		// Restore entry on failure
		c.undoStack = append(c.undoStack, e)
		return false, fmt.Errorf("undo %q: %w", e.action.Description(), err)
	}

	c.redoStack = append(c.redoStack, e)
	c.notify()
	return true, nil
}

// Redo re-applies the most recently undone action.
// Returns (false, nil) when there is nothing to redo. If the action's
// Execute fails, the entry is restored to the redo stack and the error
// propagates.
func (c *Coordinator) Redo() (bool, error) {
	if len(c.redoStack) == 0 {
		return false, nil
	}

	e := c.redoStack[len(c.redoStack)-1]
	c.redoStack = c.redoStack[:len(c.redoStack)-1]

	if err := e.action.Execute(); err != nil {
		// Restore entry on failure
		c.redoStack = append(c.redoStack, e)
		return false, fmt.Errorf("redo %q: %w", e.action.Description(), err)
	}

	c.undoStack = append(c.undoStack, e)
	c.notify()
	return true, nil
}

// CanUndo returns true if undo is available.
func (c *Coordinator) CanUndo() bool {
	return len(c.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (c *Coordinator) CanRedo() bool {
	return len(c.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (c *Coordinator) UndoCount() int {
	return len(c.undoStack)
}

// RedoCount returns the number of redo operations available.
func (c *Coordinator) RedoCount() int {
	return len(c.redoStack)
}

// Clear removes all undo/redo history.
func (c *Coordinator) Clear() {
	c.undoStack = nil
	c.redoStack = nil
	c.notify()
}

// Limit returns the maximum number of undoable actions retained.
func (c *Coordinator) Limit() int {
	return c.limit
}

// SetLimit changes the maximum number of undoable actions.
// If the current stack is larger, the oldest entries are evicted.
func (c *Coordinator) SetLimit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	c.limit = limit
	if len(c.undoStack) > limit {
		excess := len(c.undoStack) - limit
		c.undoStack = c.undoStack[excess:]
		c.notify()
	}
	return nil
}

// UndoInfo returns info about available undo operations, oldest first.
func (c *Coordinator) UndoInfo() []ActionInfo {
	return infoOf(c.undoStack)
}

// RedoInfo returns info about available redo operations, oldest first.
func (c *Coordinator) RedoInfo() []ActionInfo {
	return infoOf(c.redoStack)
}

// PeekUndo returns info about the next undo operation without removing it.
func (c *Coordinator) PeekUndo() (ActionInfo, bool) {
	return peek(c.undoStack)
}

// PeekRedo returns info about the next redo operation without removing it.
func (c *Coordinator) PeekRedo() (ActionInfo, bool) {
	return peek(c.redoStack)
}

func infoOf(stack []*entry) []ActionInfo {
	result := make([]ActionInfo, len(stack))
	for i, e := range stack {
		result[i] = ActionInfo{
			Description: e.action.Description(),
			Timestamp:   e.timestamp,
		}
	}
	return result
}

func peek(stack []*entry) (ActionInfo, bool) {
	if len(stack) == 0 {
		return ActionInfo{}, false
	}
	e := stack[len(stack)-1]
	return ActionInfo{
		Description: e.action.Description(),
		Timestamp:   e.timestamp,
	}, true
}
