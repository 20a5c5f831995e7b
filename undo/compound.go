package undo

import (
	"errors"
	"fmt"
)

// CompoundAction groups multiple actions as one undo unit.
type CompoundAction struct {
	Name    string
	Actions []Action
}

// NewCompoundAction creates a new compound action.
func NewCompoundAction(name string, actions ...Action) *CompoundAction {
	return &CompoundAction{
		Name:    name,
		Actions: actions,
	}
}

// Execute runs all actions in order.
// On failure, actions that already ran are undone in reverse order. A step
// that also fails to roll back is reported alongside the original error;
// its effect remains applied.
func (c *CompoundAction) Execute() error {
	for i, a := range c.Actions {
		if err := a.Execute(); err != nil {
			err = fmt.Errorf("compound action %q step %d: %w", c.Name, i, err)
			for j := i - 1; j >= 0; j-- {
				if undoErr := c.Actions[j].Undo(); undoErr != nil {
					err = errors.Join(err, fmt.Errorf("roll back step %d: %w", j, undoErr))
				}
			}
			return err
		}
	}
	return nil
}

// Undo reverses all actions in reverse order.
func (c *CompoundAction) Undo() error {
	for i := len(c.Actions) - 1; i >= 0; i-- {
		if err := c.Actions[i].Undo(); err != nil {
			return fmt.Errorf("undo compound action %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound action's name.
func (c *CompoundAction) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Actions) == 1 {
		return c.Actions[0].Description()
	}
	return fmt.Sprintf("%d actions", len(c.Actions))
}

// Add appends an action to the compound action.
func (c *CompoundAction) Add(a Action) {
	c.Actions = append(c.Actions, a)
}

// IsEmpty returns true if the compound action has no actions.
func (c *CompoundAction) IsEmpty() bool {
	return len(c.Actions) == 0
}

var _ Action = (*CompoundAction)(nil)
