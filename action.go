package navhist

import "github.com/dshills/navhist/undo"

// SnapshotAction restores whole-stack state captured around a single
// NavigateTo. Execute applies the after state (redo); Undo applies the
// before state. Because each action fully determines the resulting state,
// actions carry no dependencies on each other; the coordinator's strict
// stack order is all the correctness they need.
type SnapshotAction struct {
	stack  *Stack
	before Snapshot
	after  Snapshot
	desc   string
}

// Compile-time check that *SnapshotAction implements undo.Action.
var _ undo.Action = (*SnapshotAction)(nil)

// NewSnapshotAction builds an action from a before/after snapshot pair.
// Exposed for callers that drive their own undo integration instead of
// attaching a coordinator through WithUndo.
func NewSnapshotAction(s *Stack, before, after Snapshot, description string) *SnapshotAction {
	return newSnapshotAction(s, before, after, description)
}

func newSnapshotAction(s *Stack, before, after Snapshot, description string) *SnapshotAction {
	return &SnapshotAction{
		stack:  s,
		before: before,
		after:  after,
		desc:   description,
	}
}

// Execute restores the after state.
func (a *SnapshotAction) Execute() error {
	return a.stack.Restore(a.after)
}

// Undo restores the before state.
func (a *SnapshotAction) Undo() error {
	return a.stack.Restore(a.before)
}

// Description returns a human-readable description of the navigation.
func (a *SnapshotAction) Description() string {
	return a.desc
}
