// Package undo provides a bounded, linear undo/redo timeline.
//
// The Coordinator owns two LIFO stacks of registered actions. Registering a
// new action clears the redo stack: the timeline is linear and never
// branches. The undo stack is bounded; once the limit is exceeded the oldest
// entry is evicted and can no longer be undone.
//
// # Actions
//
// Actions implement the Action interface with Execute and Undo methods.
// Because the coordinator invokes actions in strict stack order, an action
// only needs to know how to apply and reverse its own effect. Actions that
// restore whole state (rather than deltas) need no dependency tracking at
// all.
//
// # Failure handling
//
// When an action's Undo or Execute fails, the coordinator puts the entry
// back where it came from and propagates the error. The bookkeeping stays
// consistent even though the requested operation did not complete.
//
// # Grouping
//
// CompoundAction combines several actions into one undo unit:
//
//	group := undo.NewCompoundAction("Reorganize",
//	    moveAction, renameAction)
//	coord.Register(group)
//
// # Concurrency
//
// The Coordinator is not safe for concurrent use. A single logical owner
// must drive all calls, or serialize them externally.
package undo
