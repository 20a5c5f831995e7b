package persist

import "context"

// Gateway stores and retrieves a single history snapshot.
//
// Save and Load are the only suspension points in the history core; both
// honor context cancellation, which aborts the pending I/O but never
// mutates in-memory state.
type Gateway interface {
	// Save persists the snapshot, replacing any previously saved one.
	// I/O failures propagate to the caller.
	Save(ctx context.Context, snap Snapshot) error

	// Load retrieves the stored snapshot. The second return value is false
	// when no usable snapshot exists, uniformly covering "never saved" and
	// "stored data could not be parsed".
	Load(ctx context.Context) (Snapshot, bool, error)
}
