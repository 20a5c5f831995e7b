package navhist

import (
	"fmt"

	"github.com/dshills/navhist/item"
)

// Snapshot is a deep, aliasing-free copy of a stack's items and cursor at a
// point in time. Later mutation of the live stack never reaches a snapshot,
// and restoring a snapshot never hands the stack a shared slice.
type Snapshot struct {
	items  []*item.Item
	cursor int
}

// NewSnapshot builds a snapshot from the given items and cursor.
// The cursor must satisfy the stack invariant: -1 <= cursor < len(items),
// with -1 exactly when items is empty. Items are deep-copied.
func NewSnapshot(items []*item.Item, cursor int) (Snapshot, error) {
	if err := validateCursor(len(items), cursor); err != nil {
		return Snapshot{}, err
	}
	return snapshotOf(items, cursor), nil
}

// snapshotOf captures without validation; callers guarantee consistency.
func snapshotOf(items []*item.Item, cursor int) Snapshot {
	cp := make([]*item.Item, len(items))
	for i, it := range items {
		cp[i] = it.Clone()
	}
	return Snapshot{items: cp, cursor: cursor}
}

// Items returns the snapshot's entries in order. The returned slice is a
// copy; the items themselves are the snapshot's own and must be treated as
// read-only.
func (s Snapshot) Items() []*item.Item {
	cp := make([]*item.Item, len(s.items))
	copy(cp, s.items)
	return cp
}

// Cursor returns the snapshot's cursor position; -1 for an empty snapshot.
func (s Snapshot) Cursor() int { return s.cursor }

// Count returns the number of entries in the snapshot.
func (s Snapshot) Count() int { return len(s.items) }

// Current returns the snapshot's current entry, or nil if it has none.
func (s Snapshot) Current() *item.Item {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}

// validateCursor enforces the stack invariant -1 <= cursor < count with
// cursor == -1 exactly when count == 0.
func validateCursor(count, cursor int) error {
	if cursor < -1 || cursor >= count || (cursor == -1) != (count == 0) {
		return fmt.Errorf("%w: cursor %d with %d items", ErrCursorRange, cursor, count)
	}
	return nil
}
