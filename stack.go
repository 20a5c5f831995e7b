package navhist

import (
	"context"
	"fmt"

	"github.com/dshills/navhist/item"
	"github.com/dshills/navhist/persist"
	"github.com/dshills/navhist/undo"
)

// Stack owns an ordered sequence of visited items and a cursor into it.
//
// Invariant: -1 <= cursor < len(items), with cursor == -1 exactly when the
// stack is empty. The live sequence is never exposed; views return copies.
//
// Not safe for concurrent use; see the package documentation.
type Stack struct {
	items  []*item.Item
	cursor int

	coord   *undo.Coordinator
	gateway persist.Gateway

	listeners []listenerEntry
	nextSubID uint64
}

// New creates an empty stack.
func New(opts ...Option) *Stack {
	s := &Stack{cursor: -1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NavigateTo makes it the current entry. Any forward history past the
// cursor is discarded first, browser-style. If an undo coordinator is
// attached, a snapshot action covering the whole transition is registered;
// this is the only operation that participates in the undo timeline.
func (s *Stack) NavigateTo(it *item.Item) error {
	if it == nil {
		return ErrNilItem
	}

	prev := s.Current()

	var before Snapshot
	if s.coord != nil {
		before = snapshotOf(s.items, s.cursor)
	}

	if s.cursor < len(s.items)-1 {
		s.items = s.items[:s.cursor+1]
	}
	s.items = append(s.items, it)
	s.cursor = len(s.items) - 1

	if s.coord != nil {
		after := snapshotOf(s.items, s.cursor)
		act := newSnapshotAction(s, before, after, navigateDescription(it))
		if err := s.coord.Register(act); err != nil {
			return fmt.Errorf("register undo action: %w", err)
		}
	}

	s.emit(Change{Kind: ChangeNavigate, Previous: prev, Current: it})
	return nil
}

// GoBack moves the cursor one entry toward older history.
// Returns (nil, false) with no mutation and no notification when there is
// nothing behind the cursor. Not undo-tracked.
func (s *Stack) GoBack() (*item.Item, bool) {
	if !s.CanGoBack() {
		return nil, false
	}

	prev := s.items[s.cursor]
	s.cursor--
	cur := s.items[s.cursor]

	s.emit(Change{Kind: ChangeBack, Previous: prev, Current: cur})
	return cur, true
}

// GoForward moves the cursor one entry toward newer history.
// Returns (nil, false) with no mutation and no notification when there is
// nothing ahead of the cursor. Not undo-tracked.
func (s *Stack) GoForward() (*item.Item, bool) {
	if !s.CanGoForward() {
		return nil, false
	}

	prev := s.items[s.cursor]
	s.cursor++
	cur := s.items[s.cursor]

	s.emit(Change{Kind: ChangeForward, Previous: prev, Current: cur})
	return cur, true
}

// GoTo jumps the cursor to an absolute history index.
// Returns (nil, false) when the index is out of range or already current.
// Emits ChangeBack or ChangeForward depending on direction. Not
// undo-tracked, like GoBack and GoForward.
func (s *Stack) GoTo(index int) (*item.Item, bool) {
	if index < 0 || index >= len(s.items) || index == s.cursor {
		return nil, false
	}

	kind := ChangeForward
	if index < s.cursor {
		kind = ChangeBack
	}

	prev := s.items[s.cursor]
	s.cursor = index
	cur := s.items[s.cursor]

	s.emit(Change{Kind: kind, Previous: prev, Current: cur})
	return cur, true
}

// Clear unconditionally empties the stack. Not undo-tracked.
func (s *Stack) Clear() {
	prev := s.Current()
	s.items = nil
	s.cursor = -1

	s.emit(Change{Kind: ChangeClear, Previous: prev, Current: nil})
}

// Current returns the entry at the cursor, or nil if the stack is empty.
func (s *Stack) Current() *item.Item {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}

// Count returns the number of entries in the stack.
func (s *Stack) Count() int { return len(s.items) }

// CanGoBack returns true if there is an entry behind the cursor.
func (s *Stack) CanGoBack() bool { return s.cursor > 0 }

// CanGoForward returns true if there is an entry ahead of the cursor.
func (s *Stack) CanGoForward() bool { return s.cursor < len(s.items)-1 }

// History returns all entries in insertion order.
// The returned slice is a copy; the items are shared and read-only.
func (s *Stack) History() []*item.Item {
	return copyItems(s.items)
}

// BackStack returns the entries strictly before the cursor, oldest first.
func (s *Stack) BackStack() []*item.Item {
	if s.cursor <= 0 {
		return nil
	}
	return copyItems(s.items[:s.cursor])
}

// ForwardStack returns the entries strictly after the cursor, oldest first.
func (s *Stack) ForwardStack() []*item.Item {
	if s.cursor >= len(s.items)-1 {
		return nil
	}
	return copyItems(s.items[s.cursor+1:])
}

// Export captures the current state as a Snapshot.
func (s *Stack) Export() Snapshot {
	return snapshotOf(s.items, s.cursor)
}

// Restore atomically replaces the stack's items and cursor from a snapshot.
// The snapshot is validated against the stack invariant and deep-copied, so
// the caller's snapshot stays independent of the live stack. Emits a
// ChangeNavigate notification. Used by undo/redo replay and by Load.
func (s *Stack) Restore(snap Snapshot) error {
	if err := validateCursor(len(snap.items), snap.cursor); err != nil {
		return err
	}

	prev := s.Current()

	restored := snapshotOf(snap.items, snap.cursor)
	s.items = restored.items
	s.cursor = restored.cursor

	s.emit(Change{Kind: ChangeNavigate, Previous: prev, Current: s.Current()})
	return nil
}

// Save exports the current state and hands it to the persistence gateway.
// Write failures propagate; cancellation aborts only the pending I/O and
// never touches in-memory state.
func (s *Stack) Save(ctx context.Context) error {
	if s.gateway == nil {
		return ErrNoGateway
	}

	snap, err := persist.NewSnapshot(s.items, s.cursor)
	if err != nil {
		return err
	}
	return s.gateway.Save(ctx, snap)
}

// Load replaces the stack's state from the persistence gateway.
// Returns false when no usable snapshot exists; the in-memory state is
// untouched in that case. A stored snapshot whose cursor cannot satisfy the
// stack invariant counts as unusable.
func (s *Stack) Load(ctx context.Context) (bool, error) {
	if s.gateway == nil {
		return false, ErrNoGateway
	}

	stored, ok, err := s.gateway.Load(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	snap, err := NewSnapshot(stored.Items, stored.CurrentIndex)
	if err != nil {
		return false, nil
	}
	if err := s.Restore(snap); err != nil {
		return false, nil
	}
	return true, nil
}

func copyItems(items []*item.Item) []*item.Item {
	if len(items) == 0 {
		return nil
	}
	cp := make([]*item.Item, len(items))
	copy(cp, items)
	return cp
}

func navigateDescription(it *item.Item) string {
	if it.DisplayName != "" {
		return fmt.Sprintf("Navigate to %s", it.DisplayName)
	}
	return fmt.Sprintf("Navigate to %s", it.ID)
}
