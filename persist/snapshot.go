package persist

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/navhist/item"
)

// ErrIndexRange is returned when a snapshot is constructed with a current
// index outside [-1, len(items)).
var ErrIndexRange = errors.New("current index out of range")

// Snapshot is the externally serializable form of a history stack: the
// ordered items, the current index, and when the snapshot was taken.
// CurrentIndex == -1 denotes an empty or no-current stack.
type Snapshot struct {
	Items        []*item.Item
	CurrentIndex int
	CreatedAt    time.Time
}

// NewSnapshot builds a snapshot from the given items and current index.
// Items are deep-copied so the snapshot never aliases the caller's slice.
// An out-of-range index is rejected before any copying happens.
func NewSnapshot(items []*item.Item, currentIndex int) (Snapshot, error) {
	if currentIndex < -1 || currentIndex >= len(items) {
		return Snapshot{}, fmt.Errorf("%w: index %d with %d items", ErrIndexRange, currentIndex, len(items))
	}

	cp := make([]*item.Item, len(items))
	for i, it := range items {
		cp[i] = it.Clone()
	}

	return Snapshot{
		Items:        cp,
		CurrentIndex: currentIndex,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
