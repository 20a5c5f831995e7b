// Package item defines the entries a navigation history visits.
//
// An Item carries identity in its ID field only: two items with the same ID
// refer to the same entry even when their display names or metadata differ.
// Metadata is an open-ended bag the history core never inspects; values
// round-trip through JSON when a persistence gateway is attached, so keys
// should map to JSON-encodable values.
package item

import (
	"time"

	"github.com/google/uuid"
)

// Item is a single visitable entry in a navigation history.
type Item struct {
	// ID uniquely identifies the entry. Immutable after creation.
	ID string

	// DisplayName is a human-readable label. May change after creation.
	DisplayName string

	// CreatedAt records when the entry was first created. Immutable.
	CreatedAt time.Time

	// Metadata holds open-ended caller data keyed by name.
	Metadata map[string]any
}

// New creates an item with a freshly minted identifier.
func New(displayName string) *Item {
	return &Item{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
		Metadata:    make(map[string]any),
	}
}

// NewWithID reconstructs an item with a known identifier, typically when
// loading persisted state.
func NewWithID(id, displayName string, createdAt time.Time) *Item {
	return &Item{
		ID:          id,
		DisplayName: displayName,
		CreatedAt:   createdAt,
		Metadata:    make(map[string]any),
	}
}

// Equal reports whether both items name the same entry.
// Only the identifier participates; display name and metadata do not.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.ID == other.ID
}

// Clone returns a deep copy of the item. Nested maps and slices inside
// Metadata are copied recursively so the clone never aliases the original.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	cp := &Item{
		ID:          it.ID,
		DisplayName: it.DisplayName,
		CreatedAt:   it.CreatedAt,
		Metadata:    make(map[string]any, len(it.Metadata)),
	}
	for k, v := range it.Metadata {
		cp.Metadata[k] = cloneValue(v)
	}
	return cp
}

// cloneValue deep-copies the container types metadata commonly holds.
// Scalars are copied by value.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		cp := make(map[string]any, len(val))
		for k, nested := range val {
			cp[k] = cloneValue(nested)
		}
		return cp
	case []any:
		cp := make([]any, len(val))
		for i, nested := range val {
			cp[i] = cloneValue(nested)
		}
		return cp
	default:
		return v
	}
}
