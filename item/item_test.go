package item

import (
	"testing"
	"time"
)

func TestNewMintsUniqueIDs(t *testing.T) {
	a := New("first")
	b := New("second")

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a.ID == b.ID {
		t.Errorf("expected distinct IDs, both were %q", a.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if a.Metadata == nil {
		t.Error("Metadata not initialized")
	}
}

func TestNewWithID(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	it := NewWithID("page-1", "Page One", created)

	if it.ID != "page-1" {
		t.Errorf("ID = %q, want %q", it.ID, "page-1")
	}
	if !it.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", it.CreatedAt, created)
	}
	if it.Metadata == nil {
		t.Error("Metadata not initialized")
	}
}

func TestEqualByIDOnly(t *testing.T) {
	created := time.Now().UTC()
	a := NewWithID("same", "Name A", created)
	b := NewWithID("same", "Name B", created.Add(time.Hour))
	c := NewWithID("other", "Name A", created)

	if !a.Equal(b) {
		t.Error("items with the same ID should be equal")
	}
	if a.Equal(c) {
		t.Error("items with different IDs should not be equal")
	}
}

func TestEqualNil(t *testing.T) {
	var a *Item
	var b *Item
	if !a.Equal(b) {
		t.Error("two nil items should be equal")
	}
	if a.Equal(New("x")) {
		t.Error("nil should not equal a non-nil item")
	}
	if New("x").Equal(nil) {
		t.Error("non-nil should not equal nil")
	}
}

func TestCloneDeepCopiesMetadata(t *testing.T) {
	it := New("page")
	it.Metadata["tag"] = "pinned"
	it.Metadata["nested"] = map[string]any{"depth": 1}
	it.Metadata["list"] = []any{"a", "b"}

	cp := it.Clone()

	// Mutate the original
	it.Metadata["tag"] = "changed"
	it.Metadata["nested"].(map[string]any)["depth"] = 99
	it.Metadata["list"].([]any)[0] = "z"

	if cp.Metadata["tag"] != "pinned" {
		t.Error("clone shares top-level metadata")
	}
	if cp.Metadata["nested"].(map[string]any)["depth"] != 1 {
		t.Error("clone shares nested map")
	}
	if cp.Metadata["list"].([]any)[0] != "a" {
		t.Error("clone shares nested slice")
	}
}

func TestCloneNil(t *testing.T) {
	var it *Item
	if it.Clone() != nil {
		t.Error("cloning nil should return nil")
	}
}
