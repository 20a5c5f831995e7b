// Package jsonfile provides a file-backed persistence gateway.
//
// One snapshot is stored as a single JSON document. Writes replace the file
// atomically via a temp file and rename. Reads are tolerant: a missing,
// truncated, or otherwise unparsable file loads as absent rather than
// failing, matching the gateway contract.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/navhist/item"
	"github.com/dshills/navhist/persist"
)

// Gateway persists one snapshot as a JSON document on disk.
type Gateway struct {
	path string
}

// Compile-time check that *Gateway implements persist.Gateway.
var _ persist.Gateway = (*Gateway)(nil)

// New creates a gateway that stores its snapshot at path.
// The file is created on first Save.
func New(path string) *Gateway {
	return &Gateway{path: path}
}

// Path returns the backing file path.
func (g *Gateway) Path() string { return g.path }

// Save writes the snapshot, replacing any previous one.
// The document is written to a temp file in the same directory and renamed
// into place so readers never observe a partial write.
func (g *Gateway) Save(ctx context.Context, snap persist.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := encode(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(g.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, g.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the stored snapshot.
// A missing or unparsable file collapses to absent; callers cannot
// distinguish "never saved" from "corrupt". Other read failures (a
// permission problem, the path being a directory) propagate.
func (g *Gateway) Load(ctx context.Context) (persist.Snapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return persist.Snapshot{}, false, err
	}

	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return persist.Snapshot{}, false, nil
	}
	if err != nil {
		return persist.Snapshot{}, false, fmt.Errorf("read snapshot: %w", err)
	}

	snap, ok := decode(data)
	if !ok {
		return persist.Snapshot{}, false, nil
	}
	return snap, true, nil
}

// encode builds the wire document:
//
//	{"items":[{"id","displayName","createdAt","metadata"}...],
//	 "currentIndex":N,"createdAt":"..."}
func encode(snap persist.Snapshot) ([]byte, error) {
	doc := []byte(`{}`)
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.SetBytes(doc, path, value)
	}
	setRaw := func(path string, raw []byte) {
		if err != nil {
			return
		}
		doc, err = sjson.SetRawBytes(doc, path, raw)
	}

	setRaw("items", []byte(`[]`))
	for i, it := range snap.Items {
		base := fmt.Sprintf("items.%d", i)
		set(base+".id", it.ID)
		set(base+".displayName", it.DisplayName)
		set(base+".createdAt", it.CreatedAt.UTC().Format(time.RFC3339Nano))

		md, mdErr := persist.MarshalMetadata(it.Metadata)
		if mdErr != nil {
			return nil, mdErr
		}
		setRaw(base+".metadata", md)
	}
	set("currentIndex", snap.CurrentIndex)
	set("createdAt", snap.CreatedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return nil, err
	}
	return doc, nil
}

// decode parses the wire document. Returns false for anything unusable.
func decode(data []byte) (persist.Snapshot, bool) {
	if !gjson.ValidBytes(data) {
		return persist.Snapshot{}, false
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return persist.Snapshot{}, false
	}

	idx := root.Get("currentIndex")
	itemsField := root.Get("items")
	if idx.Type != gjson.Number || !itemsField.IsArray() {
		return persist.Snapshot{}, false
	}

	var items []*item.Item
	for _, el := range itemsField.Array() {
		it, ok := decodeItem(el)
		if !ok {
			return persist.Snapshot{}, false
		}
		items = append(items, it)
	}

	snap, err := persist.NewSnapshot(items, int(idx.Int()))
	if err != nil {
		return persist.Snapshot{}, false
	}

	if created, err := time.Parse(time.RFC3339Nano, root.Get("createdAt").String()); err == nil {
		snap.CreatedAt = created
	}
	return snap, true
}

func decodeItem(el gjson.Result) (*item.Item, bool) {
	id := el.Get("id").String()
	if id == "" {
		return nil, false
	}

	created, err := time.Parse(time.RFC3339Nano, el.Get("createdAt").String())
	if err != nil {
		return nil, false
	}

	it := item.NewWithID(id, el.Get("displayName").String(), created)
	if md := el.Get("metadata"); md.Exists() {
		if !md.IsObject() {
			return nil, false
		}
		for k, v := range md.Map() {
			it.Metadata[k] = v.Value()
		}
	}
	return it, true
}
