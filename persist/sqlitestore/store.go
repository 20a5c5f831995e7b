// Package sqlitestore provides a SQLite-backed persistence gateway.
//
// The database holds exactly one snapshot: a single-row meta table for the
// current index and the snapshot timestamp, plus an items table ordered by
// position. WAL mode keeps the store usable alongside other readers of the
// same file.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/navhist/item"
	"github.com/dshills/navhist/persist"

	_ "modernc.org/sqlite"
)

// Store persists one snapshot in a SQLite database.
type Store struct {
	db *sql.DB
}

// Compile-time check that *Store implements persist.Gateway.
var _ persist.Gateway = (*Store)(nil)

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshot_meta (
		id            INTEGER PRIMARY KEY CHECK (id = 1),
		current_index INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS snapshot_items (
		position     INTEGER PRIMARY KEY,
		id           TEXT NOT NULL,
		display_name TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		metadata     TEXT NOT NULL DEFAULT '{}'
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the stored snapshot in a single transaction.
func (s *Store) Save(ctx context.Context, snap persist.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshot_meta`); err != nil {
		return fmt.Errorf("clear meta: %w", err)
	}

	for i, it := range snap.Items {
		md, err := persist.MarshalMetadata(it.Metadata)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO snapshot_items (position, id, display_name, created_at, metadata)
			 VALUES (?, ?, ?, ?, ?)`,
			i, it.ID, it.DisplayName, it.CreatedAt.UTC().Format(time.RFC3339Nano), string(md),
		)
		if err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (id, current_index, created_at) VALUES (1, ?, ?)`,
		snap.CurrentIndex, snap.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load reads the stored snapshot. No meta row means nothing was ever saved;
// rows that fail to parse or describe an impossible index load as absent,
// the same outcome. Driver and connection errors propagate; they are read
// failures, not missing data.
//
// Columns are scanned into untyped values so a type mismatch in a
// tampered-with database surfaces as unparsable data (absent) rather than
// being indistinguishable from an I/O failure.
func (s *Store) Load(ctx context.Context) (persist.Snapshot, bool, error) {
	var rawIndex, rawCreated any
	err := s.db.QueryRowContext(ctx,
		`SELECT current_index, created_at FROM snapshot_meta WHERE id = 1`,
	).Scan(&rawIndex, &rawCreated)
	if errors.Is(err, sql.ErrNoRows) {
		return persist.Snapshot{}, false, nil
	}
	if err != nil {
		return persist.Snapshot{}, false, fmt.Errorf("read meta: %w", err)
	}

	index, ok := rawIndex.(int64)
	if !ok {
		return persist.Snapshot{}, false, nil
	}

	items, ok, err := s.loadItems(ctx)
	if err != nil {
		return persist.Snapshot{}, false, err
	}
	if !ok {
		return persist.Snapshot{}, false, nil
	}

	snap, err := persist.NewSnapshot(items, int(index))
	if err != nil {
		return persist.Snapshot{}, false, nil
	}
	if text, ok := asString(rawCreated); ok {
		if created, err := time.Parse(time.RFC3339Nano, text); err == nil {
			snap.CreatedAt = created
		}
	}
	return snap, true, nil
}

func (s *Store) loadItems(ctx context.Context) ([]*item.Item, bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, display_name, created_at, metadata FROM snapshot_items ORDER BY position`,
	)
	if err != nil {
		return nil, false, fmt.Errorf("read items: %w", err)
	}
	defer rows.Close()

	var items []*item.Item
	for rows.Next() {
		var rawID, rawName, rawCreated, rawMeta any
		if err := rows.Scan(&rawID, &rawName, &rawCreated, &rawMeta); err != nil {
			return nil, false, fmt.Errorf("scan item: %w", err)
		}

		id, ok := asString(rawID)
		if !ok || id == "" {
			return nil, false, nil
		}
		displayName, _ := asString(rawName)

		text, ok := asString(rawCreated)
		if !ok {
			return nil, false, nil
		}
		created, err := time.Parse(time.RFC3339Nano, text)
		if err != nil {
			return nil, false, nil
		}

		metaText, ok := asString(rawMeta)
		if !ok {
			return nil, false, nil
		}
		md, ok := persist.UnmarshalMetadata([]byte(metaText))
		if !ok {
			return nil, false, nil
		}

		it := item.NewWithID(id, displayName, created)
		it.Metadata = md
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("read items: %w", err)
	}
	return items, true, nil
}

// asString normalizes the text forms the driver may hand back.
func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return "", false
	}
}
