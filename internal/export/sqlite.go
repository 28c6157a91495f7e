package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// ErrSnapshotNotFound is returned by ReadSQLite for an unknown snapshot id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return db, nil
}

// WriteSQLite appends snap to the snapshot database at path in a single
// transaction. Records keep their response order and row key.
func WriteSQLite(ctx context.Context, path string, snap Snapshot) error {
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (snapshot_id, view, source, taken_at, record_count) VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.View, snap.Source, snap.TakenAt.UTC().Format(time.RFC3339Nano), len(snap.Entities),
	); err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (snapshot_id, position, record_key, body) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range snap.Entities {
		if e == nil {
			e = types.Entity{}
		}
		body, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding record %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, snap.ID, i, e.Key(i), string(body)); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export transaction: %w", err)
	}
	return nil
}

// ReadSQLite loads the snapshot with the given id from the database at path.
func ReadSQLite(ctx context.Context, path, id string) (Snapshot, error) {
	db, err := openDB(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer db.Close()

	snap := Snapshot{ID: id}
	var takenAt string
	var count int
	err = db.QueryRowContext(ctx,
		`SELECT view, source, taken_at, record_count FROM snapshots WHERE snapshot_id = ?`, id,
	).Scan(&snap.View, &snap.Source, &takenAt, &count)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s: %w", id, err)
	}
	if snap.TakenAt, err = time.Parse(time.RFC3339Nano, takenAt); err != nil {
		return Snapshot{}, fmt.Errorf("parsing taken_at %q: %w", takenAt, err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT body FROM records WHERE snapshot_id = ? ORDER BY position`, id)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading records: %w", err)
	}
	defer rows.Close()

	snap.Entities = make([]types.Entity, 0, count)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return Snapshot{}, fmt.Errorf("scanning record: %w", err)
		}
		e, err := decodeEntity([]byte(body))
		if err != nil {
			return Snapshot{}, fmt.Errorf("decoding record: %w", err)
		}
		snap.Entities = append(snap.Entities, e)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("reading records: %w", err)
	}
	return snap, nil
}

// LatestSnapshot returns the id of the most recent snapshot of view, or
// ErrSnapshotNotFound when the database holds none.
func LatestSnapshot(ctx context.Context, path, view string) (string, error) {
	db, err := openDB(path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	var id string
	err = db.QueryRowContext(ctx,
		`SELECT snapshot_id FROM snapshots WHERE view = ? ORDER BY taken_at DESC, snapshot_id DESC LIMIT 1`, view,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w for view %s", ErrSnapshotNotFound, view)
	}
	if err != nil {
		return "", fmt.Errorf("querying snapshots: %w", err)
	}
	return id, nil
}
