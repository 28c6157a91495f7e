package export

// Snapshot database DDL. Tables are created on first write and appended to
// afterwards; every export adds one snapshots row.
const (
	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    view TEXT NOT NULL,
    source TEXT NOT NULL,
    taken_at TEXT NOT NULL,
    record_count INTEGER NOT NULL
);`

	createRecords = `CREATE TABLE IF NOT EXISTS records (
    snapshot_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    record_key TEXT NOT NULL,
    body TEXT NOT NULL,
    PRIMARY KEY (snapshot_id, position),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id) ON DELETE CASCADE
);`

	createSnapshotsViewIndex = `CREATE INDEX IF NOT EXISTS idx_snapshots_view ON snapshots(view, taken_at);`
)

var schemaSQL = createSnapshots + "\n" + createRecords + "\n" + createSnapshotsViewIndex
