package store

// schemaVersion is the target schema version for this build.
const schemaVersion = 1

var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	data_path   TEXT NOT NULL,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	total       INTEGER NOT NULL DEFAULT 0,
	status      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id   TEXT NOT NULL REFERENCES runs(id),
	misuse   TEXT NOT NULL,
	path     TEXT NOT NULL,
	project  TEXT,
	UNIQUE(run_id, misuse)
);

CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`
