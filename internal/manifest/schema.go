package manifest

const schemaVersion = 1

// Seeds are stored as TEXT: derived seeds span the full uint64 range, which
// overflows SQLite's signed INTEGER.
const schema = `
CREATE TABLE IF NOT EXISTS schema_info (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	scenario_id TEXT NOT NULL,
	seed        TEXT NOT NULL,
	agents      INTEGER NOT NULL,
	beliefs     INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario_id);

CREATE TABLE IF NOT EXISTS artifacts (
	run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	name     TEXT NOT NULL,
	path     TEXT NOT NULL,
	uploaded INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, name)
);
`
