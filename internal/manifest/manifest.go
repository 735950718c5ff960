// Package manifest keeps a local SQLite registry of generation runs and the
// artifact files they produced, so past output can be listed and audited
// without scanning the output tree.
package manifest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

// Artifact is one file a run produced.
type Artifact struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Uploaded bool   `json:"uploaded"`
}

// Run is one recorded generation run.
type Run struct {
	ID         int64      `json:"id"`
	ScenarioID string     `json:"scenarioId"`
	Seed       uint64     `json:"seed"`
	Agents     int        `json:"agents"`
	Beliefs    int        `json:"beliefs"`
	CreatedAt  time.Time  `json:"createdAt"`
	Artifacts  []Artifact `json:"artifacts"`
}

// Manifest wraps the registry database. A single writer connection avoids
// SQLITE_BUSY under concurrent command invocations.
type Manifest struct {
	db *sql.DB
}

// Open opens or creates the registry at path, creating parent directories
// as needed.
func Open(path string) (*Manifest, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create manifest directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	db.SetMaxOpenConns(1)

	m := &Manifest{db: db}
	if err := m.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

// Close releases the database handle.
func (m *Manifest) Close() error {
	return m.db.Close()
}

func (m *Manifest) migrate() error {
	if _, err := m.db.Exec(schema); err != nil {
		return fmt.Errorf("apply manifest schema: %w", err)
	}
	var n int
	if err := m.db.QueryRow(`SELECT COUNT(*) FROM schema_info`).Scan(&n); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if n == 0 {
		if _, err := m.db.Exec(`INSERT INTO schema_info (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("write schema version: %w", err)
		}
	}
	return nil
}

// Record stores a run and its artifacts atomically and returns the assigned
// run id.
func (m *Manifest) Record(r Run) (int64, error) {
	tx, err := m.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (scenario_id, seed, agents, beliefs, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.ScenarioID, strconv.FormatUint(r.Seed, 10), r.Agents, r.Beliefs,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	for _, a := range r.Artifacts {
		if _, err := tx.Exec(
			`INSERT INTO artifacts (run_id, name, path, uploaded) VALUES (?, ?, ?, ?)`,
			id, a.Name, a.Path, boolToInt(a.Uploaded),
		); err != nil {
			return 0, fmt.Errorf("record artifact %s: %w", a.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// MarkUploaded flags one artifact of a run as uploaded.
func (m *Manifest) MarkUploaded(runID int64, name string) error {
	res, err := m.db.Exec(
		`UPDATE artifacts SET uploaded = 1 WHERE run_id = ? AND name = ?`,
		runID, name,
	)
	if err != nil {
		return fmt.Errorf("mark artifact uploaded: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark artifact uploaded: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %d has no artifact %q", runID, name)
	}
	return nil
}

// List returns all recorded runs, newest first, with their artifacts.
func (m *Manifest) List() ([]Run, error) {
	rows, err := m.db.Query(
		`SELECT id, scenario_id, seed, agents, beliefs, created_at FROM runs ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var seed, created string
		if err := rows.Scan(&r.ID, &r.ScenarioID, &seed, &r.Agents, &r.Beliefs, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("parse seed for run %d: %w", r.ID, err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, fmt.Errorf("parse timestamp for run %d: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	for i := range runs {
		if runs[i].Artifacts, err = m.artifacts(runs[i].ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (m *Manifest) artifacts(runID int64) ([]Artifact, error) {
	rows, err := m.db.Query(
		`SELECT name, path, uploaded FROM artifacts WHERE run_id = ? ORDER BY name`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	defer rows.Close()

	var out []Artifact
	for rows.Next() {
		var a Artifact
		var uploaded int
		if err := rows.Scan(&a.Name, &a.Path, &uploaded); err != nil {
			return nil, fmt.Errorf("scan artifact: %w", err)
		}
		a.Uploaded = uploaded != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
