package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// nullStr converts a sql.NullString to a plain string (empty if null).
func nullStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .mubench) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps the foreign_keys pragma in effect for every statement.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		if _, err := s.db.Exec(schemaV1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v != schemaVersion {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// CreateRun inserts a run. StartedAt and Status default to now and "running".
func (s *SqlStore) CreateRun(r *Run) error {
	if r.ID == "" {
		return errors.New("run id is required")
	}
	if r.StartedAt == "" {
		r.StartedAt = nowUTC()
	}
	if r.Status == "" {
		r.Status = RunRunning
	}
	_, err := s.db.Exec(
		`INSERT INTO runs(id, data_path, started_at, total, status) VALUES(?, ?, ?, ?, ?)`,
		r.ID, r.DataPath, r.StartedAt, r.Total, r.Status,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun stamps the run with its final count and status.
func (s *SqlStore) FinishRun(id string, total int, status string) error {
	res, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, total = ?, status = ? WHERE id = ?`,
		nowUTC(), total, status, id,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

// GetRun returns the run by id, or nil if it does not exist.
func (s *SqlStore) GetRun(id string) (*Run, error) {
	var r Run
	var finished sql.NullString
	err := s.db.QueryRow(
		`SELECT id, data_path, started_at, finished_at, total, status FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.DataPath, &r.StartedAt, &finished, &r.Total, &r.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	r.FinishedAt = nullStr(finished)
	return &r, nil
}

// ListRuns returns all runs, oldest first.
func (s *SqlStore) ListRuns() ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, data_path, started_at, finished_at, total, status FROM runs ORDER BY started_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		var r Run
		var finished sql.NullString
		if err := rows.Scan(&r.ID, &r.DataPath, &r.StartedAt, &finished, &r.Total, &r.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.FinishedAt = nullStr(finished)
		out = append(out, &r)
	}
	return out, rows.Err()
}

// SaveResult records one misuse for a run.
func (s *SqlStore) SaveResult(r *Result) error {
	_, err := s.db.Exec(
		`INSERT INTO results(run_id, misuse, path, project) VALUES(?, ?, ?, ?)`,
		r.RunID, r.Misuse, r.Path, r.Project,
	)
	if err != nil {
		return fmt.Errorf("insert result %s: %w", r.Misuse, err)
	}
	return nil
}

// ListResults returns the results of a run in insertion order.
func (s *SqlStore) ListResults(runID string) ([]*Result, error) {
	rows, err := s.db.Query(
		`SELECT run_id, misuse, path, project FROM results WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []*Result
	for rows.Next() {
		var r Result
		var project sql.NullString
		if err := rows.Scan(&r.RunID, &r.Misuse, &r.Path, &project); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Project = nullStr(project)
		out = append(out, &r)
	}
	return out, rows.Err()
}
