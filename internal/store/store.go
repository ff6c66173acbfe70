// Package store persists what a mubench run recorded about each misuse.
package store

// DefaultDBPath is the default relative path for the SQLite DB.
// Open() creates the parent dir (.mubench).
const DefaultDBPath = ".mubench/mubench.db"

// Run statuses.
const (
	RunRunning = "running"
	RunDone    = "done"
)

// Run is one invocation of the data reader.
type Run struct {
	ID         string
	DataPath   string
	StartedAt  string
	FinishedAt string
	Total      int
	Status     string
}

// Result is the record of one misuse seen during a run.
type Result struct {
	RunID   string
	Misuse  string
	Path    string
	Project string
}

// Store is the persistence facade used by the record stage and the CLI.
// Implementations are SQLite (SqlStore) or in-memory (MemStore).
type Store interface {
	CreateRun(r *Run) error
	FinishRun(id string, total int, status string) error
	GetRun(id string) (*Run, error)
	ListRuns() ([]*Run, error)
	SaveResult(r *Result) error
	ListResults(runID string) ([]*Result, error)
	Close() error
}
