package stages

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"mubench/internal/datareader"
	"mubench/internal/logging"
	"mubench/internal/misuse"
	"mubench/internal/store"
)

// Opener returns the store a Record stage writes to.
type Opener func() (store.Store, error)

// SqlOpener opens the SQLite store at path.
func SqlOpener(path string) Opener {
	return func() (store.Store, error) { return store.Open(path) }
}

// Record persists one result row per misuse under a fresh run ID.
type Record struct {
	open     Opener
	dataPath string
	logger   *slog.Logger

	st    store.Store
	runID string
	count int
}

// NewRecord returns a Record stage. The store is opened in Setup.
func NewRecord(open Opener, dataPath string, logger *slog.Logger) *Record {
	if logger == nil {
		logger = logging.New("record")
	}
	return &Record{open: open, dataPath: dataPath, logger: logger}
}

func (r *Record) Name() string { return "record" }

func (r *Record) Setup() error {
	st, err := r.open()
	if err != nil {
		return fmt.Errorf("record: open store: %w", err)
	}
	run := &store.Run{ID: uuid.NewString(), DataPath: r.dataPath}
	if err := st.CreateRun(run); err != nil {
		_ = st.Close()
		return fmt.Errorf("record: %w", err)
	}
	r.st = st
	r.runID = run.ID
	r.count = 0
	r.logger.Debug("run started", "run_id", run.ID)
	return nil
}

func (r *Record) Run(m *misuse.Misuse) (datareader.Answer, error) {
	res := &store.Result{RunID: r.runID, Misuse: m.Name(), Path: m.Path()}
	if meta, err := m.Meta(); err == nil {
		res.Project = meta.Project
	}
	if err := r.st.SaveResult(res); err != nil {
		return datareader.Ok, fmt.Errorf("record: %w", err)
	}
	r.count++
	return datareader.Ok, nil
}

// Teardown finishes the run and closes the store. It is a no-op when Setup
// did not succeed.
func (r *Record) Teardown() error {
	if r.st == nil {
		return nil
	}
	st := r.st
	r.st = nil
	finishErr := st.FinishRun(r.runID, r.count, store.RunDone)
	if err := st.Close(); err != nil && finishErr == nil {
		return fmt.Errorf("record: close store: %w", err)
	}
	if finishErr != nil {
		return fmt.Errorf("record: %w", finishErr)
	}
	r.logger.Info("run recorded", "run_id", r.runID, "misuses", r.count)
	return nil
}

// RunID returns the ID of the run started by the last Setup.
func (r *Record) RunID() string { return r.runID }
