// Package datareader drives a corpus of misuses through an ordered list of
// stages.
//
// A run resolves the corpus, sets every stage up, feeds each misuse through
// the stages in registration order and finally tears every stage down. Runs
// are sequential and deterministic: misuses are processed in lexicographic
// order of their directory names.
package datareader

import (
	"fmt"
	"log/slog"

	"mubench/internal/logging"
	"mubench/internal/misuse"
)

// Catalog enumerates corpus entries. misuse.DirCatalog is the on-disk
// implementation.
type Catalog interface {
	// Entries lists candidate paths under root in a stable order.
	Entries(root string) ([]string, error)
	// IsMisuse reports whether the entry is a corpus member.
	IsMisuse(path string) bool
	// Name returns the display name used for filtering.
	Name(path string) string
}

// DataReader owns the stage sequence and the corpus selection for one run.
type DataReader struct {
	dataPath  string
	whiteList []string
	blackList []string
	catalog   Catalog
	logger    *slog.Logger
	stages    []Stage
}

// Option configures a DataReader.
type Option func(*DataReader)

// WithLogger sets the logger used for progress and stage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *DataReader) { r.logger = l }
}

// WithCatalog replaces the on-disk catalog.
func WithCatalog(c Catalog) Option {
	return func(r *DataReader) { r.catalog = c }
}

// New returns a DataReader over the misuses under dataPath.
func New(dataPath string, whiteList, blackList []string, opts ...Option) *DataReader {
	r := &DataReader{
		dataPath:  dataPath,
		whiteList: append([]string(nil), whiteList...),
		blackList: append([]string(nil), blackList...),
		catalog:   misuse.DirCatalog{},
	}
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = logging.New("datareader")
	}
	return r
}

// Add appends a stage. Stages run in the order they were added.
func (r *DataReader) Add(s Stage) {
	r.stages = append(r.stages, s)
}

// Stages returns the registered stages in execution order.
func (r *DataReader) Stages() []Stage {
	return append([]Stage(nil), r.stages...)
}

// Misuses resolves the corpus: catalog entries that are misuses and whose
// names pass Keep, in catalog order.
func (r *DataReader) Misuses() ([]*misuse.Misuse, error) {
	paths, err := r.catalog.Entries(r.dataPath)
	if err != nil {
		return nil, fmt.Errorf("resolve corpus: %w", err)
	}
	var misuses []*misuse.Misuse
	for _, p := range paths {
		if !r.catalog.IsMisuse(p) {
			continue
		}
		if !Keep(r.catalog.Name(p), r.whiteList, r.blackList) {
			continue
		}
		misuses = append(misuses, misuse.New(p))
	}
	return misuses, nil
}

// Run processes the whole corpus.
//
// The first error returned by a stage's Setup or Run aborts the run and is
// returned unchanged. Teardown is attempted on every stage before Run
// returns, also when a stage panics; teardown errors are logged only.
func (r *DataReader) Run() error {
	misuses, err := r.Misuses()
	if err != nil {
		return err
	}

	defer r.teardown()

	if err := r.setup(); err != nil {
		return err
	}

	for i, m := range misuses {
		r.logger.Info("misuse", "name", m.Name(), "index", i+1, "total", len(misuses))

		for _, s := range r.stages {
			answer, err := s.Run(m)
			if err != nil {
				return err
			}
			if answer == Skip {
				break
			}
		}
	}
	return nil
}

func (r *DataReader) setup() error {
	for _, s := range r.stages {
		name := StageName(s)
		r.logger.Debug("setup", "stage", name)
		if err := s.Setup(); err != nil {
			r.logger.Error("error in setup", "stage", name, "error", err)
			return err
		}
	}
	return nil
}

func (r *DataReader) teardown() {
	for _, s := range r.stages {
		name := StageName(s)
		r.logger.Debug("teardown", "stage", name)
		if err := s.Teardown(); err != nil {
			r.logger.Error("error in teardown", "stage", name, "error", err)
		}
	}
}
