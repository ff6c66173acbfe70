package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// MemStore implements Store in memory (for tests).
type MemStore struct {
	mu      sync.Mutex
	runs    map[string]*Run
	results map[string][]*Result
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		runs:    make(map[string]*Run),
		results: make(map[string][]*Result),
	}
}

func (m *MemStore) CreateRun(r *Run) error {
	if r.ID == "" {
		return errors.New("run id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runs[r.ID]; ok {
		return fmt.Errorf("insert run: %s already exists", r.ID)
	}
	if r.StartedAt == "" {
		r.StartedAt = nowUTC()
	}
	if r.Status == "" {
		r.Status = RunRunning
	}
	cp := *r
	m.runs[r.ID] = &cp
	return nil
}

func (m *MemStore) FinishRun(id string, total int, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.runs[id]
	if !ok {
		return fmt.Errorf("run %s not found", id)
	}
	r.FinishedAt = nowUTC()
	r.Total = total
	r.Status = status
	return nil
}

func (m *MemStore) GetRun(id string) (*Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.runs[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *MemStore) ListRuns() ([]*Run, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Run, 0, len(m.runs))
	for _, r := range m.runs {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt != out[j].StartedAt {
			return out[i].StartedAt < out[j].StartedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemStore) SaveResult(r *Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.runs[r.RunID]; !ok {
		return fmt.Errorf("insert result %s: run %s not found", r.Misuse, r.RunID)
	}
	for _, existing := range m.results[r.RunID] {
		if existing.Misuse == r.Misuse {
			return fmt.Errorf("insert result %s: duplicate", r.Misuse)
		}
	}
	cp := *r
	m.results[r.RunID] = append(m.results[r.RunID], &cp)
	return nil
}

func (m *MemStore) ListResults(runID string) ([]*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Result
	for _, r := range m.results[runID] {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemStore) Close() error { return nil }
