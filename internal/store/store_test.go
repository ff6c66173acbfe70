package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// eachStore runs fn against both Store implementations.
func eachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("sql", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "nested", "mubench.db"))
		require.NoError(t, err)
		defer s.Close()
		fn(t, s)
	})
	t.Run("mem", func(t *testing.T) {
		s := NewMemStore()
		defer s.Close()
		fn(t, s)
	})
}

func TestStore_RunLifecycle(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		run := &Run{ID: "run-1", DataPath: "data"}
		require.NoError(t, s.CreateRun(run))
		require.Equal(t, RunRunning, run.Status)
		require.NotEmpty(t, run.StartedAt)

		got, err := s.GetRun("run-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "data", got.DataPath)
		require.Empty(t, got.FinishedAt)

		require.NoError(t, s.FinishRun("run-1", 3, RunDone))
		got, err = s.GetRun("run-1")
		require.NoError(t, err)
		require.Equal(t, 3, got.Total)
		require.Equal(t, RunDone, got.Status)
		require.NotEmpty(t, got.FinishedAt)
	})
}

func TestStore_GetRunMissing(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		got, err := s.GetRun("absent")
		require.NoError(t, err)
		require.Nil(t, got)
		require.Error(t, s.FinishRun("absent", 0, RunDone))
	})
}

func TestStore_CreateRunValidation(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		require.Error(t, s.CreateRun(&Run{}))
		require.NoError(t, s.CreateRun(&Run{ID: "dup"}))
		require.Error(t, s.CreateRun(&Run{ID: "dup"}))
	})
}

func TestStore_ListRunsOrdered(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.CreateRun(&Run{ID: "b", StartedAt: "2026-01-02T00:00:00Z"}))
		require.NoError(t, s.CreateRun(&Run{ID: "a", StartedAt: "2026-01-01T00:00:00Z"}))
		runs, err := s.ListRuns()
		require.NoError(t, err)
		require.Len(t, runs, 2)
		require.Equal(t, "a", runs[0].ID)
		require.Equal(t, "b", runs[1].ID)
	})
}

func TestStore_Results(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.CreateRun(&Run{ID: "r"}))
		require.NoError(t, s.SaveResult(&Result{RunID: "r", Misuse: "aclang.1", Path: "data/aclang.1", Project: "aclang"}))
		require.NoError(t, s.SaveResult(&Result{RunID: "r", Misuse: "itext.2", Path: "data/itext.2"}))
		require.Error(t, s.SaveResult(&Result{RunID: "r", Misuse: "itext.2", Path: "data/itext.2"}))
		require.Error(t, s.SaveResult(&Result{RunID: "nope", Misuse: "x", Path: "x"}))

		results, err := s.ListResults("r")
		require.NoError(t, err)
		require.Equal(t, []*Result{
			{RunID: "r", Misuse: "aclang.1", Path: "data/aclang.1", Project: "aclang"},
			{RunID: "r", Misuse: "itext.2", Path: "data/itext.2"},
		}, results)

		empty, err := s.ListResults("other")
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mubench.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.CreateRun(&Run{ID: "persisted"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.GetRun("persisted")
	require.NoError(t, err)
	require.NotNil(t, got)
}
