// Package misusetest builds throwaway misuse corpora for tests.
package misusetest

import (
	"os"
	"path/filepath"
	"testing"

	"mubench/internal/misuse"
)

// WriteCorpus creates one misuse directory per entry under a fresh temp dir
// and returns the root. The map value is written verbatim as misuse.yml.
func WriteCorpus(t testing.TB, misuses map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, meta := range misuses {
		WriteMisuse(t, root, name, meta)
	}
	return root
}

// WriteMisuse adds a single misuse directory under root.
func WriteMisuse(t testing.TB, root, name, meta string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, misuse.MetaFile), []byte(meta), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return dir
}

// Meta returns a minimal valid misuse.yml for project.
func Meta(project string, characteristics ...string) string {
	s := "project: " + project + "\ndescription: test misuse\n"
	if len(characteristics) > 0 {
		s += "characteristics:\n"
		for _, c := range characteristics {
			s += "  - " + c + "\n"
		}
	}
	return s
}
