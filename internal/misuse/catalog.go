package misuse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DirCatalog enumerates misuses stored as sibling directories under one root.
type DirCatalog struct{}

// Entries returns every entry under root joined with root, sorted by name.
func (DirCatalog) Entries(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(root, n)
	}
	return paths, nil
}

// IsMisuse implements the catalog membership check.
func (DirCatalog) IsMisuse(path string) bool { return IsMisuse(path) }

// Name returns the display name of the entry at path.
func (DirCatalog) Name(path string) string { return filepath.Base(path) }
