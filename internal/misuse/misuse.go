// Package misuse models one benchmark sample on disk: a directory holding a
// misuse.yml description plus whatever project files the sample needs.
package misuse

import (
	"os"
	"path/filepath"
)

// MetaFile is the file whose presence marks a directory as a misuse.
const MetaFile = "misuse.yml"

// Misuse is an immutable handle over one corpus directory.
type Misuse struct {
	path string
	name string
}

// New returns the misuse rooted at path. The name is the last path element.
func New(path string) *Misuse {
	return &Misuse{path: path, name: filepath.Base(path)}
}

// Path returns the directory backing the misuse.
func (m *Misuse) Path() string { return m.path }

// Name returns the display name used for filtering and logging.
func (m *Misuse) Name() string { return m.name }

func (m *Misuse) String() string { return m.name }

// MetaPath returns the location of the misuse.yml file.
func (m *Misuse) MetaPath() string { return filepath.Join(m.path, MetaFile) }

// IsMisuse reports whether path is a directory containing misuse.yml.
func IsMisuse(path string) bool {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return false
	}
	meta, err := os.Stat(filepath.Join(path, MetaFile))
	return err == nil && meta.Mode().IsRegular()
}
