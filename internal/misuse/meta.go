package misuse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Meta is the parsed content of misuse.yml.
type Meta struct {
	Project         string   `yaml:"project"`
	Description     string   `yaml:"description"`
	API             []string `yaml:"api"`
	Characteristics []string `yaml:"characteristics"`
	Crash           bool     `yaml:"crash"`
	Internal        bool     `yaml:"internal"`
	Report          string   `yaml:"report,omitempty"`
	Source          Source   `yaml:"source"`
	Location        Location `yaml:"location"`
	Fix             Fix      `yaml:"fix"`
}

// Source names where the misuse was found.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

// Location points at the misused code.
type Location struct {
	File   string `yaml:"file"`
	Method string `yaml:"method,omitempty"`
}

// Fix describes the upstream commit that repaired the misuse.
type Fix struct {
	Commit      string   `yaml:"commit,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Files       []string `yaml:"files,omitempty"`
}

// Meta reads and parses misuse.yml. The file is read on every call; the
// Misuse itself is never modified.
func (m *Misuse) Meta() (*Meta, error) {
	data, err := os.ReadFile(m.MetaPath())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", MetaFile, err)
	}
	return ParseMeta(data)
}

// ParseMeta decodes misuse.yml content.
func ParseMeta(data []byte) (*Meta, error) {
	var meta Meta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", MetaFile, err)
	}
	return &meta, nil
}
