package stages

import (
	"fmt"
	"io"
	"sort"

	"mubench/internal/datareader"
	"mubench/internal/format"
	"mubench/internal/misuse"
)

const unknownProject = "(none)"

// Stats counts misuses per project and per characteristic and prints a
// report table when torn down.
type Stats struct {
	out             io.Writer
	mode            format.Mode
	total           int
	projects        map[string]int
	characteristics map[string]int
}

// NewStats returns a Stats stage that renders to out in the given mode.
func NewStats(out io.Writer, mode format.Mode) *Stats {
	return &Stats{out: out, mode: mode}
}

func (s *Stats) Name() string { return "stats" }

func (s *Stats) Setup() error {
	s.total = 0
	s.projects = make(map[string]int)
	s.characteristics = make(map[string]int)
	return nil
}

func (s *Stats) Run(m *misuse.Misuse) (datareader.Answer, error) {
	meta, err := m.Meta()
	if err != nil {
		return datareader.Ok, fmt.Errorf("stats %s: %w", m.Name(), err)
	}
	s.total++
	project := meta.Project
	if project == "" {
		project = unknownProject
	}
	s.projects[project]++
	for _, c := range meta.Characteristics {
		s.characteristics[c]++
	}
	return datareader.Ok, nil
}

// Teardown prints the report. Nothing is printed when the run never got
// past setup.
func (s *Stats) Teardown() error {
	if s.projects == nil {
		return nil
	}
	_, err := io.WriteString(s.out, s.Report())
	return err
}

// Total returns the number of misuses counted so far.
func (s *Stats) Total() int { return s.total }

// Projects returns the per-project counts.
func (s *Stats) Projects() map[string]int {
	out := make(map[string]int, len(s.projects))
	for k, v := range s.projects {
		out[k] = v
	}
	return out
}

// Report renders the project and characteristic tables.
func (s *Stats) Report() string {
	projects := format.NewTable(s.mode)
	projects.Title("Misuses by project")
	projects.Header("Project", "Misuses", "Share")
	for _, name := range sortedKeys(s.projects) {
		projects.Row(name, s.projects[name], format.Percent(s.projects[name], s.total))
	}
	projects.Footer("Total", s.total, "")
	projects.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})

	out := projects.String() + "\n"
	if len(s.characteristics) == 0 {
		return out
	}

	chars := format.NewTable(s.mode)
	chars.Title("Misuses by characteristic")
	chars.Header("Characteristic", "Misuses")
	for _, name := range sortedKeys(s.characteristics) {
		chars.Row(name, s.characteristics[name])
	}
	chars.Columns(
		format.ColumnConfig{Number: 1, MaxWidth: 60},
		format.ColumnConfig{Number: 2, Align: format.AlignRight},
	)
	return out + chars.String() + "\n"
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
