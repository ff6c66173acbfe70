package stages

import (
	"log/slog"

	"mubench/internal/datareader"
	"mubench/internal/logging"
	"mubench/internal/misuse"
)

// Validate skips misuses whose misuse.yml cannot be parsed, and optionally
// those that do not name their project.
type Validate struct {
	datareader.Base
	RequireProject bool
	logger         *slog.Logger
	skipped        int
}

// NewValidate returns a Validate stage logging through logger (nil = default).
func NewValidate(requireProject bool, logger *slog.Logger) *Validate {
	if logger == nil {
		logger = logging.New("validate")
	}
	return &Validate{RequireProject: requireProject, logger: logger}
}

func (v *Validate) Name() string { return "validate" }

func (v *Validate) Setup() error {
	v.skipped = 0
	return nil
}

func (v *Validate) Run(m *misuse.Misuse) (datareader.Answer, error) {
	meta, err := m.Meta()
	if err != nil {
		v.logger.Warn("invalid misuse", "name", m.Name(), "error", err)
		v.skipped++
		return datareader.Skip, nil
	}
	if v.RequireProject && meta.Project == "" {
		v.logger.Warn("misuse has no project", "name", m.Name())
		v.skipped++
		return datareader.Skip, nil
	}
	return datareader.Ok, nil
}

// Skipped returns how many misuses this stage skipped in the current run.
func (v *Validate) Skipped() int { return v.skipped }
