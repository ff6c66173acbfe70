package datareader

import (
	"fmt"
	"strings"

	"mubench/internal/misuse"
)

// Answer is a stage's verdict on one misuse.
type Answer int

const (
	// Ok hands the misuse on to the next stage.
	Ok Answer = iota
	// Skip abandons the remaining stages for this misuse only.
	Skip
)

func (a Answer) String() string {
	switch a {
	case Ok:
		return "ok"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("Answer(%d)", int(a))
	}
}

// Stage is one step of the per-misuse pipeline.
//
// Setup is called once before any misuse is processed. Teardown is called
// once when the run ends, however it ends, including when Setup was never
// reached or failed. Run must not retain or modify the misuse.
type Stage interface {
	Setup() error
	Run(m *misuse.Misuse) (Answer, error)
	Teardown() error
}

// Namer lets a stage choose the name used in diagnostics.
type Namer interface {
	Name() string
}

// Base provides no-op Setup and Teardown for stages that need neither.
type Base struct{}

// Setup implements Stage.Setup.
func (Base) Setup() error { return nil }

// Teardown implements Stage.Teardown.
func (Base) Teardown() error { return nil }

// StageFunc adapts a plain function to a Stage without lifecycle hooks.
type StageFunc func(m *misuse.Misuse) (Answer, error)

func (StageFunc) Setup() error { return nil }

func (f StageFunc) Run(m *misuse.Misuse) (Answer, error) { return f(m) }

func (StageFunc) Teardown() error { return nil }

// StageName returns the stage's Name when it implements Namer, else its
// concrete type name without package or pointer prefix.
func StageName(s Stage) string {
	if n, ok := s.(Namer); ok {
		return n.Name()
	}
	name := fmt.Sprintf("%T", s)
	name = strings.TrimLeft(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
