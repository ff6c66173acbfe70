package stages

import (
	"fmt"
	"io"

	"mubench/internal/datareader"
	"mubench/internal/misuse"
)

// Print writes each misuse name on its own line.
type Print struct {
	datareader.Base
	out     io.Writer
	verbose bool
}

// NewPrint returns a Print stage. With verbose set, the misuse path follows
// the name.
func NewPrint(out io.Writer, verbose bool) *Print {
	return &Print{out: out, verbose: verbose}
}

func (p *Print) Name() string { return "print" }

func (p *Print) Run(m *misuse.Misuse) (datareader.Answer, error) {
	var err error
	if p.verbose {
		_, err = fmt.Fprintf(p.out, "%s\t%s\n", m.Name(), m.Path())
	} else {
		_, err = fmt.Fprintln(p.out, m.Name())
	}
	return datareader.Ok, err
}
