package beispiel

import (
	"fmt"
	"io"
)

// Trace the parse to "w".
//
// One line is written per parser step: the current state and the next token. Errors, skipped
// tokens and resynchronisations are written indented beneath it.
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

func (p *Parser) tracef(format string, args ...interface{}) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, format+"\n", args...)
}
