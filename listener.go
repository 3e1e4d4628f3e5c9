package beispiel

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// An ErrorListener is notified of every syntax error the parser reports.
//
// Errors suppressed while the parser is recovering are not passed to listeners, so a listener
// sees exactly SyntaxErrorCount() calls.
type ErrorListener interface {
	SyntaxError(err *SyntaxError)
}

// ListenerFunc adapts a function to the ErrorListener interface.
type ListenerFunc func(err *SyntaxError)

func (f ListenerFunc) SyntaxError(err *SyntaxError) { f(err) }

// ConsoleListener writes each error to w as "line <line>:<column> <message>".
func ConsoleListener(w io.Writer) ErrorListener {
	return ListenerFunc(func(err *SyntaxError) {
		pos := err.Position()
		fmt.Fprintf(w, "line %d:%d %s\n", pos.Line, pos.Column, err.Message())
	})
}

// LogListener logs each error as a warning with its position and token as fields.
func LogListener(log logrus.FieldLogger) ErrorListener {
	return ListenerFunc(func(err *SyntaxError) {
		pos := err.Position()
		expected := make([]string, 0, len(err.Expected))
		for _, t := range err.Expected {
			expected = append(expected, t.String())
		}
		fields := logrus.Fields{
			"line":     pos.Line,
			"column":   pos.Column,
			"offset":   pos.Offset,
			"token":    err.Unexpected.String(),
			"expected": expected,
		}
		if pos.Filename != "" {
			fields["file"] = pos.Filename
		}
		log.WithFields(fields).Warn(err.Message())
	})
}
